package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestModelFlagOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addModelFlags(cmd)

	args := []string{"--r-halo", "600", "--r-max", "450", "--sigma", "2e-34", "--at", "8.5"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}

	p, err := loadParams(cmd)
	if err != nil {
		t.Fatal(err)
	}

	if p.RHalo != 600 {
		t.Errorf("RHalo = %g, want 600", p.RHalo)
	}
	if p.RMax != 450 {
		t.Errorf("RMax = %g, want 450", p.RMax)
	}
	if p.Sigma != 2e-34 {
		t.Errorf("Sigma = %g, want 2e-34", p.Sigma)
	}
	if p.Average || p.R != 8.5 {
		t.Errorf("--at should pin the position: Average=%v R=%g", p.Average, p.R)
	}
	// untouched parameters keep their defaults
	if !p.Spike || p.Tau != 10 {
		t.Errorf("unset flags should keep defaults: Spike=%v Tau=%g", p.Spike, p.Tau)
	}
}

func TestUnknownPreset(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addModelFlags(cmd)

	preset = "does-not-exist"
	defer func() { preset = "" }()

	if _, err := loadParams(cmd); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
