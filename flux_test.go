package dbdm

import (
	"context"
	"errors"
	"math"
	"testing"
)

// quickParams keeps the Monte Carlo sampling small enough for unit tests.
func quickParams() Params {
	p := DefaultParams()
	p.MonteCarlo.Iterations = 4
	p.MonteCarlo.Evals = 2000
	p.MonteCarlo.Seed = 42
	return p
}

func TestFluxRejectsBadInputs(t *testing.T) {
	ctx := context.Background()
	p := quickParams()

	cases := []struct {
		name   string
		Tx, mx float64
		mut    func(*Params)
	}{
		{"zero recoil energy", 0, 1, nil},
		{"negative mass", 10, -1, nil},
		{"zero cross-section", 10, 1, func(p *Params) { p.Sigma = 0 }},
		{"negative duration", 10, 1, func(p *Params) { p.Tau = -1 }},
		{"inverted mass window", 10, 1, func(p *Params) { p.MMin, p.MMax = 12, 6 }},
		{"negative annihilation", 10, 1, func(p *Params) { p.SigmaV = -1 }},
	}
	for _, c := range cases {
		pc := p
		if c.mut != nil {
			c.mut(&pc)
		}
		if _, err := Flux(ctx, c.Tx, c.mx, pc); !errors.Is(err, ErrParameterBounds) {
			t.Errorf("%s: want ErrParameterBounds, got %v", c.name, err)
		}
	}
}

func TestEventRejectsBadInputs(t *testing.T) {
	p := quickParams()
	if _, err := Event(context.Background(), 0, p); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("want ErrParameterBounds for zero mass, got %v", err)
	}

	p.TxMin, p.TxMax = 100, 5
	if _, err := Event(context.Background(), 1, p); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("want ErrParameterBounds for inverted energy window, got %v", err)
	}
}

func TestFluxLinearInCrossSection(t *testing.T) {
	// with a fixed seed, grid adaptation only sees relative densities, so
	// the estimate is exactly linear in sigma
	ctx := context.Background()

	p := quickParams()
	a, err := Flux(ctx, 10, 1, p)
	if err != nil {
		t.Fatal(err)
	}

	p.Sigma *= 10
	b, err := Flux(ctx, 10, 1, p)
	if err != nil {
		t.Fatal(err)
	}

	if a.Value <= 0 {
		t.Fatalf("flux should be positive, got %e", a.Value)
	}
	if math.Abs(b.Value-10*a.Value)/(10*a.Value) > 1e-9 {
		t.Errorf("flux should scale linearly with sigma: %e vs 10*%e", b.Value, a.Value)
	}
}

func TestFluxAboveEmissionCutoff(t *testing.T) {
	// every source contribution is blueshifted above the 200 MeV
	// emission cutoff, so the flux vanishes identically
	p := quickParams()
	res, err := Flux(context.Background(), 250, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != 0 {
		t.Errorf("flux above the emission cutoff should vanish, got %e", res.Value)
	}
}

func TestFluxDeterministicForSeed(t *testing.T) {
	ctx := context.Background()
	p := quickParams()

	a, err := Flux(ctx, 10, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Flux(ctx, 10, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if a.Value != b.Value || a.Err != b.Err {
		t.Error("same seed should reproduce the flux exactly")
	}
}

func TestFluxFixedPosition(t *testing.T) {
	ctx := context.Background()
	p := quickParams()
	p.Average = false
	p.R = 8.5

	res, err := Flux(ctx, 10, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value < 0 || math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		t.Errorf("fixed-position flux should be finite and non-negative, got %e", res.Value)
	}
	if res.Err < 0 {
		t.Errorf("negative error estimate %e", res.Err)
	}
}

func TestFluxContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Flux(ctx, 10, 1, quickParams())
	if err == nil {
		t.Error("expected an error from a canceled context")
	}
}

func TestEventRuns(t *testing.T) {
	p := quickParams()
	res, err := Event(context.Background(), 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Value < 0 || math.IsNaN(res.Value) {
		t.Errorf("event rate should be finite and non-negative, got %e", res.Value)
	}
}

func TestSpectrum(t *testing.T) {
	p := quickParams()
	grid := []float64{5, 10, 20, 40}

	points, err := Spectrum(context.Background(), grid, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != len(grid) {
		t.Fatalf("expected %d points, got %d", len(grid), len(points))
	}
	for i, pt := range points {
		if pt.Tx != grid[i] {
			t.Errorf("point %d: Tx = %g, want %g (order preserved)", i, pt.Tx, grid[i])
		}
		if pt.Result.Value < 0 {
			t.Errorf("point %d: negative flux %e", i, pt.Result.Value)
		}
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default parameters should validate, got %v", err)
	}
}
