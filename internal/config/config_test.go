package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tx <= 0 {
		t.Error("tx should be positive")
	}
	if cfg.Sigma <= 0 {
		t.Error("sigma should be positive")
	}
	if !cfg.Average || !cfg.Spike {
		t.Error("averaging and spike should default on")
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("default config should produce valid parameters: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("nospike")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Spike {
		t.Error("nospike preset should disable the spike")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Params().Validate(); err != nil {
			t.Errorf("preset %s should validate: %v", name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Mx = 5
	cfg.Sigma = 2e-34
	cfg.Average = false
	cfg.R = 8.5
	cfg.MonteCarlo.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Mx != 5 || loaded.Sigma != 2e-34 || loaded.Average || loaded.R != 8.5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.MonteCarlo.Seed != 99 {
		t.Errorf("round trip lost seed: %d", loaded.MonteCarlo.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
