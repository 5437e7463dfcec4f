package config

// Presets are ready-made parameter sets for common scenarios.
var Presets = map[string]*Config{
	"fiducial": {
		Tx: 10, Mx: 1, Sigma: 1e-35, Tau: 10,
		Average: true, RMax: 500, RHalo: 500,
		Spike: true, TBH: 1e9, RhoS: 184, Rs: 24.42, Eta: 24.3856,
		UseFit: true, ZMax: 8, MMin: 6, MMax: 12, TxMin: 5, TxMax: 100,
		MonteCarlo: MonteCarloConfig{Iterations: 10, Evals: 50000, Bins: 50, Alpha: 1.5, Seed: 1},
	},
	"nospike": {
		Tx: 10, Mx: 1, Sigma: 1e-35, Tau: 10,
		Average: true, RMax: 500, RHalo: 500,
		Spike: false, TBH: 1e9, RhoS: 184, Rs: 24.42, Eta: 24.3856,
		UseFit: true, ZMax: 8, MMin: 6, MMax: 12, TxMin: 5, TxMax: 100,
		MonteCarlo: MonteCarloConfig{Iterations: 10, Evals: 50000, Bins: 50, Alpha: 1.5, Seed: 1},
	},
	"annihilating": {
		Tx: 10, Mx: 1, Sigma: 1e-35, Tau: 10,
		Average: true, RMax: 500, RHalo: 500,
		Spike: true, SigmaV: 3, TBH: 1e9, RhoS: 184, Rs: 24.42, Eta: 24.3856,
		UseFit: true, ZMax: 8, MMin: 6, MMax: 12, TxMin: 5, TxMax: 100,
		MonteCarlo: MonteCarloConfig{Iterations: 10, Evals: 50000, Bins: 50, Alpha: 1.5, Seed: 1},
	},
	"galactic-center": {
		Tx: 10, Mx: 1, Sigma: 1e-35, Tau: 10,
		Average: false, R: 0, RMax: 500, RHalo: 500,
		Spike: true, TBH: 1e9, RhoS: 184, Rs: 24.42, Eta: 24.3856,
		UseFit: true, ZMax: 8, MMin: 6, MMax: 12, TxMin: 5, TxMax: 100,
		MonteCarlo: MonteCarloConfig{Iterations: 10, Evals: 50000, Bins: 50, Alpha: 1.5, Seed: 1},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
