package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dbdm"
)

const (
	DefaultTx    = 10.0
	DefaultMx    = 1.0
	DefaultSigma = 1e-35
	DefaultTau   = 10.0
	DefaultRMax  = 500.0
	DefaultRHalo = 500.0
)

type Config struct {
	Tx    float64 `yaml:"tx"`
	Mx    float64 `yaml:"mx"`
	Sigma float64 `yaml:"sigma"`
	Tau   float64 `yaml:"tau"`

	Average bool    `yaml:"average"`
	R       float64 `yaml:"r"`
	RMax    float64 `yaml:"r_max"`
	RHalo   float64 `yaml:"r_halo"`

	Spike  bool    `yaml:"spike"`
	SigmaV float64 `yaml:"sigma_v"`
	TBH    float64 `yaml:"t_bh"`
	RhoS   float64 `yaml:"rho_s"`
	Rs     float64 `yaml:"r_s"`
	Eta    float64 `yaml:"eta"`
	UseFit bool    `yaml:"use_fit"`

	ZMax  float64 `yaml:"z_max"`
	MMin  float64 `yaml:"m_min"`
	MMax  float64 `yaml:"m_max"`
	TxMin float64 `yaml:"tx_min"`
	TxMax float64 `yaml:"tx_max"`

	MonteCarlo MonteCarloConfig `yaml:"monte_carlo"`
}

type MonteCarloConfig struct {
	Iterations int     `yaml:"iterations"`
	Evals      int     `yaml:"evals"`
	Bins       int     `yaml:"bins"`
	Alpha      float64 `yaml:"alpha"`
	Seed       uint64  `yaml:"seed"`
	MaxChiSq   float64 `yaml:"max_chi_sq"`
}

func DefaultConfig() *Config {
	p := dbdm.DefaultParams()
	return &Config{
		Tx:      DefaultTx,
		Mx:      DefaultMx,
		Sigma:   DefaultSigma,
		Tau:     DefaultTau,
		Average: true,
		RMax:    DefaultRMax,
		RHalo:   DefaultRHalo,
		Spike:   true,
		TBH:     p.TBH,
		RhoS:    p.RhoS,
		Rs:      p.Rs,
		Eta:     p.Eta,
		UseFit:  true,
		ZMax:    p.ZMax,
		MMin:    p.MMin,
		MMax:    p.MMax,
		TxMin:   p.TxMin,
		TxMax:   p.TxMax,
		MonteCarlo: MonteCarloConfig{
			Iterations: p.MonteCarlo.Iterations,
			Evals:      p.MonteCarlo.Evals,
			Bins:       p.MonteCarlo.Bins,
			Alpha:      p.MonteCarlo.Alpha,
			Seed:       p.MonteCarlo.Seed,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the file representation into calculation parameters.
func (c *Config) Params() dbdm.Params {
	p := dbdm.DefaultParams()
	p.Sigma = c.Sigma
	p.Tau = c.Tau
	p.Average = c.Average
	p.R = c.R
	p.RMax = c.RMax
	p.RHalo = c.RHalo
	p.Spike = c.Spike
	p.SigmaV = c.SigmaV
	p.TBH = c.TBH
	p.RhoS = c.RhoS
	p.Rs = c.Rs
	p.Eta = c.Eta
	p.UseFit = c.UseFit
	p.ZMax = c.ZMax
	p.MMin = c.MMin
	p.MMax = c.MMax
	p.TxMin = c.TxMin
	p.TxMax = c.TxMax
	p.MonteCarlo.Iterations = c.MonteCarlo.Iterations
	p.MonteCarlo.Evals = c.MonteCarlo.Evals
	p.MonteCarlo.Bins = c.MonteCarlo.Bins
	p.MonteCarlo.Alpha = c.MonteCarlo.Alpha
	p.MonteCarlo.Seed = c.MonteCarlo.Seed
	p.MonteCarlo.MaxChiSq = c.MonteCarlo.MaxChiSq
	return p
}
