// Package vegas implements adaptive Monte Carlo integration over a
// rectangular region, with per-dimension importance sampling in the style
// of Lepage's VEGAS algorithm.
//
// Each iteration draws a fixed number of samples from the current
// importance grid, estimates the integral and its variance, then refines
// the grid toward regions of large squared integrand. Iteration estimates
// are combined by inverse-variance weighting, and their mutual consistency
// is reported as chi^2 per degree of freedom.
//
//	integ, _ := vegas.New([][2]float64{{0, 1}, {0, 1}})
//	res, err := integ.Integrate(ctx, f, vegas.DefaultConfig())
//
// Results are deterministic for a fixed Config.Seed.
package vegas

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Integrand is a function to be integrated over a rectangular region.
// It must return a finite value everywhere inside the region.
type Integrand func(x []float64) float64

// Config holds the sampling parameters of an integration run.
type Config struct {
	Iterations int     // grid-refinement iterations
	Evals      int     // integrand evaluations per iteration
	Bins       int     // importance bins per dimension
	Alpha      float64 // grid damping exponent; 0 freezes the grid
	Seed       uint64
	MaxChiSq   float64 // chi^2/dof ceiling; 0 disables the check

	// OnIteration, when set, is called after every iteration with the
	// running statistics. Used by live progress views.
	OnIteration func(IterationStat)
}

// DefaultConfig mirrors the reference sampling settings.
func DefaultConfig() Config {
	return Config{
		Iterations: 10,
		Evals:      50000,
		Bins:       50,
		Alpha:      1.5,
		Seed:       1,
	}
}

// IterationStat reports one iteration's estimate together with the running
// combination of all iterations so far.
type IterationStat struct {
	Iteration  int
	Mean       float64 // this iteration's estimate
	Err        float64 // this iteration's standard error
	Running    float64 // combined estimate so far
	RunningErr float64
	ChiSq      float64 // chi^2/dof of the combination so far
}

// Result is the combined outcome of an integration run.
type Result struct {
	Mean  float64 // inverse-variance weighted mean over iterations
	Err   float64 // standard error of the combination
	ChiSq float64 // chi^2 per degree of freedom
	Evals int     // total integrand evaluations
}

// Integrator integrates over a fixed rectangular region.
type Integrator struct {
	lower, upper []float64
}

// New returns an Integrator over the given region. Every bound must have
// its lower edge strictly below its upper edge.
func New(bounds [][2]float64) (*Integrator, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: empty region", ErrInvalidBounds)
	}
	in := &Integrator{
		lower: make([]float64, len(bounds)),
		upper: make([]float64, len(bounds)),
	}
	for i, b := range bounds {
		if !(b[0] < b[1]) || math.IsNaN(b[0]) || math.IsInf(b[0], 0) || math.IsInf(b[1], 0) {
			return nil, fmt.Errorf("%w: dimension %d [%g, %g]", ErrInvalidBounds, i, b[0], b[1])
		}
		in.lower[i] = b[0]
		in.upper[i] = b[1]
	}
	return in, nil
}

// Dim returns the dimensionality of the integration region.
func (in *Integrator) Dim() int { return len(in.lower) }

// Integrate evaluates f over the region with the given sampling
// parameters. The context is checked between iterations.
func (in *Integrator) Integrate(ctx context.Context, f Integrand, cfg Config) (Result, error) {
	if cfg.Iterations <= 0 || cfg.Evals <= 1 || cfg.Bins <= 0 {
		return Result{}, fmt.Errorf("%w: iterations=%d evals=%d bins=%d",
			ErrInvalidConfig, cfg.Iterations, cfg.Evals, cfg.Bins)
	}

	dim := in.Dim()
	rng := rand.New(rand.NewSource(cfg.Seed))

	grids := make([]*grid, dim)
	for d := 0; d < dim; d++ {
		grids[d] = newGrid(in.lower[d], in.upper[d], cfg.Bins)
	}

	// accumulated |f*w|^2 per bin, reset each iteration
	density := make([][]float64, dim)
	for d := range density {
		density[d] = make([]float64, cfg.Bins)
	}

	x := make([]float64, dim)
	binIdx := make([]int, dim)
	binsF := float64(cfg.Bins)

	var sumW, sumWM float64 // inverse-variance combination
	means := make([]float64, 0, cfg.Iterations)
	vars := make([]float64, 0, cfg.Iterations)

	res := Result{}
	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%w: %v", ErrCanceled, err)
		}

		for d := range density {
			for i := range density[d] {
				density[d][i] = 0
			}
		}

		var sum, sumSq float64
		for e := 0; e < cfg.Evals; e++ {
			w := 1.0
			for d := 0; d < dim; d++ {
				var bw float64
				x[d], bw, binIdx[d] = grids[d].sample(rng.Float64() * binsF)
				w *= bw
			}

			fv := f(x)
			if math.IsNaN(fv) || math.IsInf(fv, 0) {
				return res, fmt.Errorf("%w: f(%v) = %v", ErrNonFinite, x, fv)
			}

			fw := fv * w
			sum += fw
			sumSq += fw * fw

			f2 := fw * fw
			for d := 0; d < dim; d++ {
				density[d][binIdx[d]] += f2
			}
		}

		n := float64(cfg.Evals)
		mean := sum / n
		variance := (sumSq/n - mean*mean) / (n - 1)
		if variance < 1e-300 {
			variance = 1e-300
		}

		wi := 1 / variance
		sumW += wi
		sumWM += wi * mean
		means = append(means, mean)
		vars = append(vars, variance)

		res.Mean = sumWM / sumW
		res.Err = math.Sqrt(1 / sumW)
		res.ChiSq = chiSqPerDof(means, vars, res.Mean)
		res.Evals += cfg.Evals

		if cfg.OnIteration != nil {
			cfg.OnIteration(IterationStat{
				Iteration:  it + 1,
				Mean:       mean,
				Err:        math.Sqrt(variance),
				Running:    res.Mean,
				RunningErr: res.Err,
				ChiSq:      res.ChiSq,
			})
		}

		if cfg.Alpha > 0 && it < cfg.Iterations-1 {
			for d := 0; d < dim; d++ {
				grids[d].refine(density[d], cfg.Alpha)
			}
		}
	}

	if cfg.MaxChiSq > 0 && res.ChiSq > cfg.MaxChiSq {
		return res, fmt.Errorf("%w: chi^2/dof = %.2f", ErrNotConverged, res.ChiSq)
	}
	return res, nil
}

// chiSqPerDof measures the consistency of per-iteration estimates with the
// combined mean.
func chiSqPerDof(means, vars []float64, mean float64) float64 {
	if len(means) < 2 {
		return 0
	}
	var chi float64
	for i := range means {
		d := means[i] - mean
		chi += d * d / vars[i]
	}
	return chi / float64(len(means)-1)
}
