package dbdm

import (
	"context"
	"runtime"
	"sync"
)

// SpectrumPoint is one recoil energy sample of a flux spectrum.
type SpectrumPoint struct {
	Tx     float64 // MeV
	Result Result
}

// Spectrum evaluates Flux over a grid of recoil energies, fanning the
// points out over a bounded set of workers. Each point gets its own
// sampler seed derived from the configured seed, so a fixed seed still
// reproduces the whole spectrum. The first error aborts the scan.
func Spectrum(ctx context.Context, txGrid []float64, mx float64, p Params) ([]SpectrumPoint, error) {
	points := make([]SpectrumPoint, len(txGrid))
	errs := make([]error, len(txGrid))

	workers := runtime.NumCPU()
	if workers > len(txGrid) {
		workers = len(txGrid)
	}
	if workers < 1 {
		workers = 1
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				pi := p
				pi.MonteCarlo.Seed = p.MonteCarlo.Seed + uint64(i)
				// per-iteration callbacks would interleave across workers
				pi.MonteCarlo.OnIteration = nil
				res, err := Flux(ctx, txGrid[i], mx, pi)
				points[i] = SpectrumPoint{Tx: txGrid[i], Result: res}
				errs[i] = err
			}
		}()
	}

	for i := range txGrid {
		idx <- i
	}
	close(idx)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
