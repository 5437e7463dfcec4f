package vegas

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// grid holds one dimension's importance-sampling bin edges. Edges map
// equal-probability sampling bins onto unequal slices of the integration
// range; refinement shrinks bins where the accumulated |f|^2 density is
// large.
type grid struct {
	edges []float64 // len bins+1, strictly increasing
}

func newGrid(lo, hi float64, bins int) *grid {
	edges := make([]float64, bins+1)
	w := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*w
	}
	edges[bins] = hi
	return &grid{edges: edges}
}

// sample maps a uniform deviate u in [0, bins) onto the integration range
// and returns the point, the importance weight of the bin, and the bin
// index.
func (g *grid) sample(u float64) (x, weight float64, bin int) {
	bins := len(g.edges) - 1
	bin = int(u)
	if bin >= bins {
		bin = bins - 1
	}
	frac := u - float64(bin)
	lo := g.edges[bin]
	w := g.edges[bin+1] - lo
	return lo + frac*w, w * float64(bins), bin
}

// refine rebuilds the bin edges so each bin carries an equal share of the
// damped per-bin density d (accumulated squared weighted integrand).
// The damping exponent alpha slows the adaptation; alpha = 0 freezes the
// grid.
func (g *grid) refine(d []float64, alpha float64) {
	bins := len(g.edges) - 1

	// neighbor smoothing guards against wild per-iteration fluctuations
	sm := make([]float64, bins)
	if bins > 2 {
		sm[0] = (d[0] + d[1]) / 2
		sm[bins-1] = (d[bins-2] + d[bins-1]) / 2
		for i := 1; i < bins-1; i++ {
			sm[i] = (d[i-1] + d[i] + d[i+1]) / 3
		}
	} else {
		copy(sm, d)
	}

	total := floats.Sum(sm)
	if total <= 0 {
		return
	}

	w := make([]float64, bins)
	for i := range sm {
		r := sm[i] / total
		if r < 1e-30 {
			r = 1e-30
		}
		if r >= 1 {
			w[i] = 1
			continue
		}
		// Lepage's damped compression: (r-1)/ln(r), raised to alpha
		w[i] = math.Pow((r-1)/math.Log(r), alpha)
	}

	wTotal := floats.Sum(w)
	step := wTotal / float64(bins)

	newEdges := make([]float64, bins+1)
	newEdges[0] = g.edges[0]
	newEdges[bins] = g.edges[bins]

	j := 0
	acc := 0.0
	for k := 1; k < bins; k++ {
		target := float64(k) * step
		for j < bins-1 && acc+w[j] < target {
			acc += w[j]
			j++
		}
		frac := (target - acc) / w[j]
		newEdges[k] = g.edges[j] + frac*(g.edges[j+1]-g.edges[j])
	}

	g.edges = newEdges
}
