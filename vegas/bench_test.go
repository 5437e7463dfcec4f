package vegas

import (
	"context"
	"math"
	"testing"
)

func benchConfig(evals int) Config {
	cfg := DefaultConfig()
	cfg.Iterations = 5
	cfg.Evals = evals
	cfg.Seed = 1
	return cfg
}

func BenchmarkSmooth2D(b *testing.B) {
	integ, _ := New(unitCube(2))
	f := func(x []float64) float64 { return x[0] * x[1] }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := integ.Integrate(context.Background(), f, benchConfig(2000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPeaked4D(b *testing.B) {
	integ, _ := New(unitCube(4))
	f := func(x []float64) float64 {
		s := 0.0
		for _, v := range x {
			d := v - 0.5
			s += d * d
		}
		return math.Exp(-s / 0.02)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := integ.Integrate(context.Background(), f, benchConfig(5000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHighDim(b *testing.B) {
	integ, _ := New(unitCube(7))
	f := func(x []float64) float64 {
		s := 1.0
		for _, v := range x {
			s *= 1 + v
		}
		return s
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := integ.Integrate(context.Background(), f, benchConfig(5000)); err != nil {
			b.Fatal(err)
		}
	}
}
