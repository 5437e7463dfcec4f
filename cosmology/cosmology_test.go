package cosmology

import (
	"math"
	"testing"
)

func relClose(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Abs(want)
}

func TestExpansionRate(t *testing.T) {
	if got := ExpansionRate(0); !relClose(got, 1, 1e-12) {
		t.Errorf("E(0) = %f, want 1", got)
	}
	if got, want := ExpansionRate(1), 1.790251378997e+00; !relClose(got, want, 1e-9) {
		t.Errorf("E(1) = %.12e, want %.12e", got, want)
	}
}

func TestExpansionRateIncreasing(t *testing.T) {
	prev := 0.0
	for z := 0.0; z <= 8; z += 0.5 {
		e := ExpansionRate(z)
		if e <= prev {
			t.Errorf("E(z) should increase, E(%g) = %f <= %f", z, e, prev)
		}
		prev = e
	}
}

func TestSFRDensity(t *testing.T) {
	cases := []struct {
		z, want float64
	}{
		{0, 1.496149242864e-02},
		{2, 1.318590157617e-01},
		{4, 5.229025594598e-02},
	}
	for _, c := range cases {
		got := SFRDensity(c.z)
		if !relClose(got, c.want, 1e-9) {
			t.Errorf("SFRDensity(%g) = %.12e, want %.12e", c.z, got, c.want)
		}
	}
}

func TestSFRDensityPeaksNearCosmicNoon(t *testing.T) {
	peak := SFRDensity(2)
	if SFRDensity(0) >= peak || SFRDensity(6) >= peak {
		t.Error("star-formation history should peak near z~2")
	}
}

func TestMassFunction(t *testing.T) {
	cases := []struct {
		m, z, want float64
	}{
		{10.5, 0, 6.057517879039e-03},
		{9, 2, 2.002140749357e-02},
	}
	for _, c := range cases {
		got := MassFunction(c.m, c.z)
		if !relClose(got, c.want, 1e-9) {
			t.Errorf("MassFunction(%g, %g) = %.12e, want %.12e", c.m, c.z, got, c.want)
		}
	}
}

func TestMassFunctionHighMassCutoff(t *testing.T) {
	// exponential suppression above the knee
	prev := math.Inf(1)
	for _, m := range []float64{10.8, 11.2, 11.6, 12.0} {
		phi := MassFunction(m, 0)
		if phi >= prev {
			t.Errorf("mass function should fall above the knee, phi(%g) = %e >= %e", m, phi, prev)
		}
		prev = phi
	}
}

func TestAreaDensityFit(t *testing.T) {
	d := NewDisk()
	got := d.AreaDensityFit(8.5, 5.29e10)
	want := 4.495671273954e+07
	if !relClose(got, want, 1e-9) {
		t.Errorf("AreaDensityFit(8.5) = %.12e, want %.12e", got, want)
	}
}

func TestAreaDensityMatchesFit(t *testing.T) {
	// the quadrature column converges to the closed form for a thin disk
	d := NewDisk()
	for _, R := range []float64{0, 2.5, 8.5, 20} {
		q := d.AreaDensity(R, 5.29e10)
		f := d.AreaDensityFit(R, 5.29e10)
		if !relClose(q, f, 1e-6) {
			t.Errorf("column at R=%g: quadrature %e vs closed form %e", R, q, f)
		}
	}
}

func TestAreaDensityDecreasing(t *testing.T) {
	d := NewDisk()
	prev := math.Inf(1)
	for _, R := range []float64{0, 5, 10, 50, 200} {
		s := d.AreaDensity(R, 1e10)
		if s >= prev {
			t.Errorf("surface density should fall with R, Sigma(%g) = %e >= %e", R, s, prev)
		}
		prev = s
	}
}
