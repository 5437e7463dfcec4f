package halo

import (
	"math"

	"github.com/san-kum/dbdm/units"
)

// spikeScale is the radius (kpc) of the gravitational influence region
// inside which the spike profile steepens to r^-3/2.
const spikeScale = 0.65e-3

// spikeNorm returns the normalization of the inner r^-3/2 spike profile
// for a black hole of mass mBH (Msun). The inner cutoff sits at four
// Schwarzschild radii, where infalling particles are captured.
func spikeNorm(mBH float64) float64 {
	Rs := SchwarzschildRadius(mBH)
	ri := 4 * Rs
	const alpha = 1.5

	fa := func(r float64) float64 {
		return (r*r*r/(3-alpha) + 12*Rs*r*r/(alpha-2) - 48*Rs*Rs*r/(alpha-1) + 64*Rs*Rs*Rs/alpha) / math.Pow(r, alpha)
	}

	return mBH * units.MsunMeV / (4 * math.Pi * (fa(spikeScale) - fa(ri)))
}

// spikeRadius returns the outer spike radius R_sp in kpc, where the spike
// density matches onto the ambient NFW halo.
func spikeRadius(mBH, rhos, rs float64) float64 {
	n := spikeNorm(mBH)
	rhoKpc := rhos * units.KpcToCm * units.KpcToCm * units.KpcToCm
	return math.Pow(n/rhoKpc/rs, 0.75) * math.Pow(spikeScale, 0.625)
}

// spikeProfile returns the spike mass density in MeV/cm^3 at radius r
// (kpc): r^-3/2 with a (1-ri/r)^3 capture suppression inside the
// influence region, r^-7/3 out to the spike radius.
func spikeProfile(r, mBH, rhos, rs float64) float64 {
	Rs := SchwarzschildRadius(mBH)
	ri := 4 * Rs
	n := spikeNorm(mBH)
	rsp := spikeRadius(mBH, rhos, rs)

	rhoN := n / math.Pow(spikeScale, 1.5)
	var rho float64
	if r >= ri && r < spikeScale {
		s := 1 - ri/r
		rho = rhoN * s * s * s * math.Pow(spikeScale/r, 1.5)
	} else {
		rho = rhoN * math.Pow(spikeScale/rsp, 7.0/3.0) * math.Pow(rsp/r, 7.0/3.0)
	}
	kpc3 := units.KpcToCm * units.KpcToCm * units.KpcToCm
	return rho / kpc3
}

// spikeDensity returns the number density (cm^-3) including the central
// spike and, when SigmaV > 0, the annihilation ceiling that caps the
// density at rho_c = mx/(<sigma v> t_BH).
func (p *Profile) spikeDensity(r, mx, MG, rs float64) float64 {
	mBH := BlackHoleMass(MG, p.Eta)
	ri := 4 * SchwarzschildRadius(mBH)
	rsp := spikeRadius(mBH, p.RhoS, rs)

	if r < ri {
		return 0
	}

	var rho float64
	if r < rsp {
		rho = spikeProfile(r, mBH, p.RhoS, rs)
	} else {
		rho = NFWDensity(r, p.RhoS, rs)
	}

	if p.SigmaV <= 0 {
		return rho / mx
	}
	rhoc := mx / (p.SigmaV * 1e-26 * p.TBH * units.YearToSec)
	return rho * rhoc / (rho + rhoc) / mx
}
