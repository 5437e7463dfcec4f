// Package halo models dark matter halo profiles for galaxies of arbitrary
// stellar mass, scaled from the Milky Way.
//
// The base profile is NFW; galaxies hosting a central supermassive black
// hole can additionally grow a density spike, optionally softened by dark
// matter annihilation.
package halo

import (
	"math"

	"github.com/san-kum/dbdm/units"
)

// NFWDensity returns the NFW dark matter density at galactocentric radius
// r (kpc) for characteristic density rhos (MeV/cm^3) and radius rs (kpc).
func NFWDensity(r, rhos, rs float64) float64 {
	rr := r / rs
	return rhos / (rr * (1 + rr) * (1 + rr))
}

// ScaleRadius returns the NFW characteristic radius for a galaxy of
// stellar mass MG (Msun), scaled from the Milky Way value rsMW (kpc).
func ScaleRadius(MG, rsMW float64) float64 {
	return math.Cbrt(MG/units.MilkyWayMass) * rsMW
}

// HaloRadius returns the halo radius in kpc for a galaxy of stellar mass
// MG (Msun).
func HaloRadius(MG float64) float64 {
	return math.Cbrt(MG/units.MilkyWayMass) * units.MilkyWayHaloRadius
}

// BlackHoleMass estimates the central supermassive black hole mass (Msun)
// for a galaxy of stellar mass MG, with eta the halo-to-stellar mass ratio.
func BlackHoleMass(MG, eta float64) float64 {
	return 7e7 * math.Pow(eta*MG/1e12, 4.0/3.0)
}

// SchwarzschildRadius returns the Schwarzschild radius in kpc for a black
// hole of mass mBH in Msun.
func SchwarzschildRadius(mBH float64) float64 {
	// 2G/c^2 = 1.48e-25 cm/kg
	return mBH * units.MsunKg * 1.48e-25 / units.KpcToCm
}

// Profile computes dark matter number densities for galaxies of arbitrary
// stellar mass. The zero value is not usable; construct with NewProfile.
type Profile struct {
	RhoS   float64 // Milky Way NFW characteristic density, MeV/cm^3
	Rs     float64 // Milky Way NFW characteristic radius, kpc
	Eta    float64 // halo-to-stellar mass ratio
	Spike  bool    // grow a density spike around the central black hole
	SigmaV float64 // annihilation cross-section in 1e-26 cm^3/s; 0 disables
	TBH    float64 // black hole age in years
}

// NewProfile returns a Profile with Milky Way defaults: spike enabled and
// no annihilation.
func NewProfile() *Profile {
	return &Profile{
		RhoS:  units.NFWRhoS,
		Rs:    units.NFWRs,
		Eta:   24.3856,
		Spike: true,
		TBH:   1e9,
	}
}

// NumberDensity returns the dark matter number density in cm^-3 at radius
// r (kpc) from the center of a galaxy of stellar mass MG (Msun), for dark
// matter mass mx (MeV).
func (p *Profile) NumberDensity(r, mx, MG float64) float64 {
	rs := ScaleRadius(MG, p.Rs)
	if !p.Spike {
		return NFWDensity(r, p.RhoS, rs) / mx
	}
	return p.spikeDensity(r, mx, MG, rs)
}
