package dbdm

import (
	"fmt"

	"github.com/san-kum/dbdm/units"
	"github.com/san-kum/dbdm/vegas"
)

// Params collects the astrophysical and sampling parameters of a flux
// calculation. Use DefaultParams and override selectively.
type Params struct {
	Sigma float64 // DM-neutrino scattering cross-section, cm^2
	Tau   float64 // supernova neutrino emission duration, s

	// Supernova placement. With Average set, the supernova position is
	// weighted by the baryonic disk out to RMax; otherwise it sits at the
	// fixed galactocentric radius R (R = 0 is the galactic center).
	Average bool
	R       float64 // kpc
	RMax    float64 // galactic plane integration radius, kpc
	RHalo   float64 // halo integration radius, kpc

	// Halo profile.
	Spike  bool
	SigmaV float64 // annihilation cross-section, 1e-26 cm^3/s; 0 disables
	TBH    float64 // black hole age, years
	RhoS   float64 // Milky Way NFW characteristic density, MeV/cm^3
	Rs     float64 // Milky Way NFW characteristic radius, kpc
	Eta    float64 // halo-to-stellar mass ratio

	// UseFit selects the closed-form disk column instead of the
	// quadrature column when averaging over supernova positions.
	UseFit bool

	// Source-history integration bounds.
	ZMax       float64 // maximum redshift
	MMin, MMax float64 // log10 galactic stellar mass window

	// Event energy window, MeV.
	TxMin, TxMax float64

	// MonteCarlo configures the vegas sampler.
	MonteCarlo vegas.Config
}

// DefaultParams mirrors the reference model: spike on, position averaging
// on, no annihilation.
func DefaultParams() Params {
	return Params{
		Sigma:      1e-35,
		Tau:        10,
		Average:    true,
		R:          0,
		RMax:       500,
		RHalo:      500,
		Spike:      true,
		TBH:        1e9,
		RhoS:       units.NFWRhoS,
		Rs:         units.NFWRs,
		Eta:        24.3856,
		UseFit:     true,
		ZMax:       8,
		MMin:       6,
		MMax:       12,
		TxMin:      5,
		TxMax:      100,
		MonteCarlo: vegas.DefaultConfig(),
	}
}

// Validate reports the first non-physical parameter found.
func (p Params) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{p.Sigma > 0, fmt.Sprintf("cross-section %g", p.Sigma)},
		{p.Tau > 0, fmt.Sprintf("emission duration %g", p.Tau)},
		{p.R >= 0, fmt.Sprintf("supernova radius %g", p.R)},
		{p.RMax > 0, fmt.Sprintf("plane radius %g", p.RMax)},
		{p.RHalo > 0, fmt.Sprintf("halo radius %g", p.RHalo)},
		{p.TBH > 0, fmt.Sprintf("black hole age %g", p.TBH)},
		{p.SigmaV >= 0, fmt.Sprintf("annihilation cross-section %g", p.SigmaV)},
		{p.RhoS > 0, fmt.Sprintf("NFW density %g", p.RhoS)},
		{p.Rs > 0, fmt.Sprintf("NFW radius %g", p.Rs)},
		{p.Eta > 0, fmt.Sprintf("mass ratio %g", p.Eta)},
		{p.ZMax > 0, fmt.Sprintf("redshift bound %g", p.ZMax)},
		{p.MMin < p.MMax, fmt.Sprintf("mass window [%g, %g]", p.MMin, p.MMax)},
		{p.TxMin > 0 && p.TxMin < p.TxMax, fmt.Sprintf("energy window [%g, %g]", p.TxMin, p.TxMax)},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrParameterBounds, c.what)
		}
	}
	return nil
}
