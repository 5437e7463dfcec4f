// Package neutrino models the supernova neutrino emission spectrum and its
// number flux after free propagation.
package neutrino

import (
	"math"

	"github.com/san-kum/dbdm/units"
)

const (
	// fdNorm normalizes the pinched Fermi-Dirac spectrum with pinching
	// parameter eta = 3.
	fdNorm = 18.9686

	// expCutoff keeps the Fermi-Dirac exponent inside float64 range.
	expCutoff = 709.782
)

// Spectrum describes the time-averaged neutrino emission of a core-collapse
// supernova: equal per-species luminosity with species-dependent
// temperatures and mean energies.
type Spectrum struct {
	Luminosity float64 // per-species luminosity, erg/s

	TNuE, TNuEBar, TNuX float64 // spectral temperatures, MeV
	ENuE, ENuEBar, ENuX float64 // mean energies, MeV
}

// NewSpectrum returns the canonical supernova emission model.
func NewSpectrum() *Spectrum {
	return &Spectrum{
		Luminosity: units.NuLuminosity,
		TNuE:       2.76,
		TNuEBar:    4.01,
		TNuX:       6.26,
		ENuE:       11,
		ENuEBar:    16,
		ENuX:       25,
	}
}

// dist is the unit-normalized pinched Fermi-Dirac energy distribution at
// temperature T.
func dist(Ev, T float64) float64 {
	exponent := Ev/T - 3
	if exponent > expCutoff {
		return 0
	}
	return Ev * Ev / (fdNorm * T * T * T * (math.Exp(exponent) + 1))
}

// Flux returns the total neutrino number flux per unit energy, in
// 1/MeV/cm^2/s, at neutrino energy Ev (MeV) after propagating a distance
// l (kpc). The heavy-lepton term counts four species.
func (s *Spectrum) Flux(Ev, l float64) float64 {
	L := s.Luminosity * units.ErgToMeV
	lcm := l * units.KpcToCm

	sum := dist(Ev, s.TNuE)/s.ENuE +
		dist(Ev, s.TNuEBar)/s.ENuEBar +
		4*dist(Ev, s.TNuX)/s.ENuX

	return L / (4 * math.Pi * lcm * lcm) * sum
}
