// Package cosmology provides the cosmic source-history ingredients of the
// flux integral: the expansion rate, the star-formation history, the galaxy
// stellar mass function, and the baryonic disk column density.
package cosmology

import (
	"math"

	"github.com/san-kum/dbdm/units"
)

// ExpansionRate returns the dimensionless Hubble rate E(z) of a flat LCDM
// cosmology.
func ExpansionRate(z float64) float64 {
	zz := 1 + z
	return math.Sqrt(units.OmegaM*zz*zz*zz + units.OmegaL)
}

// SFRDensity returns the comoving star-formation rate density in
// Msun/yr/Mpc^3 (Madau-Dickinson form).
func SFRDensity(z float64) float64 {
	zz := 1 + z
	return 0.015 * math.Pow(zz, 2.7) / (1 + math.Pow(zz/2.9, 5.6))
}

// Schechter fit parameters of the galaxy stellar mass function, evolved
// smoothly in redshift. Valid for m = log10(MG/Msun) in [6,12], z in [0,8].
func schechterMStar(z float64) float64  { return 10.78 - 0.13*z + 0.004*z*z }
func schechterLogPhi(z float64) float64 { return -2.45 - 0.10*z - 0.030*z*z }
func schechterAlpha(z float64) float64  { return -1.35 - 0.06*z }

// MassFunction returns the comoving galaxy number density per dex of
// stellar mass, dn/dlog10(MG), in Mpc^-3 dex^-1, at m = log10(MG/Msun)
// and redshift z.
func MassFunction(m, z float64) float64 {
	x := math.Pow(10, m-schechterMStar(z))
	phi := math.Pow(10, schechterLogPhi(z))
	return math.Ln10 * phi * math.Pow(x, 1+schechterAlpha(z)) * math.Exp(-x)
}
