// Package kinematics provides the two-body scattering kinematics linking
// supernova neutrino energies to boosted dark matter recoils.
//
// The neutrino is treated as massless and the scattering as elastic. All
// energies and masses are in MeV, angles in radians.
package kinematics

import "math"

// Velocity returns the speed of a dark matter particle with kinetic energy
// Tx and mass mx, in units of c.
func Velocity(Tx, mx float64) float64 {
	return math.Sqrt(Tx*(Tx+2*mx)) / (Tx + mx)
}

// NeutrinoEnergy returns the incoming neutrino energy required to boost a
// dark matter particle of mass mx to kinetic energy Tx at center-of-mass
// scattering angle thetaCM.
func NeutrinoEnergy(Tx, mx, thetaCM float64) float64 {
	c := math.Cos(thetaCM / 2)
	c2 := c * c
	return Tx * (1 + math.Sqrt(1+2*c2*mx/Tx)) / (2 * c2)
}

// EnergySlope returns the Jacobian dEv/dTx at fixed thetaCM, used to map
// the neutrino spectrum onto the recoil spectrum.
func EnergySlope(Tx, mx, thetaCM float64) float64 {
	c := math.Cos(thetaCM / 2)
	c2 := c * c
	x := mx / Tx
	return (1 + (1+c2*x)/math.Sqrt(2*c2*x+1)) / (2 * c2)
}

// DiffSigma returns the differential cross-section dSigma/dOmega in the
// center-of-mass frame for a total cross-section sigma (cm^2), assuming
// energy-independent isotropic scattering.
func DiffSigma(sigma float64) float64 {
	return sigma / (4 * math.Pi)
}
