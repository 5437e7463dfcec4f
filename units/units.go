// Package units defines the physical constants and unit conversions shared
// by the flux calculation.
//
// Conventions: energies and particle masses in MeV, distances in kpc
// (converted to cm at unit boundaries), galactic masses in solar masses,
// times in seconds.
package units

const (
	// KpcToCm converts kiloparsecs to centimeters.
	KpcToCm = 3.085677581e21

	// ErgToMeV converts erg to MeV.
	ErgToMeV = 6.241509074e5

	// MsunKg is the solar mass in kilograms.
	MsunKg = 1.98847e30

	// MsunMeV is the solar rest-mass energy in MeV.
	MsunMeV = 1.11545e60

	// YearToSec is the Julian year in seconds.
	YearToSec = 3.1557e7

	// LightSpeed is c in km/s.
	LightSpeed = 2.99792458e5

	// HubbleConstant is H0 in km/s/Mpc.
	HubbleConstant = 67.4

	// HubbleDistance is c/H0 in kpc.
	HubbleDistance = LightSpeed / HubbleConstant * 1e3

	// OmegaM and OmegaL are the matter and dark-energy density fractions
	// of a flat LCDM cosmology.
	OmegaM = 0.315
	OmegaL = 0.685

	// NuLuminosity is the supernova neutrino luminosity per species, erg/s.
	// A canonical core collapse releases ~3e53 erg in neutrinos over ~10 s
	// shared by six species.
	NuLuminosity = 5e51

	// MilkyWayMass is the Milky Way stellar mass in Msun; galactic scaling
	// relations are anchored to it.
	MilkyWayMass = 5.29e10

	// MilkyWayHaloRadius is the Milky Way halo radius in kpc.
	MilkyWayHaloRadius = 230.0

	// NFWRhoS and NFWRs are the Milky Way NFW characteristic density
	// (MeV/cm^3) and radius (kpc).
	NFWRhoS = 184.0
	NFWRs   = 24.42

	// DiskScaleRadius and DiskScaleHeight are the Milky Way baryonic disk
	// scale lengths in kpc.
	DiskScaleRadius = 2.5
	DiskScaleHeight = 0.3

	// SNPerMsun is the number of core-collapse supernovae per solar mass
	// of star formation.
	SNPerMsun = 0.017

	// EnuCutoff is the neutrino energy (MeV) above which the emission
	// spectrum model is no longer trusted.
	EnuCutoff = 200.0
)
