// Package dbdm computes the diffuse flux of dark matter boosted by
// supernova neutrinos, integrated over cosmic star-formation history.
//
// The calculation composes four layers:
//
//   - [kinematics]: relativistic two-body scattering transforms
//   - [halo] and [neutrino]: the dark matter density a supernova
//     illuminates and the neutrino flux doing the boosting
//   - [cosmology]: the source history (expansion rate, star-formation
//     rate, galaxy stellar mass function, baryonic disk)
//   - [vegas]: the adaptive Monte Carlo integrator evaluating the nested
//     source integral
//
// The public entry points are [Flux] for the differential flux at a given
// recoil energy, [Event] for the energy-integrated rate, and [Spectrum]
// for a flux grid evaluated in parallel:
//
//	p := dbdm.DefaultParams()
//	res, err := dbdm.Flux(ctx, 10, 1, p) // Tx = 10 MeV, mx = 1 MeV
//
// All results carry the Monte Carlo standard error alongside the value.
// For fixed Params.MonteCarlo.Seed the computation is deterministic.
package dbdm
