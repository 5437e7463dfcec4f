package dbdm

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/dbdm/cosmology"
	"github.com/san-kum/dbdm/halo"
	"github.com/san-kum/dbdm/kinematics"
	"github.com/san-kum/dbdm/neutrino"
	"github.com/san-kum/dbdm/units"
	"github.com/san-kum/dbdm/vegas"
)

// Result carries a flux or event-rate estimate with its Monte Carlo
// uncertainty.
type Result struct {
	Value float64 // per MeV/cm^2/s (Flux), per cm^2/s (Event)
	Err   float64 // Monte Carlo standard error, same units
	ChiSq float64 // chi^2/dof of the iteration combination
	Evals int     // total integrand evaluations
}

// model holds the physics layers assembled from one Params value.
type model struct {
	p       Params
	profile *halo.Profile
	snr     *neutrino.Spectrum
	disk    *cosmology.Disk
	dsigma  float64
}

func newModel(p Params) *model {
	profile := halo.NewProfile()
	profile.RhoS = p.RhoS
	profile.Rs = p.Rs
	profile.Eta = p.Eta
	profile.Spike = p.Spike
	profile.SigmaV = p.SigmaV
	profile.TBH = p.TBH

	return &model{
		p:       p,
		profile: profile,
		snr:     neutrino.NewSpectrum(),
		disk:    cosmology.NewDisk(),
		dsigma:  kinematics.DiffSigma(p.Sigma),
	}
}

// sourceDistance returns the distance (kpc) between the boost point and
// the galactic center, for propagation length l from a supernova at
// galactocentric radius R and polar angle theta.
func sourceDistance(l, R, theta float64) float64 {
	return math.Sqrt(l*l + R*R - 2*l*R*math.Cos(theta))
}

// diff is the differential boost spectrum dN/dTx at a single galaxy:
// geometry, halo density, cross-section, neutrino flux and the kinematic
// Jacobian folded together.
func (m *model) diff(Tx, mx, MG, R, l, theta, thetaCM float64) float64 {
	// the l^2 volume element cancels the 1/l^2 flux dilution, but not at
	// the endpoint itself
	if l <= 0 {
		return 0
	}
	r := sourceDistance(l, R, theta)
	if r < 1e-8 {
		return 0
	}

	Ev := kinematics.NeutrinoEnergy(Tx, mx, thetaCM)
	slope := kinematics.EnergySlope(Tx, mx, thetaCM)
	vx := kinematics.Velocity(Tx, mx)
	nx := m.profile.NumberDensity(r, mx, MG)

	return l * l * math.Sin(theta) * math.Sin(thetaCM) *
		nx * m.dsigma * m.snr.Flux(Ev, l) * slope * vx
}

// spectrum weights diff by the cosmic source history at redshift z and
// log-stellar-mass mm. The recoil energy is blueshifted to (1+z)Tx at the
// source; contributions requiring neutrino energies beyond the emission
// model's validity are dropped.
func (m *model) spectrum(z, mm, Tx, mx, R, l, theta, thetaCM float64) float64 {
	Txp := (1 + z) * Tx
	if Txp >= units.EnuCutoff {
		return 0
	}

	MG := math.Pow(10, mm)
	src := cosmology.MassFunction(mm, z) * cosmology.SFRDensity(z) / cosmology.ExpansionRate(z)

	if m.p.Average {
		var col float64
		if m.p.UseFit {
			col = m.disk.AreaDensityFit(R, MG)
		} else {
			col = m.disk.AreaDensity(R, MG)
		}
		return 2 * math.Pi * R * col * src * m.diff(Txp, mx, MG, R, l, theta, thetaCM)
	}
	return MG * src * m.diff(Txp, mx, MG, R, l, theta, thetaCM)
}

// prefactor converts the comoving source integral into a local flux: one
// Hubble distance of sources at the present supernova rate, normalized to
// the Milky Way stellar mass, in cm and seconds.
func prefactor() float64 {
	return units.HubbleDistance * units.SNPerMsun /
		units.MilkyWayMass / cosmology.SFRDensity(0) / 1e6 /
		(units.KpcToCm * units.KpcToCm) / units.YearToSec
}

// kpc3 converts the kpc-volume element of the integrand to cm^3.
const kpc3 = units.KpcToCm * units.KpcToCm * units.KpcToCm

// Flux returns the diffuse boosted dark matter flux per unit recoil
// energy, in 1/MeV/cm^2/s, at recoil kinetic energy Tx (MeV) for dark
// matter mass mx (MeV).
func Flux(ctx context.Context, Tx, mx float64, p Params) (Result, error) {
	if Tx <= 0 || mx <= 0 {
		return Result{}, fmt.Errorf("%w: Tx=%g mx=%g", ErrParameterBounds, Tx, mx)
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	m := newModel(p)
	lmax := p.RMax + p.RHalo

	var bounds [][2]float64
	var fn vegas.Integrand
	if p.Average {
		// (z, m, R, l, theta, thetaCM)
		bounds = [][2]float64{
			{0, p.ZMax}, {p.MMin, p.MMax}, {0, p.RMax}, {0, lmax}, {0, math.Pi}, {0, math.Pi},
		}
		fn = func(x []float64) float64 {
			return m.spectrum(x[0], x[1], Tx, mx, x[2], x[3], x[4], x[5])
		}
	} else {
		// (z, m, l, theta, thetaCM)
		bounds = [][2]float64{
			{0, p.ZMax}, {p.MMin, p.MMax}, {0, lmax}, {0, math.Pi}, {0, math.Pi},
		}
		fn = func(x []float64) float64 {
			return m.spectrum(x[0], x[1], Tx, mx, p.R, x[2], x[3], x[4])
		}
	}

	integ, err := vegas.New(bounds)
	if err != nil {
		return Result{}, err
	}
	res, err := integ.Integrate(ctx, fn, p.MonteCarlo)
	if err != nil {
		return Result{}, err
	}

	scale := 4 * math.Pi * math.Pi * p.Tau * kpc3 * kinematics.Velocity(Tx, mx) * prefactor()
	return Result{
		Value: res.Mean * scale,
		Err:   res.Err * scale,
		ChiSq: res.ChiSq,
		Evals: res.Evals,
	}, nil
}

// Event returns the boosted dark matter event rate per unit area, in
// 1/cm^2/s, integrating the flux over recoil energies [TxMin, TxMax].
func Event(ctx context.Context, mx float64, p Params) (Result, error) {
	if mx <= 0 {
		return Result{}, fmt.Errorf("%w: mx=%g", ErrParameterBounds, mx)
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	m := newModel(p)
	lmax := p.RMax + p.RHalo

	var bounds [][2]float64
	var fn vegas.Integrand
	if p.Average {
		// (z, m, R, l, theta, thetaCM, Tx)
		bounds = [][2]float64{
			{0, p.ZMax}, {p.MMin, p.MMax}, {0, p.RMax}, {0, lmax},
			{0, math.Pi}, {0, math.Pi}, {p.TxMin, p.TxMax},
		}
		fn = func(x []float64) float64 {
			return m.spectrum(x[0], x[1], x[6], mx, x[2], x[3], x[4], x[5]) *
				kinematics.Velocity(x[6], mx)
		}
	} else {
		// (z, m, l, theta, thetaCM, Tx)
		bounds = [][2]float64{
			{0, p.ZMax}, {p.MMin, p.MMax}, {0, lmax},
			{0, math.Pi}, {0, math.Pi}, {p.TxMin, p.TxMax},
		}
		fn = func(x []float64) float64 {
			return m.spectrum(x[0], x[1], x[5], mx, p.R, x[2], x[3], x[4]) *
				kinematics.Velocity(x[5], mx)
		}
	}

	integ, err := vegas.New(bounds)
	if err != nil {
		return Result{}, err
	}
	res, err := integ.Integrate(ctx, fn, p.MonteCarlo)
	if err != nil {
		return Result{}, err
	}

	scale := 4 * math.Pi * math.Pi * p.Tau * kpc3 * prefactor()
	return Result{
		Value: res.Mean * scale,
		Err:   res.Err * scale,
		ChiSq: res.ChiSq,
		Evals: res.Evals,
	}, nil
}
