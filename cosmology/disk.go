package cosmology

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/san-kum/dbdm/units"
)

// Disk models the baryonic mass distribution of a galaxy as a
// double-exponential disk, with scale lengths inherited from the Milky Way
// and rescaled by (MG/Mmw)^(1/3).
type Disk struct {
	ScaleRadius float64 // Milky Way radial scale length, kpc
	ScaleHeight float64 // Milky Way vertical scale height, kpc
	HalfWidth   float64 // vertical integration half-width, kpc
	Nodes       int     // quadrature nodes for the column integral
}

// NewDisk returns a Disk with Milky Way scale lengths and a 10 kpc
// integration half-width.
func NewDisk() *Disk {
	return &Disk{
		ScaleRadius: units.DiskScaleRadius,
		ScaleHeight: units.DiskScaleHeight,
		HalfWidth:   10,
		Nodes:       61,
	}
}

func (d *Disk) scales(MG float64) (rd, zd float64) {
	s := math.Cbrt(MG / units.MilkyWayMass)
	return s * d.ScaleRadius, s * d.ScaleHeight
}

// Density returns the baryonic mass density in Msun/kpc^3 at cylindrical
// radius R and height zh (kpc) for a galaxy of stellar mass MG.
func (d *Disk) Density(R, zh, MG float64) float64 {
	rd, zd := d.scales(MG)
	norm := MG / (4 * math.Pi * rd * rd * zd)
	return norm * math.Exp(-R/rd) * math.Exp(-math.Abs(zh)/zd)
}

// AreaDensity returns the baryonic surface density Sigma(R) in Msun/kpc^2,
// integrating the vertical profile by Gauss-Legendre quadrature. The
// profile is symmetric in zh, so only the upper half is integrated; the
// domain is truncated at twenty scale heights, beyond which the column is
// negligible.
func (d *Disk) AreaDensity(R, MG float64) float64 {
	_, zd := d.scales(MG)
	zmax := math.Min(d.HalfWidth, 20*zd)
	col := quad.Fixed(func(zh float64) float64 {
		return d.Density(R, zh, MG)
	}, 0, zmax, d.Nodes, nil, 0)
	return 2 * col
}

// AreaDensityFit returns the closed-form thin-disk surface density,
// Sigma(R) = MG/(2 pi rd^2) exp(-R/rd). It is the fast path used when the
// quadrature column is not required.
func (d *Disk) AreaDensityFit(R, MG float64) float64 {
	rd, _ := d.scales(MG)
	return MG / (2 * math.Pi * rd * rd) * math.Exp(-R/rd)
}
