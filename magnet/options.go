// SPDX-License-Identifier: MIT

// Package magnet: functional construction of Parameters.
//
// Defaults reproduce the reference fixture in mm, g, s, A:
//   - 1 N = 1e6 g·mm/s², μ0 = 1.25663706212 g·mm/(A²·s²),
//   - magnet R = 2.5 mm, L = 5 mm, M = 1e3 A/mm, centered and unrotated,
//   - water (η = 0.001) and a 100 nm particle with a constant magnetisation model.
//
// WithX constructors panic on non-finite input (programmer error); range checks
// that depend on user data live in Parameters.Validate.
package magnet

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/particle"
)

// ---------- Defaults (single source of truth) ----------

const (
	DefaultRadius         = 2.5
	DefaultLength         = 5.0
	DefaultPermeability   = 1.25663706212
	DefaultMagnetization  = 1e3
	DefaultViscosity      = 0.001
	DefaultParticleRadius = 100e-6
)

const (
	panicNotFinite = "magnet: option value must be finite"
	panicNilModel  = "magnet: WithModel: model must not be nil"
)

// Option mutates Parameters under construction.
type Option func(*Parameters)

// Default returns the reference parameter set (see package comment).
func Default() Parameters {
	return Parameters{
		Radius:         DefaultRadius,
		Length:         DefaultLength,
		Permeability:   DefaultPermeability,
		Magnetization:  DefaultMagnetization,
		Viscosity:      DefaultViscosity,
		ParticleRadius: DefaultParticleRadius,
		Model:          particle.Constant{},
	}
}

// New applies opts over Default and validates the result.
// Implementation:
//   - Stage 1: start from Default().
//   - Stage 2: apply options in order (later options win).
//   - Stage 3: Validate.
//
// Errors:
//   - ErrBadGeometry, ErrBadParticle, ErrNaNInf (see Validate).
func New(opts ...Option) (Parameters, error) {
	p := Default()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

// WithRadius sets the magnet radius.
func WithRadius(r float64) Option {
	mustFinite(r)
	return func(p *Parameters) { p.Radius = r }
}

// WithLength sets the axial length of the magnet.
func WithLength(l float64) Option {
	mustFinite(l)
	return func(p *Parameters) { p.Length = l }
}

// WithPosition sets the magnet center in the lab frame.
func WithPosition(x, y, z float64) Option {
	mustFinite(x, y, z)
	return func(p *Parameters) { p.Position = r3.Vec{X: x, Y: y, Z: z} }
}

// WithRotation sets the rotation angles in degrees: gamma about x, then beta about y.
func WithRotation(rotX, rotY float64) Option {
	mustFinite(rotX, rotY)
	return func(p *Parameters) {
		p.RotationX = rotX
		p.RotationY = rotY
	}
}

// WithPermeability sets the magnetic permeability.
func WithPermeability(mu float64) Option {
	mustFinite(mu)
	return func(p *Parameters) { p.Permeability = mu }
}

// WithMagnetization sets the magnetization of the magnet.
func WithMagnetization(m float64) Option {
	mustFinite(m)
	return func(p *Parameters) { p.Magnetization = m }
}

// WithViscosity sets the dynamic viscosity of the fluid.
func WithViscosity(eta float64) Option {
	mustFinite(eta)
	return func(p *Parameters) { p.Viscosity = eta }
}

// WithParticleRadius sets the radius of the particle.
func WithParticleRadius(r float64) Option {
	mustFinite(r)
	return func(p *Parameters) { p.ParticleRadius = r }
}

// WithModel sets the particle magnetisation model. Resolve names with
// particle.ParseModel first; a nil model panics.
func WithModel(m particle.Model) Option {
	if m == nil {
		panic(panicNilModel)
	}
	return func(p *Parameters) { p.Model = m }
}

func mustFinite(vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(panicNotFinite)
		}
	}
}
