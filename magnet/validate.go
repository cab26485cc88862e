// SPDX-License-Identifier: MIT

package magnet

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Wrap with fmt.Errorf("ctx: %w", ErrX); match with errors.Is.
var (
	// ErrBadGeometry indicates a non-positive magnet radius or length.
	ErrBadGeometry = errors.New("magnet: radius and length must be > 0")

	// ErrBadParticle indicates a non-positive particle radius or fluid viscosity.
	ErrBadParticle = errors.New("magnet: particle radius and viscosity must be > 0")

	// ErrNaNInf indicates a NaN or ±Inf parameter.
	ErrNaNInf = errors.New("magnet: NaN or Inf parameter")
)

// Validate checks that p describes a physical configuration.
// The evaluators never call it: they accept anything and propagate non-finite
// results. Loaders and constructors call it once.
//
// Error priority: NaN/Inf -> geometry -> particle.
func (p Parameters) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"radius_magnet", p.Radius},
		{"length", p.Length},
		{"x_position", p.Position.X},
		{"y_position", p.Position.Y},
		{"z_position", p.Position.Z},
		{"rotation_x", p.RotationX},
		{"rotation_y", p.RotationY},
		{"magnetic_permeability", p.Permeability},
		{"magnetization", p.Magnetization},
		{"dynamic_viscosity_fluid", p.Viscosity},
		{"radius_particle", p.ParticleRadius},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrNaNInf)
		}
	}
	if p.Radius <= 0 || p.Length <= 0 {
		return fmt.Errorf("radius=%v length=%v: %w", p.Radius, p.Length, ErrBadGeometry)
	}
	if p.ParticleRadius <= 0 || p.Viscosity <= 0 {
		return fmt.Errorf("radius_particle=%v viscosity=%v: %w", p.ParticleRadius, p.Viscosity, ErrBadParticle)
	}

	return nil
}
