// SPDX-License-Identifier: MIT

package particle

import (
	"errors"
	"fmt"
	"math"
)

// Configuration names accepted by ParseModel.
const (
	NameConstant         = "constant"
	NameLinearSaturation = "linear_saturation"
)

// linearFactor is the moment factor of a linearly magnetised sphere below saturation.
const linearFactor = 3.0

var (
	// ErrInvalidModel is returned by ParseModel for an unknown model name.
	ErrInvalidModel = errors.New("particle: invalid magnetisation model")

	// ErrBadSaturation indicates a non-finite or non-positive saturation magnetization
	// for the linear saturation model.
	ErrBadSaturation = errors.New("particle: saturation magnetization must be finite and > 0")
)

// Model is a magnetisation model. The set is closed: only Constant and
// LinearSaturation implement it.
type Model interface {
	// Name returns the configuration name of the model.
	Name() string

	// factor returns the volumetric moment factor f(|H|).
	factor(hMagnitude float64) float64
}

// Constant models a particle whose moment does not depend on the applied field.
type Constant struct{}

// Name implements Model.
func (Constant) Name() string { return NameConstant }

func (Constant) factor(float64) float64 { return 1.0 }

// LinearSaturation models a particle magnetised linearly (factor 3) until the
// applied field reaches a third of Saturation, and saturated (Saturation/|H|) above.
type LinearSaturation struct {
	Saturation float64 // particle saturation magnetization, same unit as H
}

// Name implements Model.
func (LinearSaturation) Name() string { return NameLinearSaturation }

func (l LinearSaturation) factor(hMagnitude float64) float64 {
	if hMagnitude < l.Saturation/linearFactor {
		return linearFactor
	}

	return l.Saturation / hMagnitude
}

// ParseModel resolves a configuration name into a Model.
// saturation is only read for NameLinearSaturation.
//
// Errors:
//   - ErrInvalidModel: name is not one of the supported models.
//   - ErrBadSaturation: linear saturation with saturation <= 0, NaN or ±Inf.
func ParseModel(name string, saturation float64) (Model, error) {
	switch name {
	case NameConstant:
		return Constant{}, nil
	case NameLinearSaturation:
		if math.IsNaN(saturation) || math.IsInf(saturation, 0) || saturation <= 0 {
			return nil, fmt.Errorf("%s: %v: %w", name, saturation, ErrBadSaturation)
		}

		return LinearSaturation{Saturation: saturation}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrInvalidModel)
	}
}

// Volume returns the volume of a spherical particle of the given radius.
func Volume(radius float64) float64 {
	return (4.0 / 3.0) * math.Pi * radius * radius * radius
}

// Mobility returns the Stokes mobility 1/(6πηr) of a sphere of radius r in a
// fluid of dynamic viscosity η.
func Mobility(viscosity, radius float64) float64 {
	return 1.0 / (6 * math.Pi * viscosity * radius)
}

// EffectiveMoment returns f(|H|)·volume for the given model.
// A nil model behaves as Constant.
func EffectiveMoment(m Model, hMagnitude, volume float64) float64 {
	if m == nil {
		m = Constant{}
	}

	return m.factor(hMagnitude) * volume
}

// SphereMoment is EffectiveMoment with the volume of a sphere of the given radius.
func SphereMoment(m Model, hMagnitude, radius float64) float64 {
	return EffectiveMoment(m, hMagnitude, Volume(radius))
}
