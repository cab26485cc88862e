// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cylmag/magnet"
	"github.com/katalvlaran/cylmag/particle"
)

var (
	// ErrRead indicates the parameter file could not be read.
	ErrRead = errors.New("config: read parameter file")
	// ErrDecode indicates malformed YAML or an unknown key.
	ErrDecode = errors.New("config: decode parameter file")
	// ErrUnknownPreset is returned by Preset for an unregistered name.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// File is the on-disk form of magnet.Parameters.
type File struct {
	RadiusMagnet          float64 `yaml:"radius_magnet"`
	Length                float64 `yaml:"length"`
	XPosition             float64 `yaml:"x_position"`
	YPosition             float64 `yaml:"y_position"`
	ZPosition             float64 `yaml:"z_position"`
	RotationX             float64 `yaml:"rotation_x"`
	RotationY             float64 `yaml:"rotation_y"`
	MagneticPermeability  float64 `yaml:"magnetic_permeability"`
	Magnetization         float64 `yaml:"magnetization"`
	DynamicViscosityFluid float64 `yaml:"dynamic_viscosity_fluid"`
	RadiusParticle        float64 `yaml:"radius_particle"`
	MagnetisationModel    string  `yaml:"magnetisation_model"`

	ParticleSaturationMagnetization float64 `yaml:"particle_saturation_magnetization,omitempty"`
}

// FromParameters converts p to its file form.
func FromParameters(p magnet.Parameters) File {
	f := File{
		RadiusMagnet:          p.Radius,
		Length:                p.Length,
		XPosition:             p.Position.X,
		YPosition:             p.Position.Y,
		ZPosition:             p.Position.Z,
		RotationX:             p.RotationX,
		RotationY:             p.RotationY,
		MagneticPermeability:  p.Permeability,
		Magnetization:         p.Magnetization,
		DynamicViscosityFluid: p.Viscosity,
		RadiusParticle:        p.ParticleRadius,
		MagnetisationModel:    p.MagnetisationModel().Name(),
	}
	if ls, ok := p.Model.(particle.LinearSaturation); ok {
		f.ParticleSaturationMagnetization = ls.Saturation
	}

	return f
}

// Parameters resolves the model name and validates the result.
// Errors wrap particle.ErrInvalidModel, particle.ErrBadSaturation or the
// magnet validation sentinels.
func (f File) Parameters() (magnet.Parameters, error) {
	model, err := particle.ParseModel(f.MagnetisationModel, f.ParticleSaturationMagnetization)
	if err != nil {
		return magnet.Parameters{}, fmt.Errorf("config: magnetisation_model: %w", err)
	}

	p := magnet.Parameters{
		Radius:         f.RadiusMagnet,
		Length:         f.Length,
		Position:       r3.Vec{X: f.XPosition, Y: f.YPosition, Z: f.ZPosition},
		RotationX:      f.RotationX,
		RotationY:      f.RotationY,
		Permeability:   f.MagneticPermeability,
		Magnetization:  f.Magnetization,
		Viscosity:      f.DynamicViscosityFluid,
		ParticleRadius: f.RadiusParticle,
		Model:          model,
	}
	if err := p.Validate(); err != nil {
		return magnet.Parameters{}, fmt.Errorf("config: %w", err)
	}

	return p, nil
}

// Decode reads a parameter document from r over the "base" preset.
func Decode(r io.Reader) (magnet.Parameters, error) {
	return DecodeOver(r, magnet.Default())
}

// DecodeOver reads a parameter document from r; keys absent from the document
// keep their value from base. An empty document yields base.
func DecodeOver(r io.Reader, base magnet.Parameters) (magnet.Parameters, error) {
	f := FromParameters(base)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return magnet.Parameters{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return f.Parameters()
}

// Load reads the parameter file at path over the "base" preset.
func Load(path string) (magnet.Parameters, error) {
	return LoadOver(path, magnet.Default())
}

// LoadOver reads the parameter file at path over base.
func LoadOver(path string, base magnet.Parameters) (magnet.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return magnet.Parameters{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	p, err := DecodeOver(bytes.NewReader(data), base)
	if err != nil {
		return magnet.Parameters{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Encode writes p as a parameter document.
func Encode(w io.Writer, p magnet.Parameters) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromParameters(p)); err != nil {
		return err
	}

	return enc.Close()
}

// Marshal returns the parameter document of p.
func Marshal(p magnet.Parameters) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var presets = map[string]func() magnet.Parameters{
	"base": magnet.Default,
	"si": func() magnet.Parameters {
		return magnet.Parameters{
			Radius:         2.0e-3,
			Length:         7.0e-3,
			Permeability:   1.25663706212e-6,
			Magnetization:  1.05e6,
			Viscosity:      0.001,
			ParticleRadius: 100e-9,
			Model:          particle.Constant{},
		}
	},
	"rod": func() magnet.Parameters {
		p := magnet.Default()
		p.Radius, p.Length = 2.0, 7.0
		return p
	},
}

// Preset returns a named parameter set.
func Preset(name string) (magnet.Parameters, error) {
	mk, ok := presets[name]
	if !ok {
		return magnet.Parameters{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}

	return mk(), nil
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
