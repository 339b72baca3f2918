// Package heightmap composes octaves of gradient noise into normalized height
// grids and converts them to 8-bit rasters.
package heightmap

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var (
	// ErrInvalidConfiguration reports fractal parameters that cannot be normalized.
	ErrInvalidConfiguration = errors.New("invalid fractal configuration")
	// ErrInvalidDimensions reports a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// MaxOctaves bounds Params.Octaves. Higher octaves only sample lattice points,
// and far enough past it the frequency overflows to +Inf.
const MaxOctaves = 64

// Params holds the per-call fractal configuration.
type Params struct {
	// Octaves is the number of noise layers, in [1, MaxOctaves].
	Octaves int `yaml:"octaves"`
	// Persistence scales the amplitude from one octave to the next, in [0, 1].
	Persistence float64 `yaml:"persistence"`
	// Scale multiplies grid coordinates before sampling.
	Scale float64 `yaml:"scale"`
	// Workers bounds the goroutines used for row generation. Values below 2
	// generate sequentially.
	Workers int `yaml:"workers"`
}

// DefaultParams mirrors the reference viewer's initial settings.
func DefaultParams() Params {
	return Params{Octaves: 12, Persistence: 1, Scale: 0.01, Workers: 1}
}

// Validate reports every problem with p, combined into one error.
func (p Params) Validate() error {
	var err error
	if p.Octaves < 1 || p.Octaves > MaxOctaves {
		err = multierr.Append(err, fmt.Errorf("%w: octaves must be in [1, %d], got %d", ErrInvalidConfiguration, MaxOctaves, p.Octaves))
	}
	if math.IsNaN(p.Persistence) || p.Persistence < 0 || p.Persistence > 1 {
		err = multierr.Append(err, fmt.Errorf("%w: persistence must be in [0, 1], got %v", ErrInvalidConfiguration, p.Persistence))
	}
	if math.IsNaN(p.Scale) || math.IsInf(p.Scale, 0) || p.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: scale must be finite and > 0, got %v", ErrInvalidConfiguration, p.Scale))
	}
	return err
}

func validateSize(width, height int) error {
	var err error
	if width <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: width must be > 0, got %d", ErrInvalidDimensions, width))
	}
	if height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: height must be > 0, got %d", ErrInvalidDimensions, height))
	}
	return err
}
