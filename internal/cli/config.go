// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warpinv/matrix"
	"github.com/katalvlaran/warpinv/warp"
	"github.com/katalvlaran/warpinv/warps"
)

// Warp kinds understood by the config loader.
const (
	KindIdentity = "identity"
	KindScale    = "scale"
	KindAffine   = "affine"
	KindGaussian = "gaussian"
)

// ErrInvalidConfig is returned for any structurally wrong warp file.
var ErrInvalidConfig = errors.New("cli: invalid warp config")

// WarpConfig is the YAML description of a warp and its inverse settings.
//
//	kind: gaussian
//	sigma: 1.0
//	knots:
//	  - center: [0, 0, 0]
//	    displacement: [0.3, -0.2, 0.1]
//	tolerance: 0.0001
//	iterations: 100
type WarpConfig struct {
	Kind string `yaml:"kind"`

	// scale
	Factors []float64 `yaml:"factors,omitempty"`

	// affine
	Linear [][]float64 `yaml:"linear,omitempty"`
	Offset []float64   `yaml:"offset,omitempty"`

	// gaussian
	Sigma float64      `yaml:"sigma,omitempty"`
	Knots []KnotConfig `yaml:"knots,omitempty"`

	// Inverse settings; zero means the library default.
	Tolerance  float64 `yaml:"tolerance,omitempty"`
	Iterations int     `yaml:"iterations,omitempty"`
}

// KnotConfig is one Gaussian control point.
type KnotConfig struct {
	Center       []float64 `yaml:"center"`
	Displacement []float64 `yaml:"displacement"`
}

// LoadConfig reads and decodes a warp file. Unknown keys are rejected.
func LoadConfig(path string) (*WarpConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a warp description from YAML bytes.
func ParseConfig(data []byte) (*WarpConfig, error) {
	var cfg WarpConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// Forwarder builds the warp described by c.
func (c *WarpConfig) Forwarder() (warp.Forwarder, error) {
	switch c.Kind {
	case KindIdentity:
		return warps.Identity{}, nil

	case KindScale:
		switch len(c.Factors) {
		case 1:
			return warps.NewUniformScale(c.Factors[0]), nil
		case 3:
			return warps.Scale{Factors: warp.Point3{c.Factors[0], c.Factors[1], c.Factors[2]}}, nil
		}
		return nil, fmt.Errorf("%w: scale needs 1 or 3 factors, got %d", ErrInvalidConfig, len(c.Factors))

	case KindAffine:
		if len(c.Linear) != 3 {
			return nil, fmt.Errorf("%w: affine linear part needs 3 rows, got %d", ErrInvalidConfig, len(c.Linear))
		}
		var a warps.Affine
		for i, row := range c.Linear {
			v, err := vec3(row, fmt.Sprintf("linear row %d", i))
			if err != nil {
				return nil, err
			}
			a.Linear[i] = v
		}
		if c.Offset != nil {
			off, err := vec3(c.Offset, "offset")
			if err != nil {
				return nil, err
			}
			a.Offset = matrix.Vec3(off)
		}
		return a, nil

	case KindGaussian:
		knots := make([]warps.Knot, 0, len(c.Knots))
		for k, kc := range c.Knots {
			center, err := vec3(kc.Center, fmt.Sprintf("knot %d center", k))
			if err != nil {
				return nil, err
			}
			disp, err := vec3(kc.Displacement, fmt.Sprintf("knot %d displacement", k))
			if err != nil {
				return nil, err
			}
			knots = append(knots, warps.Knot{Center: warp.Point3(center), Displacement: warp.Point3(disp)})
		}
		return warps.NewGaussian(c.Sigma, knots...)

	case "":
		return nil, fmt.Errorf("%w: missing kind", ErrInvalidConfig)
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, c.Kind)
}

// Options converts the inverse settings into transform options.
func (c *WarpConfig) Options() []warp.Option {
	var opts []warp.Option
	if c.Tolerance != 0 {
		opts = append(opts, warp.WithTolerance(c.Tolerance))
	}
	if c.Iterations != 0 {
		opts = append(opts, warp.WithMaxIterations(c.Iterations))
	}
	return opts
}

func vec3(s []float64, what string) ([3]float64, error) {
	var v [3]float64
	if len(s) != 3 {
		return v, fmt.Errorf("%w: %s needs 3 values, got %d", ErrInvalidConfig, what, len(s))
	}
	copy(v[:], s)
	return v, nil
}
