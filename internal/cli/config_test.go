// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpinv/matrix"
	"github.com/katalvlaran/warpinv/warp"
	"github.com/katalvlaran/warpinv/warps"
)

func TestParseConfig_Kinds(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want warp.Forwarder
	}{
		{"identity", "kind: identity\n", warps.Identity{}},
		{"uniform scale", "kind: scale\nfactors: [2]\n", warps.NewUniformScale(2)},
		{"scale", "kind: scale\nfactors: [1, 2, 3]\n", warps.Scale{Factors: warp.Point3{1, 2, 3}}},
		{
			"affine",
			"kind: affine\nlinear: [[1, 2, 0], [0, 1, 0], [0, 0, 2]]\noffset: [1, -1, 0.5]\n",
			warps.Affine{Linear: matrix.Mat3{{1, 2, 0}, {0, 1, 0}, {0, 0, 2}}, Offset: matrix.Vec3{1, -1, 0.5}},
		},
		{
			"affine without offset",
			"kind: affine\nlinear: [[2, 0, 0], [0, 2, 0], [0, 0, 2]]\n",
			warps.Affine{Linear: matrix.Mat3{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yaml))
			require.NoError(t, err)
			fwd, err := cfg.Forwarder()
			require.NoError(t, err)
			assert.Equal(t, tt.want, fwd)
		})
	}
}

func TestParseConfig_Gaussian(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
kind: gaussian
sigma: 1.5
knots:
  - center: [0, 0, 0]
    displacement: [0.3, -0.2, 0.1]
  - center: [2, 1, -1]
    displacement: [-0.1, 0.25, 0.2]
tolerance: 1e-6
iterations: 40
`))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 40, cfg.Iterations)

	fwd, err := cfg.Forwarder()
	require.NoError(t, err)
	g, ok := fwd.(*warps.Gaussian)
	require.True(t, ok)
	assert.Equal(t, 1.5, g.Sigma())
	require.Len(t, g.Knots(), 2)
	assert.Equal(t, warp.Point3{2, 1, -1}, g.Knots()[1].Center)

	tr, err := warp.New(fwd, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 1e-6, tr.InverseTolerance())
	assert.Equal(t, 40, tr.InverseIterations())
}

func TestParseConfig_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":            "",
		"unknown key":      "kind: identity\nwobble: 3\n",
		"missing kind":     "factors: [2]\n",
		"unknown kind":     "kind: spline\n",
		"scale arity":      "kind: scale\nfactors: [1, 2]\n",
		"affine rows":      "kind: affine\nlinear: [[1, 0, 0]]\n",
		"affine row arity": "kind: affine\nlinear: [[1, 0], [0, 1, 0], [0, 0, 1]]\n",
		"offset arity":     "kind: affine\nlinear: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]\noffset: [1]\n",
		"knot arity":       "kind: gaussian\nsigma: 1\nknots:\n  - center: [0, 0]\n    displacement: [1, 0, 0]\n",
		"not yaml":         "kind: [identity\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(body))
			if err == nil {
				_, err = cfg.Forwarder()
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseConfig_GaussianSigma(t *testing.T) {
	cfg, err := ParseConfig([]byte("kind: gaussian\nknots: []\n"))
	require.NoError(t, err)
	_, err = cfg.Forwarder()
	assert.ErrorIs(t, err, warps.ErrInvalidSigma)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/warp.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestWarpConfig_OptionsDefaults(t *testing.T) {
	cfg := &WarpConfig{Kind: KindIdentity}
	assert.Empty(t, cfg.Options())

	cfg.Tolerance = -1
	_, err := warp.New(warps.Identity{}, cfg.Options()...)
	assert.ErrorIs(t, err, warp.ErrOptionViolation)
}
