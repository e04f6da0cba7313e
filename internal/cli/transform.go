// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/warpinv/warp"
)

// TransformOptions holds flags shared by the forward and inverse commands.
type TransformOptions struct {
	Config     string
	Tolerance  float64
	Iterations int
	Jacobian   bool
	Strict     bool
}

// PointResult is the per-point payload of a forward or inverse run.
type PointResult struct {
	Input    [3]float64     `json:"input"`
	Output   [3]float64     `json:"output"`
	Jacobian *[3][3]float64 `json:"jacobian,omitempty"`
	Stats    *warp.Stats    `json:"stats,omitempty"`
}

// TransformResult is the payload of a forward or inverse run.
type TransformResult struct {
	Mode   string        `json:"mode"`
	Points []PointResult `json:"points"`
}

// String renders one line per point: the output coordinates, followed by
// the Jacobian rows and inverse statistics when present.
func (r TransformResult) String() string {
	var sb strings.Builder
	for _, p := range r.Points {
		sb.WriteString(formatVec(p.Output))
		if p.Jacobian != nil {
			sb.WriteString(" | ")
			for i, row := range p.Jacobian {
				if i > 0 {
					sb.WriteString("; ")
				}
				sb.WriteString(formatVec(row))
			}
		}
		if p.Stats != nil {
			fmt.Fprintf(&sb, " (iterations=%d error=%g converged=%t)",
				p.Stats.Iterations, p.Stats.Error, p.Stats.Converged)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatVec(v [3]float64) string {
	parts := make([]string, 3)
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// NewForwardCommand creates the forward subcommand.
func NewForwardCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransformCommand(rootOpts, warp.Forward,
		"forward [x,y,z ...]",
		"Apply the warp to points",
		`Apply the warp described by --config to each point.

Points are given as x,y,z arguments, or one per line on stdin when no
arguments are present.`,
		`  warpinv forward -c warp.yaml 1,2,3
  warpinv forward -c warp.yaml --jacobian --format json 0,0,0`)
}

// NewInverseCommand creates the inverse subcommand.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransformCommand(rootOpts, warp.Inverse,
		"inverse [x,y,z ...]",
		"Invert the warp numerically at points",
		`Find X with F(X) ≈ P for each point P, where F is the warp described by
--config. The solver runs damped Newton iteration until |F(X) − P| is within
the tolerance or the iteration budget is spent.

Non-convergence is reported as a warning on stderr; with --strict it also
makes the command exit with status 1.`,
		`  warpinv inverse -c warp.yaml 4,2,6
  warpinv inverse -c warp.yaml --tolerance 1e-9 --iterations 50 < points.txt`)
}

func newTransformCommand(rootOpts *RootOptions, mode warp.Mode, use, short, long, example string) *cobra.Command {
	opts := &TransformOptions{}

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Example: example,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, rootOpts, opts, mode, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "path to the warp YAML file (required)")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", warp.DefaultTolerance, "inverse convergence tolerance on |F(X) − P|")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", warp.DefaultMaxIterations, "maximum Newton steps per inverse point")
	cmd.Flags().BoolVar(&opts.Jacobian, "jacobian", false, "also print the Jacobian of the active mapping")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "treat inverse non-convergence as a failure")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runTransform(cmd *cobra.Command, rootOpts *RootOptions, opts *TransformOptions, mode warp.Mode, args []string) error {
	formatter := newFormatter(cmd, rootOpts)

	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, err, map[string]string{"config": opts.Config})
	}
	fwd, err := cfg.Forwarder()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, err, map[string]string{"config": opts.Config})
	}

	// Flags given explicitly win over the file; the file wins over defaults.
	wopts := cfg.Options()
	if cmd.Flags().Changed("tolerance") {
		wopts = append(wopts, warp.WithTolerance(opts.Tolerance))
	}
	if cmd.Flags().Changed("iterations") {
		wopts = append(wopts, warp.WithMaxIterations(opts.Iterations))
	}
	wopts = append(wopts, warp.WithLogger(formatter.Logger))
	if opts.Strict {
		wopts = append(wopts, warp.WithStrictConvergence())
	}

	tr, err := warp.New(fwd, wopts...)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, err, nil)
	}
	if mode == warp.Inverse {
		tr.Inverse()
	}

	points, err := collectPoints(cmd, args)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodePoint, err, nil)
	}
	formatter.Logger.Debug("transform",
		slog.String("mode", mode.String()),
		slog.Int("points", len(points)),
		slog.Float64("tolerance", tr.InverseTolerance()),
		slog.Int("iterations", tr.InverseIterations()),
	)

	result := TransformResult{Mode: mode.String(), Points: make([]PointResult, 0, len(points))}
	failed := 0
	for _, p := range points {
		pr, err := evaluate(tr, mode, p, opts.Jacobian)
		if errors.Is(err, warp.ErrNoConvergence) {
			failed++
		} else if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeTransform, err, map[string]any{"point": [3]float64(p)})
		}
		result.Points = append(result.Points, pr)
	}

	if failed > 0 {
		if formatter.Format != "json" {
			_ = formatter.Success(result)
		}
		err := fmt.Errorf("%d of %d point(s): %w", failed, len(points), warp.ErrNoConvergence)
		return formatter.Fail(ExitFailure, ErrCodeConvergence, err, result)
	}

	return formatter.Success(result)
}

// evaluate transforms one point. ErrNoConvergence is returned alongside a
// fully populated result.
func evaluate(tr *warp.Transform, mode warp.Mode, p warp.Point3, withJacobian bool) (PointResult, error) {
	pr := PointResult{Input: p}

	if mode == warp.Inverse {
		var (
			out warp.Point3
			jac warp.Jacobian
			st  warp.Stats
			err error
		)
		if withJacobian {
			out, jac, st, err = tr.InverseTransformPointAndDerivative(p)
			j := [3][3]float64(jac)
			pr.Jacobian = &j
		} else {
			out, st, err = tr.InverseTransformPoint(p)
		}
		pr.Output, pr.Stats = out, &st
		return pr, err
	}

	if withJacobian {
		out, jac, err := tr.TransformPointAndDerivative(p)
		if err != nil {
			return pr, err
		}
		j := [3][3]float64(jac)
		pr.Output, pr.Jacobian = out, &j
		return pr, nil
	}
	out, err := tr.TransformPoint(p)
	pr.Output = out
	return pr, err
}

func collectPoints(cmd *cobra.Command, args []string) ([]warp.Point3, error) {
	if len(args) == 0 {
		return ReadPoints(cmd.InOrStdin())
	}
	points := make([]warp.Point3, 0, len(args))
	for _, a := range args {
		p, err := ParsePoint(a)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
