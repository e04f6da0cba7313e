// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // every point evaluated (and converged, under --strict)
	ExitFailure      = 1 // some point did not converge under --strict
	ExitCommandError = 2 // usage, config, point or evaluation error
)

// Error codes reported in CLI responses.
const (
	ErrCodeConfig      = "E001" // warp file missing or invalid
	ErrCodePoint       = "E002" // point could not be parsed
	ErrCodeTransform   = "E003" // evaluation failed (singular Jacobian, NaN, ...)
	ErrCodeConvergence = "E004" // strict mode and some point did not converge
)

// ExitError carries the process exit code of a failed command whose
// message was already rendered by an OutputFormatter.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// exitError wraps err with an exit code.
func exitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode maps an error returned by a command to the process exit code.
// Errors that are not ExitErrors come from cobra itself (unknown flag,
// missing --config, bad --format) and count as command errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter renders command results as text or JSON on stdout and
// routes diagnostics through a slog logger on stderr.
type OutputFormatter struct {
	Format string
	Writer io.Writer
	Logger *slog.Logger
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error part of a CLIResponse.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// newFormatter binds a formatter to the command's streams.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
		Logger: opts.newLogger(cmd.ErrOrStderr()),
	}
}

// Success writes data; in text mode data is printed with fmt.Fprint, so a
// payload should implement fmt.Stringer.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprint(f.Writer, data)
	return err
}

// Fail renders err under code and returns it wrapped with the exit code,
// so a RunE can end with `return f.Fail(...)`.
func (f *OutputFormatter) Fail(exitCode int, code string, err error, details any) error {
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error(), Details: details},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, err)
	}
	return exitError(exitCode, err)
}
