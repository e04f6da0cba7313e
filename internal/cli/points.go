// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/warpinv/warp"
)

// ErrInvalidPoint is returned when a coordinate triple cannot be parsed.
var ErrInvalidPoint = errors.New("cli: invalid point")

// ParsePoint parses "x,y,z" (commas and/or whitespace as separators).
func ParsePoint(s string) (warp.Point3, error) {
	var p warp.Point3
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return p, fmt.Errorf("%w: %q: want 3 coordinates, got %d", ErrInvalidPoint, s, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return p, fmt.Errorf("%w: %q: %v", ErrInvalidPoint, s, err)
		}
		p[i] = v
	}
	return p, nil
}

// ReadPoints parses one point per non-blank line; lines starting with '#'
// are skipped.
func ReadPoints(r io.Reader) ([]warp.Point3, error) {
	var (
		pts  []warp.Point3
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := ParsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return pts, nil
}
