// Package deploy parses the positional deployment file consumed by the
// clearance calculator. The format is line oriented, one value per
// line, in fixed order:
//
//	line 0: building A height (m)
//	line 1: building B height (m)
//	line 2: path distance (m)
//	line 3: transmission frequency (MHz)
//	line 4: obstruction count N
//	lines 5..5+2N-1: N (distanceFromA, height) pairs, one value per line
package deploy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RMahshie/linkplan/pkg/models"
)

// ErrMalformedInput marks deployment files with missing, extra or
// non-numeric lines.
var ErrMalformedInput = errors.New("malformed deployment input")

// ErrInvalidGeometry marks deployments whose obstruction placement
// would make the Fresnel radius undefined (an obstruction sitting on an
// endpoint or outside the path), or whose path parameters are not
// positive.
var ErrInvalidGeometry = errors.New("invalid obstruction geometry")

// headerLines is the number of scalar lines before the obstruction pairs.
const headerLines = 5

// Parse reads a deployment file and returns the typed configuration.
// Trailing blank lines are tolerated; anything else out of shape fails
// with ErrMalformedInput, and physically meaningless geometry fails
// with ErrInvalidGeometry.
func Parse(r io.Reader) (*models.PathConfiguration, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	if len(lines) < headerLines {
		return nil, fmt.Errorf("%w: expected at least %d lines, got %d", ErrMalformedInput, headerLines, len(lines))
	}

	cfg := &models.PathConfiguration{}
	if cfg.BuildingAHeight, err = parseValue(lines, 0, "building A height"); err != nil {
		return nil, err
	}
	if cfg.BuildingBHeight, err = parseValue(lines, 1, "building B height"); err != nil {
		return nil, err
	}
	if cfg.PathDistanceM, err = parseValue(lines, 2, "path distance"); err != nil {
		return nil, err
	}
	if cfg.FrequencyMHz, err = parseValue(lines, 3, "transmission frequency"); err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(lines[4])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: line 5: obstruction count %q is not a non-negative integer", ErrMalformedInput, lines[4])
	}

	want := headerLines + 2*count
	if len(lines) != want {
		return nil, fmt.Errorf("%w: %d obstructions declared, expected %d lines, got %d", ErrMalformedInput, count, want, len(lines))
	}

	cfg.Obstructions = make([]models.Obstruction, 0, count)
	for i := 0; i < count; i++ {
		d, err := parseValue(lines, headerLines+2*i, fmt.Sprintf("obstruction %d distance", i+1))
		if err != nil {
			return nil, err
		}
		h, err := parseValue(lines, headerLines+2*i+1, fmt.Sprintf("obstruction %d height", i+1))
		if err != nil {
			return nil, err
		}
		cfg.Obstructions = append(cfg.Obstructions, models.Obstruction{DistanceFromA: d, Height: h})
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects geometries the Fresnel formula cannot handle
// instead of letting them surface as division by zero downstream.
func validate(cfg *models.PathConfiguration) error {
	if cfg.PathDistanceM <= 0 {
		return fmt.Errorf("%w: path distance %g must be positive", ErrInvalidGeometry, cfg.PathDistanceM)
	}
	if cfg.FrequencyMHz <= 0 {
		return fmt.Errorf("%w: frequency %g MHz must be positive", ErrInvalidGeometry, cfg.FrequencyMHz)
	}
	for i, o := range cfg.Obstructions {
		if o.DistanceFromA <= 0 || o.DistanceFromA >= cfg.PathDistanceM {
			return fmt.Errorf("%w: obstruction %d at %g m must lie strictly between the endpoints (0, %g)",
				ErrInvalidGeometry, i+1, o.DistanceFromA, cfg.PathDistanceM)
		}
	}
	return nil
}

func parseValue(lines []string, idx int, field string) (float64, error) {
	v, err := strconv.ParseFloat(lines[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not a number", ErrMalformedInput, idx+1, field, lines[idx])
	}
	return v, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading deployment input: %w", err)
	}
	// Ignore trailing blank lines; blank lines in the middle are malformed.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
