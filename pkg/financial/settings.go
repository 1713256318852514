// File: settings.go
// Title: Engine Settings
// Description: Iteration limits, tolerances, the default solver guess and
//              the decimal working precision, with defaults matching the
//              legacy Financial API and loading from configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/finkit/foundation/core/error"
	"github.com/msto63/finkit/foundation/utils/numeric"
)

// Configuration keys read by SettingsFrom
const (
	KeyMaxIterations = "solver.max_iterations"
	KeyStep          = "solver.step"
	KeyEpsilon       = "solver.epsilon"
	KeyGuess         = "solver.guess"
	KeyDecimalPlaces = "numeric.decimal_places"
)

// Settings tune the root finders and the decimal representation
type Settings struct {
	// MaxIterations bounds the secant loop of IRR and Rate
	MaxIterations int
	// Step is the perturbation applied when two residuals tie, and the
	// offset of IRR's second seed
	Step float64
	// Epsilon is the residual tolerance of Rate and the step tolerance of IRR
	Epsilon float64
	// Guess is the starting rate when the caller supplies none
	Guess float64
	// DecimalPlaces is the working precision of decimal division
	DecimalPlaces int32
}

// DefaultSettings returns the settings of the legacy API
func DefaultSettings() Settings {
	return Settings{
		MaxIterations: 40,
		Step:          1e-5,
		Epsilon:       1e-7,
		Guess:         0.1,
		DecimalPlaces: numeric.DefaultPlaces,
	}
}

// withDefaults replaces zero fields by their defaults
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MaxIterations == 0 {
		s.MaxIterations = d.MaxIterations
	}
	if s.Step == 0 {
		s.Step = d.Step
	}
	if s.Epsilon == 0 {
		s.Epsilon = d.Epsilon
	}
	if s.DecimalPlaces == 0 {
		s.DecimalPlaces = d.DecimalPlaces
	}
	return s
}

// Validate reports every out-of-range field in one error
func (s Settings) Validate() error {
	var violations []string
	if s.MaxIterations <= 0 {
		violations = append(violations, fmt.Sprintf("max_iterations must be positive, got %d", s.MaxIterations))
	}
	if s.Step <= 0 {
		violations = append(violations, fmt.Sprintf("step must be positive, got %g", s.Step))
	}
	if s.Epsilon <= 0 {
		violations = append(violations, fmt.Sprintf("epsilon must be positive, got %g", s.Epsilon))
	}
	if s.Guess <= -1 {
		violations = append(violations, fmt.Sprintf("guess must be greater than -1, got %g", s.Guess))
	}
	if s.DecimalPlaces <= 0 {
		violations = append(violations, fmt.Sprintf("decimal_places must be positive, got %d", s.DecimalPlaces))
	}
	if len(violations) == 0 {
		return nil
	}
	return mdwerror.New("invalid engine settings: "+strings.Join(violations, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("Settings.Validate").
		WithDetail("violations", violations)
}

// SettingsSource is the subset of *config.Config that SettingsFrom reads
type SettingsSource interface {
	GetInt(key string, defaultValue ...int) int
	GetFloat(key string, defaultValue ...float64) float64
}

// SettingsFrom reads settings from src, falling back to the defaults for
// missing keys. The result is validated.
func SettingsFrom(src SettingsSource) (Settings, error) {
	d := DefaultSettings()
	s := Settings{
		MaxIterations: src.GetInt(KeyMaxIterations, d.MaxIterations),
		Step:          src.GetFloat(KeyStep, d.Step),
		Epsilon:       src.GetFloat(KeyEpsilon, d.Epsilon),
		Guess:         src.GetFloat(KeyGuess, d.Guess),
		DecimalPlaces: int32(src.GetInt(KeyDecimalPlaces, int(d.DecimalPlaces))),
	}
	if err := s.Validate(); err != nil {
		return d, err
	}
	return s, nil
}
