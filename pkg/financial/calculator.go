// File: calculator.go
// Title: Calculator
// Description: The generic calculator binding a numeric representation to
//              engine settings and an optional logger, with the float64 and
//              decimal instantiations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	"github.com/shopspring/decimal"

	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
	"github.com/msto63/finkit/foundation/core/log"
	"github.com/msto63/finkit/foundation/utils/numeric"
)

// Calculator evaluates the financial functions over values of type T.
// A Calculator holds no mutable state and is safe for concurrent use.
type Calculator[T any] struct {
	num      numeric.Arithmetic[T]
	settings Settings
	logger   *log.Logger

	zero, one, two T
	step, epsilon  T
}

// Option configures a Calculator
type Option func(*options)

type options struct {
	settings Settings
	logger   *log.Logger
}

// WithSettings replaces the engine settings. Zero fields keep their defaults.
func WithSettings(settings Settings) Option {
	return func(o *options) {
		o.settings = settings.withDefaults()
	}
}

// WithLogger enables trace logging of solver iterations
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{settings: DefaultSettings()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns a calculator over an arbitrary representation
func New[T any](num numeric.Arithmetic[T], opts ...Option) *Calculator[T] {
	return newCalculator(num, buildOptions(opts))
}

func newCalculator[T any](num numeric.Arithmetic[T], o options) *Calculator[T] {
	return &Calculator[T]{
		num:      num,
		settings: o.settings,
		logger:   o.logger,
		zero:     num.FromInt(0),
		one:      num.FromInt(1),
		two:      num.FromInt(2),
		step:     num.FromFloat(o.settings.Step),
		epsilon:  num.FromFloat(o.settings.Epsilon),
	}
}

// NewFloat returns a float64 calculator
func NewFloat(opts ...Option) *Calculator[float64] {
	return newCalculator[float64](numeric.Float{}, buildOptions(opts))
}

// NewDecimal returns a decimal calculator whose division keeps
// Settings.DecimalPlaces fractional digits
func NewDecimal(opts ...Option) *Calculator[decimal.Decimal] {
	o := buildOptions(opts)
	return newCalculator[decimal.Decimal](numeric.NewDecimal(o.settings.DecimalPlaces), o)
}

// Default calculators
var (
	Float   = NewFloat()
	Decimal = NewDecimal()
)

// Arithmetic returns the numeric representation
func (c *Calculator[T]) Arithmetic() numeric.Arithmetic[T] {
	return c.num
}

// Settings returns the engine settings
func (c *Calculator[T]) Settings() Settings {
	return c.settings
}

// DefaultGuess returns Settings.Guess as a T
func (c *Calculator[T]) DefaultGuess() T {
	return c.num.FromFloat(c.settings.Guess)
}

// quo divides a by b, failing when b is zero
func (c *Calculator[T]) quo(module, operation, divisor string, a, b T) (T, error) {
	if c.num.Sign(b) == 0 {
		return c.zero, mdwerrors.DivisionByZero(module, operation, divisor)
	}
	return c.num.Quo(a, b), nil
}

// growth returns (1+rate)^nper
func (c *Calculator[T]) growth(module, operation string, rate, nper T) (T, error) {
	g, err := c.num.Pow(c.num.Add(c.one, rate), nper)
	if err != nil {
		return c.zero, wrap(module, operation, err)
	}
	return g, nil
}
