// File: secant.go
// Title: Secant Root Finder
// Description: The bounded secant iteration shared by IRR and Rate, with
//              tie perturbation, a bisection fallback that keeps the rate
//              above -1, and a tagged outcome.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	"github.com/msto63/finkit/foundation/core/log"
	"github.com/msto63/finkit/foundation/utils/numeric"
)

// solverState is the phase of a secant run
type solverState int

const (
	stateInitializing solverState = iota
	stateIterating
	stateConverged
	stateDiverged
)

func (s solverState) String() string {
	switch s {
	case stateInitializing:
		return "initializing"
	case stateIterating:
		return "iterating"
	case stateConverged:
		return "converged"
	case stateDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// outcome is the result of a secant run. value is the root when state is
// stateConverged and the last estimate otherwise.
type outcome[T any] struct {
	value      T
	state      solverState
	iterations int
	degenerate bool
}

// point is one (rate, residual) pair of the secant window
type point[T any] struct {
	rate, residual T
}

// secant finds a root of residual from two seed points
type secant[T any] struct {
	calc      *Calculator[T]
	operation string
	residual  func(rate T) (T, error)
	converged func(prev, next point[T]) bool
}

func (s *secant[T]) run(p0, p1 point[T]) (outcome[T], error) {
	c := s.calc
	n := c.num
	out := outcome[T]{value: p1.rate, state: stateInitializing}
	tracing := c.logger.IsLevelEnabled(log.LevelTrace)

	for i := 1; i <= c.settings.MaxIterations; i++ {
		out.state = stateIterating
		out.iterations = i

		if numeric.Equal(n, p1.residual, p0.residual) {
			if n.Cmp(p1.rate, p0.rate) > 0 {
				p0.rate = n.Sub(p0.rate, c.step)
			} else {
				p0.rate = n.Add(p0.rate, c.step)
			}
			f, err := s.residual(p0.rate)
			if err != nil {
				return out, err
			}
			p0.residual = f
			if numeric.Equal(n, p1.residual, p0.residual) {
				out.state = stateDiverged
				out.degenerate = true
				s.finish(out)
				return out, nil
			}
		}

		slope := n.Quo(n.Sub(p1.rate, p0.rate), n.Sub(p1.residual, p0.residual))
		next := n.Sub(p1.rate, n.Mul(slope, p1.residual))
		if n.Sign(n.Add(c.one, next)) <= 0 {
			next = n.Quo(n.Sub(p1.rate, c.one), c.two)
		}

		f, err := s.residual(next)
		if err != nil {
			return out, err
		}
		p2 := point[T]{rate: next, residual: f}
		out.value = next

		if tracing {
			c.logger.Trace("secant step", log.Fields{
				"operation": s.operation,
				"iteration": i,
				"rate":      n.String(p2.rate),
				"residual":  n.String(p2.residual),
			})
		}

		if s.converged(p1, p2) {
			out.state = stateConverged
			s.finish(out)
			return out, nil
		}
		p0, p1 = p1, p2
	}

	out.state = stateDiverged
	s.finish(out)
	return out, nil
}

func (s *secant[T]) finish(out outcome[T]) {
	s.calc.logger.Debug("secant finished", log.Fields{
		"operation":  s.operation,
		"state":      out.state.String(),
		"iterations": out.iterations,
		"estimate":   s.calc.num.String(out.value),
		"degenerate": out.degenerate,
	})
}
