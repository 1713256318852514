// Package config loads finkit settings from TOML or YAML files.
//
// Package: config
// Title: finkit Configuration Management
// Description: Map-backed configuration with dot-notation access, typed
//              getters with defaults, environment variable overrides and
//              rule-based validation. The command line tool reads solver
//              tolerances, numeric precision and logging settings from it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Removed file watching and caches, env-aware validation,
//                      optional discovery
//
// Example finkit.toml:
//
//	[solver]
//	max_iterations = 40
//	step = 1e-5
//	epsilon = 1e-7
//	guess = 0.1
//
//	[numeric]
//	representation = "decimal"
//	decimal_places = 32
//
//	[log]
//	level = "warn"
//	format = "logfmt"
//
// Every key can be overridden from the environment. With EnvPrefix
// "FINKIT", solver.max_iterations is read from FINKIT_SOLVER_MAX_ITERATIONS.
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("finkit.toml", config.LoadOptions{EnvPrefix: "FINKIT"})
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(rules).Err(); err != nil {
//		return err
//	}
//	places := cfg.GetInt("numeric.decimal_places", 32)
package config
