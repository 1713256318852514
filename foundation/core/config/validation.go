// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against required, type, range
//              and pattern rules. Environment overrides are validated as the
//              getters would see them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: Read-only validation, ApplyDefaults, Err helper

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/finkit/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // the key must be present
	Type     string      // "string", "int", "float" or "bool"
	Min      interface{} // inclusive lower bound for numbers
	Max      interface{} // inclusive upper bound for numbers
	Default  interface{} // value set by ApplyDefaults when absent
	Pattern  string      // regular expression for strings
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise a structured error listing
// every violation
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", append([]string(nil), r.Errors...))
}

// ApplyDefaults sets the Default of every rule whose key is absent
func (c *Config) ApplyDefaults(rules ValidationRules) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, rule := range rules {
		if rule.Default != nil && c.getValue(key) == nil {
			c.setValue(key, rule.Default)
		}
	}
}

// Validate validates the configuration against the provided rules. Errors
// are reported in key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value, err := c.effectiveValue(key, rule.Type)
	if err != nil {
		return err
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Min != nil || rule.Max != nil {
		if err := validateBounds(key, value, rule); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

// effectiveValue returns the environment override converted to the rule
// type when one is set, otherwise the stored value.
func (c *Config) effectiveValue(key, typ string) (interface{}, error) {
	raw, ok := c.getEnvValue(key)
	if !ok {
		return c.getValue(key), nil
	}

	envKey := c.formatEnvKey(key)
	switch typ {
	case "int":
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field '%s' from %s must be an integer, got '%s'", key, envKey, raw)
		}
		return v, nil
	case "float":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("field '%s' from %s must be a float, got '%s'", key, envKey, raw)
		}
		return v, nil
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("field '%s' from %s must be a boolean, got '%s'", key, envKey, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "float":
		switch value.(type) {
		case float64, int, int64:
		default:
			return fmt.Errorf("field '%s' must be a float, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}
	return nil
}

func validateBounds(key string, value interface{}, rule ValidationRule) error {
	v, ok := toFloat(value)
	if !ok {
		return fmt.Errorf("field '%s' must be numeric for range validation", key)
	}
	if lo, ok := toFloat(rule.Min); ok && v < lo {
		return fmt.Errorf("field '%s' value %g is less than minimum %g", key, v, lo)
	}
	if hi, ok := toFloat(rule.Max); ok && v > hi {
		return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, v, hi)
	}
	return nil
}

func validatePattern(key string, value interface{}, pattern string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string for pattern validation", key)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern for field '%s': %v", key, err)
	}
	if !re.MatchString(s) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, pattern)
	}
	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
