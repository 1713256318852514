// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching, severity
//              derivation and serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Code matching and chain helpers

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "number of periods must not be zero"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("period %d outside 1..%d", 7, 5)
	if err.Error() != "period 7 outside 1..5" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("no convergence").WithCode(CodeNonConvergence),
			message:  "IRR failed",
			wantMsg:  "IRR failed: no convergence",
			wantCode: CodeNonConvergence,
		},
		{
			name:     "wrap fmt-wrapped structured error keeps code",
			err:      fmt.Errorf("outer: %w", New("bad rate").WithCode(CodeInvalidInput)),
			message:  "command failed",
			wantMsg:  "command failed: outer: bad rate",
			wantCode: CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
		})
	}
}

func TestWrapChainDepthLimit(t *testing.T) {
	var err error = New("root").WithCode(CodeOverflow)
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	if d := chainDepth(err); d > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want at most %d", d, MaxErrorChainDepth+1)
	}
	if GetCode(err) != CodeOverflow {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeOverflow)
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}
	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}
	if rootCause := top.RootCause(); rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("no convergence").WithCode(CodeNonConvergence)
	unknown := New("anything")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", New("IRR: 40 iterations").WithCode(CodeNonConvergence), sentinel, true},
		{"different code", New("bad").WithCode(CodeInvalidInput), sentinel, false},
		{"wrapped same code", fmt.Errorf("cli: %w", New("x").WithCode(CodeNonConvergence)), sentinel, true},
		{"unknown target never matches by code", New("y"), unknown, false},
		{"plain target", New("z").WithCode(CodeNonConvergence), errors.New("no convergence"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithCode(t *testing.T) {
	err := New("no convergence").WithCode(CodeNonConvergence)

	if err.Code() != CodeNonConvergence {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeNonConvergence)
	}
	if err.Severity() != GetSeverityFromCode(CodeNonConvergence) {
		t.Errorf("Severity() = %v, want %v", err.Severity(), GetSeverityFromCode(CodeNonConvergence))
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestWithDetails(t *testing.T) {
	err := New("invalid argument").
		WithDetail("argument", "rate").
		WithDetails(map[string]interface{}{"value": -1.5, "module": "annuity"})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("Details() length = %d, want 3", len(details))
	}
	if details["argument"] != "rate" {
		t.Errorf("Details()[argument] = %v", details["argument"])
	}
	if v, ok := err.Detail("value"); !ok || v != -1.5 {
		t.Errorf("Detail(value) = %v, %v", v, ok)
	}

	details["argument"] = "changed"
	if v, _ := err.Detail("argument"); v != "rate" {
		t.Error("Details() must return a copy")
	}
}

func TestContextAndOperation(t *testing.T) {
	err := New("x").WithContext("financial").WithOperation("Rate")
	if err.Context() != "financial" {
		t.Errorf("Context() = %q", err.Context())
	}
	if err.Operation() != "Rate" {
		t.Errorf("Operation() = %q", err.Operation())
	}

	wrapped := Wrap(err, "outer")
	if wrapped.Operation() != "Rate" {
		t.Errorf("wrapped Operation() = %q, want inherited", wrapped.Operation())
	}
}

func TestString(t *testing.T) {
	err := New("life must not be zero").
		WithCode(CodeInvalidInput).
		WithOperation("SLN").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: life must not be zero",
		"Code: INVALID_INPUT",
		"Severity: low",
		"Operation: SLN",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "solver failed").
		WithCode(CodeDegenerateIteration).
		WithOperation("IRR").
		WithDetail("iterations", 3)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != string(CodeDegenerateIteration) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "IRR" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestHasCodeAndGetters(t *testing.T) {
	inner := New("x").WithCode(CodeDivisionByZero)
	outer := fmt.Errorf("wrapped: %w", Wrap(inner, "y").WithCode(CodeInvalidInput))

	if !HasCode(outer, CodeDivisionByZero) {
		t.Error("HasCode() should find inner code")
	}
	if !HasCode(outer, CodeInvalidInput) {
		t.Error("HasCode() should find outer code")
	}
	if HasCode(outer, CodeOverflow) {
		t.Error("HasCode() found a code that is not in the chain")
	}
	if GetCode(outer) != CodeInvalidInput {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeInvalidInput)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}
