// File: error_test.go
// Title: Unit Tests for Core Error Implementation
// Description: Tests for the structured Error type covering creation,
//              wrapping, classification, metadata, and chain traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %q; want %q", err.Error(), "something went wrong")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() is zero; want a set timestamp")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() is empty; want captured frames")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("read failed")
	wrapped := Wrap(base, "loading profile")

	if wrapped.Error() != "loading profile: read failed" {
		t.Errorf("Error() = %q; want %q", wrapped.Error(), "loading profile: read failed")
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false; want true")
	}
	if wrapped.Unwrap() != base {
		t.Error("Unwrap() did not return the original cause")
	}
}

func TestWrapNil(t *testing.T) {
	if got := Wrap(nil, "no-op"); got != nil {
		t.Errorf("Wrap(nil, ...) = %v; want nil", got)
	}
}

func TestWrapPreservesClassification(t *testing.T) {
	inner := New("bad value").
		WithCode(CodeValidationFailed).
		WithSeverity(SeverityLow).
		WithDetail("field", "length")

	wrapped := Wrap(inner, "profile validation")

	if wrapped.Code() != CodeValidationFailed {
		t.Errorf("Code() = %v; want %v", wrapped.Code(), CodeValidationFailed)
	}
	if wrapped.Severity() != SeverityLow {
		t.Errorf("Severity() = %v; want %v", wrapped.Severity(), SeverityLow)
	}
	if wrapped.Details()["field"] != "length" {
		t.Errorf("Details()[field] = %v; want %q", wrapped.Details()["field"], "length")
	}
}

func TestWithCode(t *testing.T) {
	err := New("missing file").WithCode(CodeNotFound)

	if err.Code() != CodeNotFound {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeNotFound)
	}
	// Auto-derived severity for the code
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("boom").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("invalid profile").
		WithOperation("profile.Validate").
		WithDetail("field", "phone.length").
		WithDetails(map[string]interface{}{"value": -1, "expected": "positive integer"})

	details := err.Details()
	if details["field"] != "phone.length" {
		t.Errorf("details[field] = %v; want %q", details["field"], "phone.length")
	}
	if details["value"] != -1 {
		t.Errorf("details[value] = %v; want -1", details["value"])
	}
	if err.Operation() != "profile.Validate" {
		t.Errorf("Operation() = %q; want %q", err.Operation(), "profile.Validate")
	}

	// Details() must return a copy
	details["field"] = "mutated"
	if err.Details()["field"] != "phone.length" {
		t.Error("Details() returned a reference to internal state")
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("disk error")
	mid := Wrap(base, "reading profile")
	top := Wrap(mid, "initializing textkit")

	if top.RootCause() != base {
		t.Errorf("RootCause() = %v; want %v", top.RootCause(), base)
	}

	standalone := New("standalone")
	if standalone.RootCause() != standalone {
		t.Error("RootCause() of an uncaused error should be the error itself")
	}
}

func TestString(t *testing.T) {
	err := New("bad input").
		WithCode(CodeInvalidInput).
		WithOperation("textx.ValidateToken").
		WithDetail("token", "")

	s := err.String()
	for _, want := range []string{"Error: bad input", "Code: INVALID_INPUT", "Operation: textx.ValidateToken", "token="} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad config").
		WithCode(CodeInvalidConfig).
		WithOperation("profile.Load").
		WithDetail("path", "web.yaml")

	raw, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal failed: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(raw, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal failed: %v", jsonErr)
	}

	if decoded["message"] != "bad config" {
		t.Errorf("message = %v; want %q", decoded["message"], "bad config")
	}
	if decoded["code"] != "INVALID_CONFIG" {
		t.Errorf("code = %v; want %q", decoded["code"], "INVALID_CONFIG")
	}
	if decoded["operation"] != "profile.Load" {
		t.Errorf("operation = %v; want %q", decoded["operation"], "profile.Load")
	}
}

func TestHasCode(t *testing.T) {
	kitErr := New("nope").WithCode(CodeNotFound)
	plain := fmt.Errorf("plain error")

	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", kitErr, CodeNotFound, true},
		{"non-matching code", kitErr, CodeInternal, false},
		{"plain error", plain, CodeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("HasCode() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	kitErr := New("oops").WithCode(CodeConfigError).WithSeverity(SeverityHigh)
	plain := errors.New("plain")

	if GetCode(kitErr) != CodeConfigError {
		t.Errorf("GetCode(kitErr) = %v; want %v", GetCode(kitErr), CodeConfigError)
	}
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v; want %v", GetCode(plain), CodeUnknown)
	}
	if GetSeverity(kitErr) != SeverityHigh {
		t.Errorf("GetSeverity(kitErr) = %v; want %v", GetSeverity(kitErr), SeverityHigh)
	}
	if GetSeverity(plain) != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v; want %v", GetSeverity(plain), SeverityMedium)
	}
}
