// File: errors.go
// Title: Shared Error Standards for textkit Packages
// Description: Provides standardized error construction utilities used across
//              the textkit packages so that every error carries a consistent
//              module, operation, code, and severity. Use these instead of
//              fmt.Errorf() or errors.New() in package code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"
	"strings"

	tkerror "github.com/msto63/textkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextx   = "textx"
	ModuleSeqx    = "seqx"
	ModuleBytex   = "bytex"
	ModuleProfile = "profile"
)

// Standardized error codes shared by all modules
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tkerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	if eb.code == "" {
		eb.code = CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, eb.message)
	} else {
		err = tkerror.New(eb.message)
	}

	return err.
		WithCode(tkerror.Code(eb.code)).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL textkit MODULES
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tkerror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *tkerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(tkerror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(CodeOperationFailed).
		Severity(tkerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(tkerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(tkerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(tkerror.SeverityMedium).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a textkit error
func ExtractDetails(err error) map[string]interface{} {
	if kitErr, ok := err.(*tkerror.Error); ok {
		return kitErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// TextX convenience functions

func TextxValidationError(operation, input, expected string) *tkerror.Error {
	return ValidationFailed(ModuleTextx, operation, input, expected)
}

func TextxInvalidInput(operation string, input interface{}) *tkerror.Error {
	return InvalidInput(ModuleTextx, operation, input, "valid string")
}

// SeqX convenience functions

func SeqxInvalidInput(operation string, input interface{}) *tkerror.Error {
	return InvalidInput(ModuleSeqx, operation, input, "non-nil sequence")
}

// ByteX convenience functions

func BytexInvalidInput(operation string, input interface{}) *tkerror.Error {
	return InvalidInput(ModuleBytex, operation, input, "valid unit table")
}

func BytexOutOfRange(operation string, value interface{}) *tkerror.Error {
	return OutOfRange(ModuleBytex, operation, value, 0, nil)
}

// Profile convenience functions

func ProfileValidationError(field string, value interface{}, reason string) *tkerror.Error {
	return ValidationFailed(ModuleProfile, field, value, reason)
}

func ProfileFormatError(input, expectedFormat string) *tkerror.Error {
	return InvalidFormat(ModuleProfile, input, expectedFormat)
}

func ProfileNotFound(path string) *tkerror.Error {
	return NewErrorBuilder(ModuleProfile).
		Operation("load").
		Message(fmt.Sprintf("profile file not found: %s", path)).
		Code(string(tkerror.CodeNotFound)).
		Detail("path", path).
		Severity(tkerror.SeverityMedium).
		Build()
}
