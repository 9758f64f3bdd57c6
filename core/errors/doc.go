// Package errors provides THE STANDARD error handling interface for all textkit
// packages. This is the primary error handling API that package code should use.
//
// Package: errors
// Title: Standard Error Handling API for textkit
// Description: This package provides common error patterns, standardized error
//              codes, and utilities for creating consistent errors across all
//              textkit packages. It integrates with the core error package to
//              provide module-specific error handling while keeping error
//              analysis uniform for consuming applications.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation for cross-package error standardization
//
// Package Overview:
//
// The errors package keeps error handling consistent across the textkit
// packages, providing:
//
// # Standardized Error Codes
//
// Common codes shared by all modules (INVALID_INPUT, INVALID_FORMAT,
// OUT_OF_RANGE, NOT_FOUND, OPERATION_FAILED) plus per-module validation codes
// derived from the module name (e.g. PROFILE_VALIDATION_FAILED).
//
// # Error Creation Utilities
//
// Standardized functions for creating module-specific errors:
//   - InvalidInput: For invalid input parameters
//   - InvalidFormat: For format-related errors
//   - ValidationFailed: Specialized for validation failures
//   - OutOfRange: For values outside their permitted range
//   - OperationFailed: For operation failures with a wrapped cause
//   - NotFound: For missing items such as profile files
//
// # Error Analysis Functions
//
// Utilities for analyzing standardized errors:
//   - ExtractModule: Extract module name from error
//   - ExtractOperation: Extract operation name from error
//   - IsModuleOperation: Check if error is from a specific module operation
//
// # Usage Examples
//
// Creating standardized module errors:
//
//	// Validation failure in the profile package
//	err := errors.ProfileValidationError("phone.length", -1, "must be positive")
//
//	// Invalid input with a fluent builder
//	err = errors.NewErrorBuilder(errors.ModuleBytex).
//		Operation("format_units").
//		Message("unit table has no catch-all entry").
//		Code(errors.CodeInvalidInput).
//		Detail("units", 3).
//		Build()
//
// Note that the pure transformation functions in utils/textx, utils/seqx, and
// utils/bytex are total over their documented input domains and never return
// errors; this package is exercised by the profile loader and validation
// helpers.
package errors
