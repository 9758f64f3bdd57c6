// Package error provides structured error handling for the textkit library.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, severity levels, and stack
//              traces. It provides the foundation for consistent error handling
//              across all textkit packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - JSON marshalling for structured output
//
// Usage:
//   import tkerror "github.com/msto63/textkit/core/error"
//
//   // Create a new error with context
//   err := tkerror.New("profile file not found").
//     WithCode(tkerror.CodeNotFound).
//     WithDetail("path", "profiles/web.toml")
//
//   // Wrap an existing error with context
//   wrapped := tkerror.Wrap(err, "failed to load normalization profile").
//     WithCode(tkerror.CodeConfigError)
//
//   // Check error type and code
//   if tkerror.HasCode(err, tkerror.CodeNotFound) {
//     // Fall back to the default profile
//   }
package error
