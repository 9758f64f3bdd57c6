// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and monitoring in applications consuming the
//              textkit library.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional profile fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable profile file, unparseable configuration value
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: corrupted profile data, internal consistency failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength, CodeInvalidInput:
		return SeverityLow
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeNotFound:
		return SeverityMedium
	case CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
