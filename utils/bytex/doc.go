// File: doc.go
// Title: Package Documentation for bytex
// Description: Package bytex provides human-readable byte-size formatting
//              for the textkit library.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with byte formatting

// Package bytex provides human-readable byte-size formatting.
//
// The formatting rules are deliberately asymmetric: a count is classified
// against decimal thresholds (1,000 / 1,000,000 / ...) but divided by binary
// divisors (2^10 / 2^20 / ...), matching the behavior consuming applications
// already depend on. The quotient is rounded to the nearest integer.
//
//	bytex.Format(500)        // "500 bytes"
//	bytex.Format(1024)       // "1 KB"
//	bytex.Format(999999)     // "977 KB"
//	bytex.Format(1073741824) // "1 GB"
//
// FormatUnits accepts a caller-supplied unit table for applications that need
// different thresholds or suffixes; the profile package builds such tables
// from configuration files. FormatWith is the low-level primitive that pairs
// a number with a literal suffix.
package bytex
