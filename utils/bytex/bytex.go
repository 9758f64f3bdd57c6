// File: bytex.go
// Title: Human-Readable Byte-Size Formatting
// Description: Implements byte-count formatting with decimal magnitude
//              thresholds and binary divisors. The unit table is data-driven
//              so normalization profiles can supply their own units.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with unit-table formatting

package bytex

import (
	"math"
	"strconv"
)

// Unit describes one row of a byte-formatting table: counts of at least
// Threshold bytes are divided by Divisor and labelled with Suffix.
type Unit struct {
	Threshold int64
	Divisor   int64
	Suffix    string
}

// DefaultUnits is the standard formatting table. Classification is evaluated
// top to bottom, first match wins. Thresholds are decimal while divisors are
// binary, so e.g. 1,000,000,000 bytes already counts as " GB" but is divided
// by 2^30.
var DefaultUnits = []Unit{
	{Threshold: 1_000_000_000_000, Divisor: 1 << 40, Suffix: " TB"},
	{Threshold: 1_000_000_000, Divisor: 1 << 30, Suffix: " GB"},
	{Threshold: 1_000_000, Divisor: 1 << 20, Suffix: " MB"},
	{Threshold: 1_000, Divisor: 1 << 10, Suffix: " KB"},
	{Threshold: 0, Divisor: 1, Suffix: " bytes"},
}

// Format renders a byte count as a human-readable string using DefaultUnits:
//
//	Format(500)        // "500 bytes"
//	Format(1024)       // "1 KB"
//	Format(1073741824) // "1 GB"
//
// The quotient is rounded to the nearest integer. Negative counts are
// classified by absolute magnitude and rendered with a leading minus.
func Format(n int64) string {
	return FormatUnits(n, DefaultUnits)
}

// FormatUnits renders a byte count using a caller-supplied unit table. The
// table is scanned in order and the first row whose threshold is met wins; a
// count matching no row falls back to the bare " bytes" rendering.
func FormatUnits(n int64, units []Unit) string {
	v, neg := n, false
	if v < 0 {
		v, neg = -v, true
	}

	for _, u := range units {
		if v >= u.Threshold {
			q := int64(math.Round(float64(v) / float64(u.Divisor)))
			if neg {
				q = -q
			}
			return FormatWith(q, u.Suffix)
		}
	}
	return FormatWith(n, " bytes")
}

// FormatWith concatenates the decimal representation of n with the literal
// suffix. No separator is inserted beyond what the suffix itself contains.
func FormatWith(n int64, suffix string) string {
	return strconv.FormatInt(n, 10) + suffix
}
