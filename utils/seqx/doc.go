// File: doc.go
// Title: Package Documentation for seqx
// Description: Package seqx provides generic sequence operations for the
//              textkit library: deduplication and frequency counting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with sequence utilities

// Package seqx provides generic sequence operations for the textkit library.
//
// Overview
//
// The seqx package covers the two sequence-shaped operations of textkit:
// removing duplicate elements from an ordered sequence and building a
// frequency table of element occurrences. Both work over any comparable
// element type, and both leave their inputs untouched.
//
// Deduplication preserves first-occurrence order:
//
//	seqx.Dedupe([]int{1, 2, 1, 3, 2}) // [1 2 3]
//
// Frequency counting uses exact, case-sensitive equality:
//
//	seqx.Frequency([]string{"a", "b", "a"}) // map[a:2 b:1]
//
// Dedupe is idempotent: applying it to its own output returns an equal slice.
//
// All functions are nil-safe; nil inputs yield nil outputs rather than
// panics, following the conventions of the other textkit packages.
package seqx
