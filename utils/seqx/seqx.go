// File: seqx.go
// Title: Core Sequence Utilities
// Description: Implements generic sequence operations for the textkit library:
//              deduplication and occurrence counting. Functions follow the
//              functional style with generic type support and never mutate
//              their inputs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with dedupe and frequency counting

package seqx

import (
	"cmp"
	"slices"
)

// Dedupe returns a new slice containing each distinct element of seq exactly
// once, in first-occurrence order. A nil slice returns nil.
func Dedupe[T comparable](seq []T) []T {
	if seq == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(seq))
	result := make([]T, 0, len(seq))

	for _, item := range seq {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// DedupeBy returns a new slice with duplicates removed based on a key
// function, keeping the first element seen for each key.
func DedupeBy[T any, K comparable](seq []T, keyFunc func(T) K) []T {
	if seq == nil || keyFunc == nil {
		return nil
	}

	seen := make(map[K]struct{}, len(seq))
	result := make([]T, 0, len(seq))

	for _, item := range seq {
		key := keyFunc(item)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Frequency counts the occurrences of each distinct element in seq.
//
// Elements are compared with exact value equality (case-sensitive for
// strings). A nil or empty slice returns nil.
func Frequency[T comparable](seq []T) map[T]int {
	if len(seq) == 0 {
		return nil
	}

	counts := make(map[T]int, len(seq))
	for _, item := range seq {
		counts[item]++
	}
	return counts
}

// MostCommon returns the n most frequent keys of a frequency table, ordered by
// descending count with ties broken by ascending key. If n is larger than the
// table, all keys are returned; n <= 0 or a nil table returns nil.
func MostCommon[T cmp.Ordered](counts map[T]int, n int) []T {
	if counts == nil || n <= 0 {
		return nil
	}

	keys := make([]T, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b T) int {
		if c := counts[b] - counts[a]; c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	if n < len(keys) {
		keys = keys[:n]
	}
	return keys
}
