// File: textx.go
// Title: Core Text Transformation Functions
// Description: Implements the substring removal primitives of the textkit
//              library. All functions are pure and total over strings: they
//              never fail, never mutate their input, and are safe for
//              concurrent use from independent call sites.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with removal primitives

package textx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Remove deletes every occurrence of token from text.
//
// The scan restarts from the beginning of the remainder after each deletion,
// so occurrences that only form when surrounding text joins up after a prior
// deletion are removed as well:
//
//	Remove("aabb", "ab") // "" (deleting the inner "ab" forms a new one)
//
// An empty token never matches; Remove(s, "") returns s unchanged, and an
// empty text is returned as-is.
func Remove(text, token string) string {
	if token == "" || text == "" {
		return text
	}

	for {
		i := strings.Index(text, token)
		if i < 0 {
			return text
		}
		text = text[:i] + text[i+len(token):]
	}
}

// RemoveAll applies Remove for each token in tokens, left to right, threading
// the result of each step into the next. A nil or empty token list returns
// text unchanged.
func RemoveAll(text string, tokens []string) string {
	for _, token := range tokens {
		text = Remove(text, token)
	}
	return text
}

// StripAngleBrackets removes the literal '<' and '>' characters from text.
//
// Note that this does not tokenize: markup like "<b>hi</b>" becomes "bhi/b"
// as a single string. Callers that need a word list must split separately.
func StripAngleBrackets(text string) string {
	return RemoveAll(text, []string{"<", ">"})
}
