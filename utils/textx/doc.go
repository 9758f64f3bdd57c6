// File: doc.go
// Title: Package Documentation for textx
// Description: Package textx provides the text transformation operations of
//              the textkit library: substring removal, markup stripping, SEO
//              slug generation, and phone number format validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with removal, slug, and phone helpers
// - 2026-08-20 v0.1.1: Documented separator substitution and profile integration

// Package textx provides text transformation operations for the textkit library.
//
// Overview
//
// The textx package collects small, self-contained text transformations that
// application code needs again and again: removing unwanted substrings,
// stripping angle brackets from markup, deriving URL-safe slugs from titles,
// and checking phone number formatting. Every function is a pure function of
// its inputs with no shared state, which makes the whole package safe for
// concurrent use without coordination.
//
// Key capabilities include:
//   - Fixed-point substring removal (Remove, RemoveAll)
//   - Angle-bracket stripping for markup text (StripAngleBrackets)
//   - SEO-safe slug generation with configurable rules (SEOName, SEONameWith)
//   - Format-level phone number validation (IsPhone, IsPhoneWith)
//
// Usage Examples
//
// Substring removal:
//
//	textx.Remove("Hell-o Worl-d", "-")                  // "Hello World"
//	textx.RemoveAll("H-e+llo World", []string{"-", "+"}) // "Hello World"
//
// Removal runs to a fixed point, so occurrences formed by concatenation after
// a deletion are removed too:
//
//	textx.Remove("aabb", "ab") // ""
//
// Slug generation:
//
//	textx.SEOName("Hello, World! 123") // "helloworld123"
//
//	// With separator substitution
//	textx.SEONameWith("Hello, World! 123", textx.SEOOptions{Separator: "-"})
//	// "hello-world-123"
//
// Phone validation:
//
//	textx.IsPhone("(213) 221-2222") // true
//	textx.IsPhone("213-221-222")    // false (9 digits)
//	textx.IsPhone("213-221-abcd")   // false (non-numeric)
//
// Error Handling
//
// All functions in this package are total over strings: there are no error
// returns and no panics for any input, including empty strings. IsPhone
// reports malformed input as false rather than failing. Validation that can
// fail lives in the profile package, which uses the textkit error packages.
//
// Limitations
//
// Phone validation is purely syntactic; no numbering-plan authority is
// consulted. Slug generation deletes non-ASCII letters rather than
// transliterating them, and case folding is plain lowercasing with no
// locale awareness. Inputs are assumed to be short, in-memory strings.
package textx
