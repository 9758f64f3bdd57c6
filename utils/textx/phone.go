// File: phone.go
// Title: Phone Number Format Validation
// Description: Implements format-level phone number checks. Validation strips
//              common formatting characters and then requires the remainder to
//              parse entirely as a base-10 integer with a fixed character
//              count. No numbering-plan authority is consulted.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with phone validation

package textx

import (
	"strconv"
)

// DefaultPhoneStrip is the set of formatting substrings removed from a phone
// number before validation.
var DefaultPhoneStrip = []string{"(", ")", "-", " "}

// DefaultPhoneLength is the required character count of the stripped remainder.
const DefaultPhoneLength = 10

// PhoneOptions configures IsPhoneWith beyond the default validation rules.
type PhoneOptions struct {
	// Strip lists the substrings removed before validation.
	// A nil slice selects DefaultPhoneStrip.
	Strip []string

	// Length is the required character count of the stripped remainder.
	// Zero or negative selects DefaultPhoneLength.
	Length int
}

// IsPhone reports whether phone is a validly formatted 10-digit number.
//
// The characters '(', ')', '-', and space are stripped, and the remainder
// must parse entirely as a base-10 integer and be exactly 10 characters long.
// Sign characters are accepted exactly as integer parsing allows: hyphens are
// stripped as formatting before the check, but "+2132212222" fails (11
// characters) while "+213221222" passes with only nine digits. IsPhone never
// returns an error; any parse failure or length mismatch yields false.
func IsPhone(phone string) bool {
	return IsPhoneWith(phone, PhoneOptions{})
}

// IsPhoneWith reports whether phone is validly formatted under the given
// options.
func IsPhoneWith(phone string, opts PhoneOptions) bool {
	strip := opts.Strip
	if strip == nil {
		strip = DefaultPhoneStrip
	}
	length := opts.Length
	if length <= 0 {
		length = DefaultPhoneLength
	}

	rest := RemoveAll(phone, strip)
	if len(rest) != length {
		return false
	}

	_, err := strconv.ParseInt(rest, 10, 64)
	return err == nil
}

// NormalizePhone returns phone with the default formatting characters
// stripped, without validating the remainder.
func NormalizePhone(phone string) string {
	return RemoveAll(phone, DefaultPhoneStrip)
}
