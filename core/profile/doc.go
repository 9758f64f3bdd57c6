// File: doc.go
// Title: Package Documentation for profile
// Description: Provides package-level documentation for the textkit
//              normalization profile package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

// Package profile provides declarative normalization profiles for the
// textkit utility packages.
//
// A Profile bundles the configurable rule sets of the text operations in one
// serializable structure: the allow list and separator for slug generation,
// the strip set and required length for phone validation, and the unit table
// for byte formatting. Profiles can be defined in code, starting from
// Default, or loaded from TOML and YAML files.
//
// Loading merges over defaults: keys absent from the file keep their Default
// values, so a profile file only needs to state what differs.
//
// Basic usage:
//
//	p, err := profile.Load("textkit.toml")
//	if err != nil {
//	    return err
//	}
//
//	slug := p.SEOName("Hello, World!")
//	ok := p.IsPhone("(213) 221-2222")
//	size := p.FormatBytes(5 * 1024 * 1024)
//
// A minimal TOML profile:
//
//	[slug]
//	separator = "-"
//
//	[phone]
//	length = 11
//
// All loaded profiles are validated before use; see Validate for the rules.
package profile
