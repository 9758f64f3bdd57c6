// File: profile.go
// Title: Normalization Profile Management
// Description: Implements loading, validation, and application of textkit
//              normalization profiles from TOML and YAML files. A profile
//              bundles the configurable rule sets for slug generation, phone
//              validation, and byte formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/msto63/textkit/core/error"
	tkerrors "github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/bytex"
	"github.com/msto63/textkit/utils/textx"
)

// Format represents the profile file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// SlugRules configures slug generation for a profile.
type SlugRules struct {
	// Allow lists additional runes to keep beyond [a-z0-9_-].
	Allow string `toml:"allow" yaml:"allow"`

	// Separator replaces runs of dropped characters; empty means delete.
	Separator string `toml:"separator" yaml:"separator"`
}

// PhoneRules configures phone validation for a profile.
type PhoneRules struct {
	// Strip lists the substrings removed before validation.
	Strip []string `toml:"strip" yaml:"strip"`

	// Length is the required character count of the stripped remainder.
	Length int `toml:"length" yaml:"length"`
}

// ByteUnit is one row of a profile's byte-formatting table.
type ByteUnit struct {
	Threshold int64  `toml:"threshold" yaml:"threshold"`
	Divisor   int64  `toml:"divisor" yaml:"divisor"`
	Suffix    string `toml:"suffix" yaml:"suffix"`
}

// Profile bundles the configurable normalization rules of the textkit
// operations. The zero value is not usable; start from Default or Load.
type Profile struct {
	Slug  SlugRules  `toml:"slug" yaml:"slug"`
	Phone PhoneRules `toml:"phone" yaml:"phone"`
	Bytes []ByteUnit `toml:"bytes" yaml:"bytes"`
}

// Default returns a profile matching the built-in behavior of the utils
// packages: deletion-based slugs, 10-digit phone validation with the standard
// strip set, and the default byte-formatting table.
func Default() *Profile {
	strip := make([]string, len(textx.DefaultPhoneStrip))
	copy(strip, textx.DefaultPhoneStrip)

	units := make([]ByteUnit, len(bytex.DefaultUnits))
	for i, u := range bytex.DefaultUnits {
		units[i] = ByteUnit(u)
	}

	return &Profile{
		Phone: PhoneRules{Strip: strip, Length: textx.DefaultPhoneLength},
		Bytes: units,
	}
}

// Load loads a profile from a file, auto-detecting the format from the file
// extension. Keys absent from the file keep their Default values. The loaded
// profile is validated before it is returned.
func Load(path string) (*Profile, error) {
	if textx.IsBlank(path) {
		return nil, tkerror.New("profile file path cannot be empty").
			WithCode(tkerror.CodeValidationFailed).
			WithOperation("profile.Load")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, tkerrors.ProfileNotFound(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to read profile file").
			WithCode(tkerror.CodeConfigError).
			WithOperation("profile.Load").
			WithDetail("path", path)
	}

	p, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, tkerror.Wrap(err, fmt.Sprintf("failed to load profile %s", path)).
			WithDetail("path", path)
	}
	return p, nil
}

// LoadFromString loads a profile from a string with the specified format.
// FormatAuto defaults to TOML.
func LoadFromString(content string, format Format) (*Profile, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	p := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(content), p); err != nil {
			return nil, tkerror.Wrap(err, "TOML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("profile.LoadFromString")
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), p); err != nil {
			return nil, tkerror.Wrap(err, "YAML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("profile.LoadFromString")
		}
	default:
		return nil, tkerrors.ProfileFormatError(format.String(), "toml or yaml")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// detectFormat determines the profile format from the file extension
func detectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}

// Validate checks the profile for internal consistency. The phone length must
// be positive and the byte table must be a first-match-wins cascade: divisors
// positive, thresholds strictly descending, and a final catch-all row with
// threshold zero.
func (p *Profile) Validate() error {
	if p.Phone.Length <= 0 {
		return tkerrors.ProfileValidationError("phone.length", p.Phone.Length, "must be positive")
	}

	if len(p.Bytes) == 0 {
		return tkerrors.ProfileValidationError("bytes", len(p.Bytes), "must contain at least one unit")
	}

	for i, u := range p.Bytes {
		if u.Divisor <= 0 {
			return tkerrors.ProfileValidationError(
				fmt.Sprintf("bytes[%d].divisor", i), u.Divisor, "must be positive")
		}
		if i > 0 && u.Threshold >= p.Bytes[i-1].Threshold {
			return tkerrors.ProfileValidationError(
				fmt.Sprintf("bytes[%d].threshold", i), u.Threshold, "thresholds must be strictly descending")
		}
	}

	if last := p.Bytes[len(p.Bytes)-1]; last.Threshold != 0 {
		return tkerrors.ProfileValidationError(
			"bytes", last.Threshold, "last unit must be a catch-all with threshold 0")
	}

	return nil
}

// SEOName derives a slug from free text using the profile's slug rules.
func (p *Profile) SEOName(title string) string {
	return textx.SEONameWith(title, textx.SEOOptions{
		Allow:     p.Slug.Allow,
		Separator: p.Slug.Separator,
	})
}

// IsPhone reports whether phone is validly formatted under the profile's
// phone rules.
func (p *Profile) IsPhone(phone string) bool {
	return textx.IsPhoneWith(phone, textx.PhoneOptions{
		Strip:  p.Phone.Strip,
		Length: p.Phone.Length,
	})
}

// NormalizePhone returns phone with the profile's strip set removed.
func (p *Profile) NormalizePhone(phone string) string {
	return textx.RemoveAll(phone, p.Phone.Strip)
}

// FormatBytes renders a byte count using the profile's unit table.
func (p *Profile) FormatBytes(n int64) string {
	units := make([]bytex.Unit, len(p.Bytes))
	for i, u := range p.Bytes {
		units[i] = bytex.Unit(u)
	}
	return bytex.FormatUnits(n, units)
}
