// File: profile_test.go
// Title: Tests for Normalization Profile Management
// Description: Comprehensive test suite for profile loading, validation,
//              default behavior, and rule application.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test implementation

package profile

import (
	"os"
	"path/filepath"
	"testing"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/utils/bytex"
	"github.com/msto63/textkit/utils/textx"
)

func TestDefaultMatchesBuiltins(t *testing.T) {
	p := Default()

	if err := p.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v; want nil", err)
	}

	titles := []string{"Hello, World! 123", "  Mixed CASE  ", "under_score-dash"}
	for _, title := range titles {
		if got, want := p.SEOName(title), textx.SEOName(title); got != want {
			t.Errorf("SEOName(%q) = %q; want %q", title, got, want)
		}
	}

	phones := []string{"(213) 221-2222", "2132212222", "213-ABC-2222", "12345"}
	for _, phone := range phones {
		if got, want := p.IsPhone(phone), textx.IsPhone(phone); got != want {
			t.Errorf("IsPhone(%q) = %v; want %v", phone, got, want)
		}
	}

	counts := []int64{0, 999, 1000, 5 * 1024 * 1024, 3 << 30}
	for _, n := range counts {
		if got, want := p.FormatBytes(n), bytex.Format(n); got != want {
			t.Errorf("FormatBytes(%d) = %q; want %q", n, got, want)
		}
	}
}

func TestLoadFromStringTOML(t *testing.T) {
	content := `
[slug]
separator = "-"

[phone]
length = 11
`
	p, err := LoadFromString(content, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v; want nil", err)
	}

	if p.Slug.Separator != "-" {
		t.Errorf("Slug.Separator = %q; want %q", p.Slug.Separator, "-")
	}
	if p.Phone.Length != 11 {
		t.Errorf("Phone.Length = %d; want 11", p.Phone.Length)
	}

	// Absent keys keep their defaults.
	if len(p.Phone.Strip) != len(textx.DefaultPhoneStrip) {
		t.Errorf("Phone.Strip = %v; want default strip set", p.Phone.Strip)
	}
	if len(p.Bytes) != len(bytex.DefaultUnits) {
		t.Errorf("len(Bytes) = %d; want %d", len(p.Bytes), len(bytex.DefaultUnits))
	}

	if got := p.SEOName("Hello, World!"); got != "hello-world" {
		t.Errorf("SEOName(%q) = %q; want %q", "Hello, World!", got, "hello-world")
	}
	if !p.IsPhone("1 (213) 221-2222") {
		t.Errorf("IsPhone(%q) = false; want true with length 11", "1 (213) 221-2222")
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	content := `
slug:
  allow: "."
phone:
  strip: ["+", " "]
  length: 12
bytes:
  - threshold: 1000
    divisor: 1000
    suffix: " kB"
  - threshold: 0
    divisor: 1
    suffix: " B"
`
	p, err := LoadFromString(content, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v; want nil", err)
	}

	if got := p.SEOName("v1.2 Release!"); got != "v1.2release" {
		t.Errorf("SEOName(%q) = %q; want %q", "v1.2 Release!", got, "v1.2release")
	}
	if !p.IsPhone("+49 170 1234567") {
		t.Errorf("IsPhone(%q) = false; want true", "+49 170 1234567")
	}
	if got := p.FormatBytes(5000); got != "5 kB" {
		t.Errorf("FormatBytes(5000) = %q; want %q", got, "5 kB")
	}
	if got := p.FormatBytes(999); got != "999 B" {
		t.Errorf("FormatBytes(999) = %q; want %q", got, "999 B")
	}
}

func TestLoadFromStringAutoDefaultsToTOML(t *testing.T) {
	p, err := LoadFromString(`[phone]
length = 7
`, FormatAuto)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v; want nil", err)
	}
	if p.Phone.Length != 7 {
		t.Errorf("Phone.Length = %d; want 7", p.Phone.Length)
	}
}

func TestLoadFromStringParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"invalid TOML", "[slug\nseparator = -", FormatTOML},
		{"invalid YAML", "slug: [unclosed", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, tt.format)
			if err == nil {
				t.Fatal("LoadFromString() error = nil; want parse error")
			}
			if !tkerror.HasCode(err, tkerror.CodeInvalidConfig) {
				t.Errorf("error code = %v; want %v", tkerror.GetCode(err), tkerror.CodeInvalidConfig)
			}
		})
	}
}

func TestLoadFromStringRejectsInvalidProfile(t *testing.T) {
	_, err := LoadFromString(`[phone]
length = 0
`, FormatTOML)
	if err == nil {
		t.Fatal("LoadFromString() error = nil; want validation error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textkit.yaml")
	content := []byte(`
phone:
  length: 4
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write profile file: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v; want nil", err)
	}
	if !p.IsPhone("12-34") {
		t.Errorf("IsPhone(%q) = false; want true with length 4", "12-34")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() error = nil; want not-found error")
	}
	if !tkerror.HasCode(err, tkerror.CodeNotFound) {
		t.Errorf("error code = %v; want %v", tkerror.GetCode(err), tkerror.CodeNotFound)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("   ")
	if err == nil {
		t.Fatal("Load() error = nil; want validation error")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Format
	}{
		{"toml extension", "profile.toml", FormatTOML},
		{"yaml extension", "profile.yaml", FormatYAML},
		{"yml extension", "profile.yml", FormatYAML},
		{"unknown extension", "profile.conf", FormatTOML},
		{"no extension", "profile", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.want {
				t.Errorf("detectFormat(%q) = %v; want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr bool
	}{
		{"default is valid", func(p *Profile) {}, false},
		{"zero phone length", func(p *Profile) { p.Phone.Length = 0 }, true},
		{"negative phone length", func(p *Profile) { p.Phone.Length = -1 }, true},
		{"empty byte table", func(p *Profile) { p.Bytes = nil }, true},
		{"zero divisor", func(p *Profile) { p.Bytes[1].Divisor = 0 }, true},
		{"ascending thresholds", func(p *Profile) { p.Bytes[1].Threshold = p.Bytes[0].Threshold * 2 }, true},
		{"missing catch-all", func(p *Profile) { p.Bytes = p.Bytes[:len(p.Bytes)-1] }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	p := Default()
	if got := p.NormalizePhone("(213) 221-2222"); got != "2132212222" {
		t.Errorf("NormalizePhone(%q) = %q; want %q", "(213) 221-2222", got, "2132212222")
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q; want %q", tt.format, got, tt.want)
		}
	}
}
