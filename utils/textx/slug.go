// File: slug.go
// Title: SEO Slug Generation
// Description: Implements SEO-safe slug generation from free text. The default
//              behavior lowercases, trims, and deletes every character outside
//              the identifier-safe set; a configurable variant supports
//              additional allowed runes and separator substitution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with slug generation

package textx

import (
	"strings"
)

// SEOOptions configures SEONameWith beyond the default slug behavior.
type SEOOptions struct {
	// Allow lists additional runes to keep beyond [a-z0-9_-].
	Allow string

	// Separator, when non-empty, replaces each run of dropped characters
	// between kept characters with a single separator. Runs at the start or
	// end of the title are trimmed. When empty, dropped characters are
	// deleted outright.
	Separator string
}

// SEOName derives an identifier-safe slug from free text.
//
// The title is lowercased and trimmed of surrounding whitespace, then every
// rune outside [a-z0-9_-] is deleted. No separator is substituted, so
// "Hello, World! 123" becomes "helloworld123". The result may be empty if no
// permitted characters remain.
func SEOName(title string) string {
	return SEONameWith(title, SEOOptions{})
}

// SEONameWith derives a slug from free text using the given options.
func SEONameWith(title string, opts SEOOptions) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	for _, r := range s {
		if isSlugRune(r) || strings.ContainsRune(opts.Allow, r) {
			if pendingSep {
				b.WriteString(opts.Separator)
				pendingSep = false
			}
			b.WriteRune(r)
		} else if opts.Separator != "" && b.Len() > 0 {
			// Separator is only pending between kept runes; a trailing run
			// of dropped characters produces nothing.
			pendingSep = true
		}
	}

	out := b.String()
	if opts.Separator != "" {
		// Collapse consecutive separators (literal hyphens in the title can
		// run into substituted ones) and trim them from the edges.
		doubled := opts.Separator + opts.Separator
		for strings.Contains(out, doubled) {
			out = strings.ReplaceAll(out, doubled, opts.Separator)
		}
		for strings.HasPrefix(out, opts.Separator) {
			out = out[len(opts.Separator):]
		}
		for strings.HasSuffix(out, opts.Separator) {
			out = out[:len(out)-len(opts.Separator)]
		}
	}

	return out
}

// isSlugRune reports whether r belongs to the default identifier-safe set.
func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}
