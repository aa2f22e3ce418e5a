// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// # Theme Parsing

// Warning messages emitted by [ParseTheme]. They are diagnostics, never errors:
// theme parsing always produces a fully-specified theme.
const (
	WarnInvalidTheme   = "Invalid theme provided"
	WarnMissingScript  = "Theme missing script part"
	WarnMalformedTheme = "Malformed theme string"
)

// Built-in default theme components.
const (
	defaultStyle  = "White"
	defaultScript = "Arabic"
)

// Theme is a parsed, normalized style-script pair. Both components are
// capitalized on the first letter only (e.g. "Black", "Aurebesh").
type Theme struct {
	Style  string `json:"style"`
	Script string `json:"script"`
}

// DefaultTheme returns the built-in default {White, Arabic}.
func DefaultTheme() Theme {
	return Theme{Style: defaultStyle, Script: defaultScript}
}

// Dir returns the lowercased "style-script" directory segment used by
// numeric asset paths.
func (t Theme) Dir() string {
	return strings.ToLower(t.Style) + "-" + strings.ToLower(t.Script)
}

// ParseTheme parses a free-form "style-script" theme value into a normalized
// [Theme], applying defaulting rules for malformed input. It never fails.
//
// # Recovery Rules
//
//   - nil input: the built-in default, silently (the caller simply did not
//     pass a theme).
//   - non-string or blank input: the default, with [WarnInvalidTheme].
//   - a single segment ("black"): segment becomes the style, script defaults,
//     with [WarnMissingScript].
//   - an empty first or second segment ("-black", "black-"): full default,
//     with [WarnMalformedTheme].
//   - three or more segments: the first two win, extras are ignored silently.
//
// Matching is case-insensitive: input is case-folded before inspection and
// only the first letter of each component is re-capitalized for output.
func ParseTheme(raw any) (Theme, []string) {
	if raw == nil {
		return DefaultTheme(), nil
	}

	s, ok := raw.(string)
	if !ok {
		return DefaultTheme(), []string{WarnInvalidTheme}
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DefaultTheme(), []string{WarnInvalidTheme}
	}

	// Unicode case folding, not plain ToLower, so that themes in scripts with
	// special casing still compare predictably.
	folded := cases.Fold().String(trimmed)
	segments := strings.Split(folded, "-")

	if len(segments) == 1 {
		style := strings.TrimSpace(segments[0])
		return Theme{Style: capitalize(style), Script: defaultScript}, []string{WarnMissingScript}
	}

	style := strings.TrimSpace(segments[0])
	script := strings.TrimSpace(segments[1])
	if style == "" || script == "" {
		return DefaultTheme(), []string{WarnMalformedTheme}
	}

	return Theme{Style: capitalize(style), Script: capitalize(script)}, nil
}

// capitalize upper-cases the first rune, leaving the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
