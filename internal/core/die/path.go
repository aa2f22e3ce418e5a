// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die

import (
	"fmt"
	"strings"
)

// # Asset Path Resolution

// ResolvePath derives the canonical asset locator for a validated
// (die type, face) pair. Callable only after [Validate] has succeeded;
// it performs no legality checks of its own.
//
// basePath is the already-resolved effective base path. Its trailing
// separators are stripped before joining, so the result never contains a
// double separator at the join point.
func ResolvePath(t Type, face Face, theme Theme, format Format, variant Variant, basePath string) string {
	base := strings.TrimRight(basePath, "/")

	if t.IsNarrative() {
		label := narrativeLabels[t]
		return fmt.Sprintf("%s/narrative/%s/%s-%s.%s", base, label, label, face.Symbol(), format)
	}

	// Numeric: face zero-padded to at least two digits, and the parsed theme
	// pair in script-first order — the reverse of the theme string itself.
	return fmt.Sprintf("%s/numeric/%s/%s-%02d-%s-%s.%s",
		base, theme.Dir(), Label(t, variant), face.Number(), theme.Script, theme.Style, format)
}

// WithFormat rewrites a locator's extension to the given format. Used by the
// render lifecycle's vector-to-raster downgrade retry.
func WithFormat(locator string, format Format) string {
	dot := strings.LastIndex(locator, ".")
	if dot < 0 || dot < strings.LastIndex(locator, "/") {
		return locator + "." + string(format)
	}
	return locator[:dot+1] + string(format)
}

// AltText is the descriptive alternative text carried by successful render
// outcomes: "{dieType} die showing {face}".
func AltText(t Type, face Face) string {
	return fmt.Sprintf("%s die showing %s", t, face)
}
