// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dicewright/dicefaces/internal/core/die"
)

/*
TestParseTheme_WellFormed verifies normal style-script parsing and
capitalization.
*/
func TestParseTheme_WellFormed(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		style  string
		script string
	}{
		{"lowercase", "black-arabic", "Black", "Arabic"},
		{"uppercase", "BLACK-ARABIC", "Black", "Arabic"},
		{"mixed_case", "bLaCk-ArAbIc", "Black", "Arabic"},
		{"padded", "  black-aurebesh  ", "Black", "Aurebesh"},
		{"inner_spaces", "black - aurebesh", "Black", "Aurebesh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, warnings := die.ParseTheme(tt.raw)

			assert.Equal(t, tt.style, theme.Style)
			assert.Equal(t, tt.script, theme.Script)
			assert.Empty(t, warnings)
		})
	}
}

/*
TestParseTheme_Degraded verifies every defaulting rule and its diagnostic.
ParseTheme never fails; malformed input always yields a fully-specified theme.
*/
func TestParseTheme_Degraded(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		style   string
		script  string
		warning string
	}{
		{"nil_is_silent_default", nil, "White", "Arabic", ""},
		{"non_string", 42, "White", "Arabic", die.WarnInvalidTheme},
		{"empty_string", "", "White", "Arabic", die.WarnInvalidTheme},
		{"whitespace_only", "   ", "White", "Arabic", die.WarnInvalidTheme},
		{"missing_script", "black", "Black", "Arabic", die.WarnMissingScript},
		{"trailing_hyphen", "black-", "White", "Arabic", die.WarnMalformedTheme},
		{"leading_hyphen", "-arabic", "White", "Arabic", die.WarnMalformedTheme},
		{"bare_hyphen", "-", "White", "Arabic", die.WarnMalformedTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, warnings := die.ParseTheme(tt.raw)

			assert.Equal(t, tt.style, theme.Style)
			assert.Equal(t, tt.script, theme.Script)

			if tt.warning == "" {
				assert.Empty(t, warnings)
			} else {
				assert.Equal(t, []string{tt.warning}, warnings)
			}
		})
	}
}

/*
TestParseTheme_ExtraSegments verifies that segments beyond the second are
ignored silently, as specified.
*/
func TestParseTheme_ExtraSegments(t *testing.T) {
	theme, warnings := die.ParseTheme("black-arabic-glossy-large")

	assert.Equal(t, "Black", theme.Style)
	assert.Equal(t, "Arabic", theme.Script)
	assert.Empty(t, warnings)
}

/*
TestTheme_Dir verifies the lowercased directory segment used by numeric paths.
*/
func TestTheme_Dir(t *testing.T) {
	assert.Equal(t, "white-arabic", die.DefaultTheme().Dir())

	theme, _ := die.ParseTheme("BLACK-AUREBESH")
	assert.Equal(t, "black-aurebesh", theme.Dir())
}
