// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/platform/apperr"
)

/*
TestValidate_Numeric verifies the numeric range rules, including the
hundred-sided die's multiples-of-ten rule.
*/
func TestValidate_Numeric(t *testing.T) {
	tests := []struct {
		name     string
		dieType  die.Type
		face     die.Face
		wantCode string
		wantMsg  string
	}{
		{"d6_low_bound", die.TypeD6, die.NumberFace(1), "", ""},
		{"d6_high_bound", die.TypeD6, die.NumberFace(6), "", ""},
		{"d6_too_high", die.TypeD6, die.NumberFace(7), die.CodeInvalidFace,
			"Invalid face for d6: must be between 1 and 6"},
		{"d6_zero", die.TypeD6, die.NumberFace(0), die.CodeInvalidFace,
			"Invalid face for d6: must be between 1 and 6"},
		{"d20_high_bound", die.TypeD20, die.NumberFace(20), "", ""},
		{"d20_too_high", die.TypeD20, die.NumberFace(21), die.CodeInvalidFace,
			"Invalid face for d20: must be between 1 and 20"},
		{"d100_zero", die.TypeD100, die.NumberFace(0), "", ""},
		{"d100_fifty", die.TypeD100, die.NumberFace(50), "", ""},
		{"d100_ninety", die.TypeD100, die.NumberFace(90), "", ""},
		{"d100_not_multiple", die.TypeD100, die.NumberFace(45), die.CodeInvalidFaceD100,
			"Invalid face for d100: must be between 0 and 90 in steps of 10"},
		{"d100_hundred", die.TypeD100, die.NumberFace(100), die.CodeInvalidFaceD100,
			"Invalid face for d100: must be between 0 and 90 in steps of 10"},
		{"d100_negative", die.TypeD100, die.NumberFace(-10), die.CodeInvalidFaceD100,
			"Invalid face for d100: must be between 0 and 90 in steps of 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := die.Validate(tt.dieType, tt.face)

			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

/*
TestValidate_Narrative verifies that narrative dice accept any string face,
compound outcomes included, and reject numeric faces.
*/
func TestValidate_Narrative(t *testing.T) {
	assert.NoError(t, die.Validate(die.TypeBoost, die.SymbolFace("Success-Advantage")))
	assert.NoError(t, die.Validate(die.TypeChallenge, die.SymbolFace("Despair")))
	assert.NoError(t, die.Validate(die.TypeProficiency, die.SymbolFace("Triumph")))

	err := die.Validate(die.TypeAbility, die.NumberFace(3))
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, die.CodeNarrativeFaceRequired, appErr.Code)
}

/*
TestValidate_ShapeMismatch verifies each face-shape error code and the
unknown-type rejection.
*/
func TestValidate_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		dieType  die.Type
		face     die.Face
		wantCode string
	}{
		{"string_face_on_numeric", die.TypeD6, die.SymbolFace("7"), die.CodeNumericFaceRequired},
		{"unset_face_on_numeric", die.TypeD8, die.Face{}, die.CodeNumericFaceRequired},
		{"number_face_on_narrative", die.TypeSetback, die.NumberFace(1), die.CodeNarrativeFaceRequired},
		{"unknown_type", die.Type("d13"), die.NumberFace(1), die.CodeInvalidDieType},
		{"empty_type", die.Type(""), die.NumberFace(1), die.CodeInvalidDieType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := die.Validate(tt.dieType, tt.face)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}
