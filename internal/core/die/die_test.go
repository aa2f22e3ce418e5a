// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicewright/dicefaces/internal/core/die"
)

/*
TestFace_UnmarshalJSON verifies that a face keeps the shape it had on the
wire: a JSON string stays a symbol face even when it spells a number, so
shape validation can reject it on numeric dice.
*/
func TestFace_UnmarshalJSON(t *testing.T) {
	var numeric die.Face
	require.NoError(t, json.Unmarshal([]byte(`7`), &numeric))
	assert.True(t, numeric.IsNumber())
	assert.Equal(t, 7, numeric.Number())

	var symbolic die.Face
	require.NoError(t, json.Unmarshal([]byte(`"7"`), &symbolic))
	assert.True(t, symbolic.IsSymbol())
	assert.Equal(t, "7", symbolic.Symbol())

	var compound die.Face
	require.NoError(t, json.Unmarshal([]byte(`"Success-Advantage"`), &compound))
	assert.True(t, compound.IsSymbol())

	var bad die.Face
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &bad))
}

/*
TestParseFaceText verifies the text-form face parser used by URL and CLI
inputs, where shape is inferred from syntax.
*/
func TestParseFaceText(t *testing.T) {
	assert.True(t, die.ParseFaceText("7").IsNumber())
	assert.Equal(t, 7, die.ParseFaceText("7").Number())

	assert.True(t, die.ParseFaceText("Success").IsSymbol())
	assert.Equal(t, "Success-Advantage", die.ParseFaceText("Success-Advantage").Symbol())
}

/*
TestFace_OrDefault verifies the unset-face default of numeric 1.
*/
func TestFace_OrDefault(t *testing.T) {
	defaulted := die.Face{}.OrDefault()
	assert.True(t, defaulted.IsNumber())
	assert.Equal(t, 1, defaulted.Number())

	untouched := die.NumberFace(5).OrDefault()
	assert.Equal(t, 5, untouched.Number())
}

/*
TestCatalog verifies catalog completeness and ordering.
*/
func TestCatalog(t *testing.T) {
	catalog := die.Catalog()
	require.Len(t, catalog, 12)

	assert.Equal(t, die.TypeD4, catalog[0].Type)
	assert.Equal(t, die.TypeD100, catalog[5].Type)
	assert.Equal(t, die.TypeChallenge, catalog[11].Type)

	for _, descriptor := range catalog {
		assert.NotEmpty(t, descriptor.Faces, "descriptor %s has no faces", descriptor.Type)
	}
}

/*
TestVariantsOf verifies that only the four-sided die carries physical
variants.
*/
func TestVariantsOf(t *testing.T) {
	assert.Equal(t,
		[]die.Variant{die.VariantStandard, die.VariantApex, die.VariantBase},
		die.VariantsOf(die.TypeD4))

	assert.Equal(t, []die.Variant{die.VariantStandard}, die.VariantsOf(die.TypeD20))
	assert.Equal(t, []die.Variant{die.VariantStandard}, die.VariantsOf(die.TypeBoost))
}
