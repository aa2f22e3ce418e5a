// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

/*
Package die implements the dice domain: the fixed sets of numeric and
narrative die types, face-value legality, theme parsing, and asset-path
resolution.

Everything in this package is pure and I/O-free. Resolving a locator never
touches the filesystem or the network, so path logic is testable without any
asset being present. The asynchronous load that eventually consumes a locator
lives in the render package.

Naming conventions:

  - Numeric assets:   {base}/numeric/{theme}/{Label}-{NN}-{Script}-{Style}.{ext}
  - Narrative assets: {base}/narrative/{Label}/{Label}-{Face}.{ext}
*/
package die

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// # Die Types

// Type is an enumerated die type tag, numeric or narrative.
type Type string

// Numeric die types.
const (
	TypeD4   Type = "d4"
	TypeD6   Type = "d6"
	TypeD8   Type = "d8"
	TypeD12  Type = "d12"
	TypeD20  Type = "d20"
	TypeD100 Type = "d100"
)

// Narrative die types (symbolic outcome dice).
const (
	TypeBoost       Type = "boost"
	TypeSetback     Type = "setback"
	TypeAbility     Type = "ability"
	TypeDifficulty  Type = "difficulty"
	TypeProficiency Type = "proficiency"
	TypeChallenge   Type = "challenge"
)

// numericSides maps each numeric die type to its side count.
var numericSides = map[Type]int{
	TypeD4:   4,
	TypeD6:   6,
	TypeD8:   8,
	TypeD12:  12,
	TypeD20:  20,
	TypeD100: 100,
}

// numericLabels maps each numeric die type to its filename stem.
// The D4 stem is variant-dependent; see [Label].
var numericLabels = map[Type]string{
	TypeD4:   "D4",
	TypeD6:   "D6",
	TypeD8:   "D8",
	TypeD12:  "D12",
	TypeD20:  "D20",
	TypeD100: "D100",
}

// narrativeLabels maps each narrative die type to its capitalized canonical name,
// used both as directory and filename stem.
var narrativeLabels = map[Type]string{
	TypeBoost:       "Boost",
	TypeSetback:     "Setback",
	TypeAbility:     "Ability",
	TypeDifficulty:  "Difficulty",
	TypeProficiency: "Proficiency",
	TypeChallenge:   "Challenge",
}

// narrativeFaces lists each narrative die's distinct printed faces, including
// compound (hyphen-joined) outcomes. Used by the catalog and by preloading.
var narrativeFaces = map[Type][]string{
	TypeBoost:       {"Blank", "Advantage", "Advantage-Advantage", "Success", "Success-Advantage"},
	TypeSetback:     {"Blank", "Failure", "Threat"},
	TypeAbility:     {"Blank", "Advantage", "Advantage-Advantage", "Success", "Success-Success", "Success-Advantage"},
	TypeDifficulty:  {"Blank", "Failure", "Failure-Failure", "Threat", "Threat-Threat", "Failure-Threat"},
	TypeProficiency: {"Blank", "Advantage", "Advantage-Advantage", "Success", "Success-Success", "Success-Advantage", "Triumph"},
	TypeChallenge:   {"Blank", "Failure", "Failure-Failure", "Threat", "Threat-Threat", "Failure-Threat", "Despair"},
}

// ParseType normalizes a raw die type tag (trimmed, lowercased).
// The result may still be unknown; check [Type.IsValid].
func ParseType(raw string) Type {
	return Type(strings.ToLower(strings.TrimSpace(raw)))
}

// IsNumeric reports whether t is one of the numeric die types.
func (t Type) IsNumeric() bool {
	_, ok := numericSides[t]
	return ok
}

// IsNarrative reports whether t is one of the narrative die types.
func (t Type) IsNarrative() bool {
	_, ok := narrativeLabels[t]
	return ok
}

// IsValid reports whether t is a recognized die type.
func (t Type) IsValid() bool {
	return t.IsNumeric() || t.IsNarrative()
}

// Sides returns the side count of a numeric die type, or 0 for narrative/unknown types.
func (t Type) Sides() int {
	return numericSides[t]
}

// # Variants

// Variant is the physical-shape tag of the four-sided die.
// It is meaningless for every other die type.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantApex     Variant = "apex"
	VariantBase     Variant = "base"
)

// ParseVariant normalizes a raw variant tag, defaulting to standard when empty.
func ParseVariant(raw string) Variant {
	v := Variant(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return VariantStandard
	}
	return v
}

// IsValid reports whether v is a recognized variant tag.
func (v Variant) IsValid() bool {
	switch v {
	case VariantStandard, VariantApex, VariantBase:
		return true
	}
	return false
}

// # Formats

// Format is the asset image encoding.
type Format string

const (
	// FormatSVG is the vector encoding. A failed SVG load retries once as PNG.
	FormatSVG Format = "svg"
	// FormatPNG is the raster encoding. It has no further fallback.
	FormatPNG Format = "png"
)

// ParseFormat normalizes a raw format tag, defaulting to SVG when empty.
func ParseFormat(raw string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return FormatSVG
	}
	return f
}

// IsValid reports whether f is a recognized format tag.
func (f Format) IsValid() bool {
	return f == FormatSVG || f == FormatPNG
}

// # Labels

// Label returns the filename stem for a die type. For the four-sided die the
// stem depends on the physical variant ("D4", "D4Apex", "D4Base").
func Label(t Type, variant Variant) string {
	if t == TypeD4 {
		switch variant {
		case VariantApex:
			return "D4Apex"
		case VariantBase:
			return "D4Base"
		default:
			return "D4"
		}
	}
	if label, ok := numericLabels[t]; ok {
		return label
	}
	return narrativeLabels[t]
}

// # Face Values

// faceKind discriminates the two face shapes (plus the unset zero value).
type faceKind int

const (
	faceUnset faceKind = iota
	faceNumber
	faceSymbol
)

// Face is a discriminated face value: an integer for numeric dice, or a
// symbolic outcome string (one or two outcome tokens hyphen-joined) for
// narrative dice. Which shape is legal depends on the die type; a Face is
// not self-describing.
//
// The zero value is "unset" and is resolved to the numeric default 1 by
// [Face.OrDefault].
type Face struct {
	kind   faceKind
	number int
	symbol string
}

// NumberFace builds an integer face value.
func NumberFace(n int) Face { return Face{kind: faceNumber, number: n} }

// SymbolFace builds a symbolic face value. The string is carried verbatim.
func SymbolFace(s string) Face { return Face{kind: faceSymbol, symbol: s} }

// ParseFaceText parses a face from untyped text (URL segments, CLI args):
// integer syntax yields a number face, anything else a symbol face, and an
// empty string stays unset.
func ParseFaceText(raw string) Face {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Face{}
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return NumberFace(n)
	}
	return SymbolFace(trimmed)
}

// IsNumber reports whether the face carries an integer value.
func (f Face) IsNumber() bool { return f.kind == faceNumber }

// IsSymbol reports whether the face carries a symbolic value.
func (f Face) IsSymbol() bool { return f.kind == faceSymbol }

// IsUnset reports whether the face was omitted by the caller.
func (f Face) IsUnset() bool { return f.kind == faceUnset }

// Number returns the integer value (0 unless [Face.IsNumber]).
func (f Face) Number() int { return f.number }

// Symbol returns the symbolic value ("" unless [Face.IsSymbol]).
func (f Face) Symbol() string { return f.symbol }

// OrDefault resolves an unset face to the numeric default 1.
func (f Face) OrDefault() Face {
	if f.IsUnset() {
		return NumberFace(1)
	}
	return f
}

// String renders the face for display ("7", "Success-Advantage").
func (f Face) String() string {
	switch f.kind {
	case faceNumber:
		return strconv.Itoa(f.number)
	case faceSymbol:
		return f.symbol
	}
	return ""
}

// MarshalJSON encodes the face in its natural JSON shape: a number, a string,
// or null when unset.
func (f Face) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case faceNumber:
		return json.Marshal(f.number)
	case faceSymbol:
		return json.Marshal(f.symbol)
	}
	return []byte("null"), nil
}

// UnmarshalJSON preserves the caller's JSON shape: a JSON number becomes a
// number face, a JSON string becomes a symbol face even when it looks numeric.
// Shape mismatches against the die type are the validator's job, not coercion's.
func (f *Face) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = Face{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = SymbolFace(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("face must be an integer or a string: %w", err)
	}
	*f = NumberFace(n)
	return nil
}

// # Catalog

// Descriptor describes one die type for the catalog endpoints and preloading.
type Descriptor struct {
	Type     Type     `json:"type"`
	Category string   `json:"category"` // "numeric" | "narrative"
	Label    string   `json:"label"`
	Sides    int      `json:"sides,omitempty"`
	Variants []string `json:"variants,omitempty"`
	Faces    []string `json:"faces"`
}

// catalogOrder fixes the enumeration order of the catalog.
var catalogOrder = []Type{
	TypeD4, TypeD6, TypeD8, TypeD12, TypeD20, TypeD100,
	TypeBoost, TypeSetback, TypeAbility, TypeDifficulty, TypeProficiency, TypeChallenge,
}

// CatalogTypes returns the recognized die types in catalog order.
func CatalogTypes() []Type {
	out := make([]Type, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// Catalog returns descriptors for every recognized die type, numeric first.
func Catalog() []Descriptor {
	descriptors := make([]Descriptor, 0, len(catalogOrder))
	for _, t := range catalogOrder {
		d, _ := Describe(t)
		descriptors = append(descriptors, d)
	}
	return descriptors
}

// Describe returns the descriptor for a single die type.
func Describe(t Type) (Descriptor, bool) {
	switch {
	case t.IsNumeric():
		d := Descriptor{
			Type:     t,
			Category: "numeric",
			Label:    numericLabels[t],
			Sides:    t.Sides(),
		}
		if t == TypeD4 {
			d.Variants = []string{string(VariantStandard), string(VariantApex), string(VariantBase)}
		}
		for _, f := range FacesOf(t) {
			d.Faces = append(d.Faces, f.String())
		}
		return d, true
	case t.IsNarrative():
		return Descriptor{
			Type:     t,
			Category: "narrative",
			Label:    narrativeLabels[t],
			Faces:    narrativeFaces[t],
		}, true
	}
	return Descriptor{}, false
}

// FacesOf enumerates every legal face of a die type: 1..sides for numeric
// dice, the multiples of ten 0..90 for the hundred-sided die, and the
// distinct printed faces for narrative dice.
func FacesOf(t Type) []Face {
	switch {
	case t == TypeD100:
		faces := make([]Face, 0, 10)
		for n := 0; n <= 90; n += 10 {
			faces = append(faces, NumberFace(n))
		}
		return faces
	case t.IsNumeric():
		faces := make([]Face, 0, t.Sides())
		for n := 1; n <= t.Sides(); n++ {
			faces = append(faces, NumberFace(n))
		}
		return faces
	case t.IsNarrative():
		faces := make([]Face, 0, len(narrativeFaces[t]))
		for _, s := range narrativeFaces[t] {
			faces = append(faces, SymbolFace(s))
		}
		return faces
	}
	return nil
}

// VariantsOf returns the physical variants to enumerate for a die type:
// all three for the four-sided die, standard only for everything else.
func VariantsOf(t Type) []Variant {
	if t == TypeD4 {
		return []Variant{VariantStandard, VariantApex, VariantBase}
	}
	return []Variant{VariantStandard}
}
