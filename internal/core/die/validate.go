// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die

import (
	"fmt"

	"github.com/dicewright/dicefaces/internal/platform/apperr"
)

// # Face Legality

// Machine codes for the face/type validation taxonomy. The render and HTTP
// layers surface these verbatim so clients can branch without string matching.
const (
	CodeInvalidDieType        = "INVALID_DIE_TYPE"
	CodeNumericFaceRequired   = "NUMERIC_FACE_REQUIRED"
	CodeNarrativeFaceRequired = "NARRATIVE_FACE_REQUIRED"
	CodeInvalidFace           = "INVALID_FACE"
	CodeInvalidFaceD100       = "INVALID_FACE_D100"
)

// Validate enforces the legality of a (die type, face) pair.
//
// It is pure and side-effect-free, and is invoked synchronously before any
// asset-path computation or asynchronous load is attempted. A nil return
// means the pair is legal.
//
// # Rules
//
//   - The die type must be a member of the numeric or narrative set.
//   - Numeric dice require an integer face; the hundred-sided die accepts
//     exactly the multiples of ten from 0 through 90, every other numeric die
//     accepts 1 through its side count.
//   - Narrative dice require a string face, accepted verbatim — compound
//     hyphen-joined outcomes are passed through without structural checks.
func Validate(t Type, face Face) error {
	if !t.IsValid() {
		return apperr.Unprocessable(CodeInvalidDieType,
			fmt.Sprintf("Unknown die type %q", string(t)))
	}

	if t.IsNumeric() {
		if !face.IsNumber() {
			return apperr.Unprocessable(CodeNumericFaceRequired,
				fmt.Sprintf("Face for %s must be a number", t))
		}
		if t == TypeD100 {
			n := face.Number()
			if n < 0 || n > 90 || n%10 != 0 {
				return apperr.Unprocessable(CodeInvalidFaceD100,
					"Invalid face for d100: must be between 0 and 90 in steps of 10")
			}
			return nil
		}
		if n := face.Number(); n < 1 || n > t.Sides() {
			return apperr.Unprocessable(CodeInvalidFace,
				fmt.Sprintf("Invalid face for %s: must be between 1 and %d", t, t.Sides()))
		}
		return nil
	}

	// Narrative
	if !face.IsSymbol() {
		return apperr.Unprocessable(CodeNarrativeFaceRequired,
			fmt.Sprintf("Face for %s must be a string of outcome symbols", t))
	}
	return nil
}
