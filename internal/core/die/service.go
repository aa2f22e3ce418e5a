// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die

import (
	"context"
	"log/slog"

	"github.com/dicewright/dicefaces/internal/platform/apperr"
	"github.com/dicewright/dicefaces/internal/platform/ctxutil"
	"github.com/dicewright/dicefaces/internal/platform/validate"
)

// BasePathSource yields the effective asset base path for a request-level
// override. Implemented by the assets service, which owns the full
// override > ambient > environment > built-in resolution chain.
type BasePathSource interface {
	EffectiveBasePath(override string) string
}

// Service exposes the pure dice domain as resolve/catalog operations.
type Service struct {
	paths  BasePathSource
	logger *slog.Logger
}

// NewService wires the die service with its base-path source.
func NewService(paths BasePathSource, logger *slog.Logger) *Service {
	return &Service{paths: paths, logger: logger}
}

// ResolveInput carries the raw, caller-supplied rendering inputs.
type ResolveInput struct {
	// DieType is the raw die type tag.
	DieType string
	// Face is the face value; unset defaults to the numeric value 1.
	Face Face
	// Theme is the raw theme value; nil means "not provided" and defaults
	// silently. A non-string value degrades with a diagnostic warning.
	Theme any
	// Format is the raw format tag; empty defaults to svg.
	Format string
	// Variant is the raw d4 variant tag; empty defaults to standard.
	Variant string
	// BasePath is the explicit per-request base path override, the highest
	// priority tier of the resolution chain. Empty means no override.
	BasePath string
}

// ResolveOutput is a fully-resolved asset reference.
type ResolveOutput struct {
	DieType  Type     `json:"die_type"`
	Face     Face     `json:"face"`
	Theme    Theme    `json:"theme"`
	Format   Format   `json:"format"`
	Variant  Variant  `json:"variant,omitempty"`
	Src      string   `json:"src"`
	Alt      string   `json:"alt"`
	Warnings []string `json:"warnings,omitempty"`
}

// Resolve validates the (die type, face) pair and derives the asset locator.
//
// Validation failures surface as domain-coded errors before any path is
// computed; theme problems never fail, they degrade with warnings.
func (service *Service) Resolve(ctx context.Context, in ResolveInput) (*ResolveOutput, error) {
	dieType := ParseType(in.DieType)
	face := in.Face.OrDefault()

	if err := Validate(dieType, face); err != nil {
		return nil, err
	}

	format := ParseFormat(in.Format)
	variant := ParseVariant(in.Variant)

	v := &validate.Validator{}
	v.OneOf("format", string(format), string(FormatSVG), string(FormatPNG))
	v.OneOf("variant", string(variant), string(VariantStandard), string(VariantApex), string(VariantBase))
	if err := v.Err(); err != nil {
		return nil, err
	}

	theme, warnings := ParseTheme(in.Theme)
	for _, warning := range warnings {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "theme_degraded",
			slog.String("warning", warning),
			slog.Any("raw_theme", in.Theme),
		)
	}

	basePath := service.paths.EffectiveBasePath(in.BasePath)
	src := ResolvePath(dieType, face, theme, format, variant, basePath)

	out := &ResolveOutput{
		DieType:  dieType,
		Face:     face,
		Theme:    theme,
		Format:   format,
		Src:      src,
		Alt:      AltText(dieType, face),
		Warnings: warnings,
	}
	if dieType == TypeD4 {
		out.Variant = variant
	}
	return out, nil
}

// ListDice returns the full catalog of recognized die types.
func (service *Service) ListDice(context context.Context) []Descriptor {
	return Catalog()
}

// GetDie returns a single die descriptor by raw type tag.
func (service *Service) GetDie(context context.Context, raw string) (Descriptor, error) {
	descriptor, ok := Describe(ParseType(raw))
	if !ok {
		return Descriptor{}, apperr.NotFound("Die type")
	}
	return descriptor, nil
}
