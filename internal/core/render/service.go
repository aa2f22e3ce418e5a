// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package render

import (
	"context"
	"log/slog"

	"github.com/dicewright/dicefaces/internal/core/die"
)

// Service runs one-shot render lifecycles for the HTTP surface.
//
// Each request gets a fresh [Renderer]: the generation machinery matters for
// long-lived component instances (and is exercised directly in tests); over
// HTTP a render is a single committed generation awaited to settlement.
type Service struct {
	resolver *die.Service
	loader   Loader
	logger   *slog.Logger
}

// NewService wires the render service.
func NewService(resolver *die.Service, loader Loader, logger *slog.Logger) *Service {
	return &Service{resolver: resolver, loader: loader, logger: logger}
}

// Render drives a full lifecycle for the given props and returns the settled
// snapshot. If the context expires first, the snapshot may still be Loading.
func (service *Service) Render(ctx context.Context, props Props) Snapshot {
	renderer := NewRenderer(service.resolver, service.loader)
	renderer.Update(ctx, props)
	return renderer.Wait(ctx)
}
