// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package render

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/platform/apperr"
	"github.com/dicewright/dicefaces/internal/platform/respond"
	"github.com/dicewright/dicefaces/internal/platform/validate"
)

// Handler exposes the render lifecycle over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the render HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the chi router for the /render group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.render)
	return router
}

// renderBody is the POST /render request body. Face keeps its JSON shape
// (number vs. string); Theme is a pointer so that "absent" and "empty" stay
// distinguishable, matching the parser's defaulting rules.
type renderBody struct {
	DieType  string   `json:"die_type"`
	Face     die.Face `json:"face"`
	Theme    *string  `json:"theme"`
	Format   string   `json:"format"`
	Variant  string   `json:"variant"`
	BasePath string   `json:"base_path"`
}

// render handles POST /render: validate, resolve, load (with the one-shot
// PNG downgrade), and report the settled outcome.
func (handler *Handler) render(writer http.ResponseWriter, request *http.Request) {
	var body renderBody
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	props := Props{
		DieType:  body.DieType,
		Face:     body.Face,
		Format:   body.Format,
		Variant:  body.Variant,
		BasePath: body.BasePath,
	}
	if body.Theme != nil {
		props.Theme = *body.Theme
	}

	snapshot := handler.service.Render(request.Context(), props)

	switch snapshot.State {
	case StateSuccess:
		respond.OK(writer, snapshot)
	case StateError:
		respond.Error(writer, request, snapshot.Err)
	default:
		// The request deadline elapsed before the load settled.
		respond.Error(writer, request, apperr.ServiceUnavailable("Asset load did not settle in time"))
	}
}
