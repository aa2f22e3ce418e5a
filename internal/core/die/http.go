// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dicewright/dicefaces/internal/platform/respond"
	"github.com/dicewright/dicefaces/pkg/pagination"
)

// Handler exposes the die catalog and locator resolution over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the die HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the chi router for the /dice group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listDice)
	router.Get("/{dieType}", handler.getDie)
	router.Get("/{dieType}/faces/{face}", handler.resolveFace)
	return router
}

// listDice handles GET /dice, the paginated catalog.
func (handler *Handler) listDice(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	catalog := handler.service.ListDice(request.Context())

	start, end := params.Slice(len(catalog))
	respond.Paginated(writer, catalog[start:end],
		pagination.NewMeta(params.Page, params.Limit, len(catalog)))
}

// getDie handles GET /dice/{dieType}.
func (handler *Handler) getDie(writer http.ResponseWriter, request *http.Request) {
	descriptor, err := handler.service.GetDie(request.Context(), chi.URLParam(request, "dieType"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, descriptor)
}

// resolveFace handles GET /dice/{dieType}/faces/{face}.
//
// It validates the pair and derives the asset locator without performing any
// I/O; the locator is returned to the caller, not fetched.
func (handler *Handler) resolveFace(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	in := ResolveInput{
		DieType:  chi.URLParam(request, "dieType"),
		Face:     ParseFaceText(chi.URLParam(request, "face")),
		Format:   query.Get("format"),
		Variant:  query.Get("variant"),
		BasePath: query.Get("base"),
	}
	// An absent theme defaults silently; a present-but-malformed one degrades
	// with a warning. The distinction matters, hence the Has check.
	if query.Has("theme") {
		in.Theme = query.Get("theme")
	}

	out, err := handler.service.Resolve(request.Context(), in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, out)
}
