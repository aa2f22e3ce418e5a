// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package render_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicewright/dicefaces/internal/core/render"
)

/*
TestHTTPLoader verifies locator resolution against the configured origin and
the 2xx success rule.
*/
func TestHTTPLoader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/assets/dice/ok.svg":
			writer.WriteHeader(http.StatusOK)
		case "/assets/dice/gone.svg":
			writer.WriteHeader(http.StatusNotFound)
		default:
			writer.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	loader := render.NewHTTPLoader(server.URL + "/")
	ctx := context.Background()

	assert.NoError(t, loader.Load(ctx, "/assets/dice/ok.svg"))

	err := loader.Load(ctx, "/assets/dice/gone.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	// Scheme-qualified locators ignore the origin entirely.
	assert.NoError(t, loader.Load(ctx, server.URL+"/assets/dice/ok.svg"))
}

/*
TestHTTPLoader_RelativeWithoutOrigin verifies that a root-relative locator
without a configured origin fails fast instead of fetching garbage.
*/
func TestHTTPLoader_RelativeWithoutOrigin(t *testing.T) {
	loader := render.NewHTTPLoader("")

	err := loader.Load(context.Background(), "/assets/dice/ok.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asset origin")
}
