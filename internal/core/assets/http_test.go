// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicewright/dicefaces/internal/core/assets"
)

func newTestRouter(loader assets.Loader) (http.Handler, *assets.Service) {
	ambient := assets.NewAmbient("", false, time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := assets.NewService(ambient, assets.NewMemoryStore(), loader, "", logger)
	return assets.NewHandler(service, logger).Routes(), service
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder, parsed
}

/*
TestConfigEndpoints verifies the read and patch surfaces of the ambient
configuration.
*/
func TestConfigEndpoints(t *testing.T) {
	router, _ := newTestRouter(&fakeLoader{})

	recorder, body := doRequest(t, router, http.MethodGet, "/config", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "/assets/dice", data["effective_base_path"])
	assert.EqualValues(t, 0, data["preloaded_count"])

	recorder, body = doRequest(t, router, http.MethodPatch, "/config",
		`{"base_path":"/mnt/dice","cache_duration_seconds":600}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	data = body["data"].(map[string]any)
	assert.Equal(t, "/mnt/dice", data["base_path"])

	// The patched ambient path now wins the chain.
	recorder, body = doRequest(t, router, http.MethodGet, "/config", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, "/mnt/dice", data["effective_base_path"])
}

/*
TestConfigPatch_Invalid verifies rejection of malformed bodies and
non-positive cache durations.
*/
func TestConfigPatch_Invalid(t *testing.T) {
	router, _ := newTestRouter(&fakeLoader{})

	recorder, body := doRequest(t, router, http.MethodPatch, "/config", `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	recorder, body = doRequest(t, router, http.MethodPatch, "/config",
		`{"cache_duration_seconds":0}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

/*
TestPreloadEndpoint verifies the synchronous sweep and its report payload.
*/
func TestPreloadEndpoint(t *testing.T) {
	router, _ := newTestRouter(&fakeLoader{})

	recorder, body := doRequest(t, router, http.MethodPost, "/preload",
		`{"theme":"black-arabic","format":"png"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].(map[string]any)
	assert.EqualValues(t, catalogLocatorCount, data["total"])
	assert.EqualValues(t, catalogLocatorCount, data["loaded"])
	assert.Equal(t, "png", data["format"])

	// Empty body sweeps the default theme as SVG.
	router, _ = newTestRouter(&fakeLoader{})
	recorder, body = doRequest(t, router, http.MethodPost, "/preload", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, "svg", data["format"])
}

/*
TestPreloadedEndpoint verifies the paginated read-only view of the shared
locator set.
*/
func TestPreloadedEndpoint(t *testing.T) {
	router, _ := newTestRouter(&fakeLoader{})

	_, _ = doRequest(t, router, http.MethodPost, "/preload", "")

	recorder, body := doRequest(t, router, http.MethodGet, "/preloaded?limit=25", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	assert.Len(t, body["data"].([]any), 25)
	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, catalogLocatorCount, meta["total"])
	assert.EqualValues(t, 5, meta["total_pages"])
}
