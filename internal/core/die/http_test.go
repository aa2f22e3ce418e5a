// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package die_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicewright/dicefaces/internal/core/die"
)

func newTestRouter() http.Handler {
	return die.NewHandler(newTestService(stubPaths{})).Routes()
}

func doGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

/*
TestHandler_ListDice verifies the paginated catalog endpoint.
*/
func TestHandler_ListDice(t *testing.T) {
	router := newTestRouter()

	recorder, body := doGet(t, router, "/")
	assert.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].([]any)
	assert.Len(t, data, 12)

	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, 12, meta["total"])

	// A second page past the catalog is empty but well-formed.
	recorder, body = doGet(t, router, "/?page=2&limit=10")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, body["data"].([]any), 2)
}

/*
TestHandler_GetDie verifies single-descriptor lookup and the 404 envelope.
*/
func TestHandler_GetDie(t *testing.T) {
	router := newTestRouter()

	recorder, body := doGet(t, router, "/d4")
	assert.Equal(t, http.StatusOK, recorder.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "d4", data["type"])
	assert.EqualValues(t, 4, data["sides"])
	assert.Len(t, data["variants"].([]any), 3)

	recorder, body = doGet(t, router, "/d13")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotEmpty(t, body["glyph"])
}

/*
TestHandler_ResolveFace verifies locator resolution over HTTP, including the
absent-versus-malformed theme distinction carried by the query string.
*/
func TestHandler_ResolveFace(t *testing.T) {
	router := newTestRouter()

	t.Run("success", func(t *testing.T) {
		recorder, body := doGet(t, router, "/d20/faces/7?theme=black-arabic&format=png")
		assert.Equal(t, http.StatusOK, recorder.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "/assets/dice/numeric/black-arabic/D20-07-Arabic-Black.png", data["src"])
		assert.Equal(t, "d20 die showing 7", data["alt"])
		assert.Nil(t, data["warnings"])
	})

	t.Run("absent_theme_is_silent", func(t *testing.T) {
		recorder, body := doGet(t, router, "/d6/faces/3")
		assert.Equal(t, http.StatusOK, recorder.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "/assets/dice/numeric/white-arabic/D6-03-Arabic-White.svg", data["src"])
		assert.Nil(t, data["warnings"])
	})

	t.Run("empty_theme_param_warns", func(t *testing.T) {
		recorder, body := doGet(t, router, "/d6/faces/3?theme=")
		assert.Equal(t, http.StatusOK, recorder.Code)

		data := body["data"].(map[string]any)
		warnings := data["warnings"].([]any)
		assert.Equal(t, die.WarnInvalidTheme, warnings[0])
	})

	t.Run("invalid_face", func(t *testing.T) {
		recorder, body := doGet(t, router, "/d6/faces/7")
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, die.CodeInvalidFace, body["code"])
		assert.Equal(t, "Invalid face for d6: must be between 1 and 6", body["error"])
	})

	t.Run("narrative_face", func(t *testing.T) {
		recorder, body := doGet(t, router, "/boost/faces/Success-Advantage")
		assert.Equal(t, http.StatusOK, recorder.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "/assets/dice/narrative/Boost/Boost-Success-Advantage.svg", data["src"])
	})

	t.Run("base_override_query", func(t *testing.T) {
		recorder, body := doGet(t, router, "/d6/faces/3?base=https://cdn.example.com/dice")
		assert.Equal(t, http.StatusOK, recorder.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "https://cdn.example.com/dice/numeric/white-arabic/D6-03-Arabic-White.svg", data["src"])
	})
}
