package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.config.Env = "test"
	})

	w, r := executeRequest(t, http.MethodGet, "/api/healthcheck", nil)
	serve(app, w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "UP", resp.Status)
	assert.Equal(t, "test", resp.SystemInfo.Environment)
	assert.Equal(t, version, resp.SystemInfo.Version)
}

func TestGetOpenAPISpec(t *testing.T) {
	doc, err := api.GetSwagger()
	require.NoError(t, err)

	app := newTestApplication(func(a *Application) {
		a.openapi = doc
	})

	w, r := executeRequest(t, http.MethodGet, "/api/openapi.json", nil)
	serve(app, w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	assert.Equal(t, "3.0.3", body["openapi"])
	assert.Contains(t, body["paths"], "/api/booking/{id}/confirm")
}
