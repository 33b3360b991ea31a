package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"calling-tracker-backend/internal/database"
	"calling-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(t *testing.T, handler *HealthHandler) *testutils.HTTPTestSuite {
	t.Helper()
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite
}

func TestHealthEndpoints(t *testing.T) {
	httpSuite := newHealthRouter(t, NewHealthHandler(testutils.NewSQLiteDB(t)))

	t.Run("health", func(t *testing.T) {
		var response HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health", nil), http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["database"])
		assert.Equal(t, Version, response.Version)
	})

	t.Run("ready", func(t *testing.T) {
		var response map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health/ready", nil), http.StatusOK, &response)
		assert.Equal(t, true, response["ready"])
	})

	t.Run("live", func(t *testing.T) {
		var response map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health/live", nil), http.StatusOK, &response)
		assert.Equal(t, true, response["alive"])
	})
}

func TestHealthWithClosedDatabase(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	require.NoError(t, database.Close(db))
	httpSuite := newHealthRouter(t, NewHealthHandler(db))

	recorder := httpSuite.MakeRequest("GET", "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Services["database"], "error:")

	recorder = httpSuite.MakeRequest("GET", "/health/live", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
