package nba

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21javi21/corderos-app/logging"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.Bootstrap()
	os.Exit(m.Run())
}

func TestTrackerEndpoint(t *testing.T) {
	upstream := newFakeUpstream(t)
	svc := NewService(NewClient(upstream.URL, testSeason), time.Minute)

	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/nba/tracker", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp TrackerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testSeason, resp.Season)
	assert.NotEmpty(t, resp.Teams)
	assert.NotEmpty(t, resp.MVP)
	assert.NotEmpty(t, resp.ROY)
}
