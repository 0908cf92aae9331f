package wager

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

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

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	repo := newTestRepo(t)
	router := gin.New()
	NewHandler(repo).RegisterRoutes(router.Group("/api"))
	return router, repo
}

func TestWagerEndpoints(t *testing.T) {
	router, repo := newTestRouter(t)

	t.Run("create defaults the multiplier", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/wagers",
			`{"description":"Madrid wins the league","bettor1":"javi","bettor2":"dani"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created Wager
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, 1.0, created.Multiplier)
	})

	t.Run("non-positive multiplier is a bad request", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/wagers",
			`{"description":"bad odds","multiplier":-2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("description is required", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/wagers", `{"bettor1":"javi"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("editing a locked wager is a conflict", func(t *testing.T) {
		seeded := seedWager(t, repo, "Cup final bet")
		lock := fmt.Sprintf("/api/wagers/%d", seeded.ID)

		w := performRequest(router, http.MethodPut, lock,
			`{"description":"Cup final bet","locked":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(router, http.MethodPut, lock,
			`{"description":"rewritten terms"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown wager is not found", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/wagers/9999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = performRequest(router, http.MethodDelete, "/api/wagers/9999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/wagers/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
