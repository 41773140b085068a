package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"runwayplanner/backend/config"
)

func TestRegisterTokenRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, config.Config{JWTSecret: "test-secret"})

	routes := map[string]bool{}
	for _, ri := range r.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}
	assert.True(t, routes["GET /api/tokens/usage"])
	assert.False(t, routes["POST /api/tokens/set-plan"])

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/tokens/set-plan", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tokens/usage", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
