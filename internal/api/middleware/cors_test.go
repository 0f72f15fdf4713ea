package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(config CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(config))
	router.POST("/submit", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCORS_DefaultAllowsAnyOrigin(t *testing.T) {
	router := corsRouter(DefaultCORSConfig())

	req := httptest.NewRequest("POST", "/submit", nil)
	req.Header.Set("Origin", "http://some-frontend.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	router := corsRouter(DefaultCORSConfig())

	req := httptest.NewRequest("OPTIONS", "/submit", nil)
	req.Header.Set("Origin", "http://some-frontend.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_RestrictedOriginList(t *testing.T) {
	config := DefaultCORSConfig()
	config.AllowOrigins = []string{"http://allowed.example"}
	router := corsRouter(config)

	req := httptest.NewRequest("POST", "/submit", nil)
	req.Header.Set("Origin", "http://denied.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
