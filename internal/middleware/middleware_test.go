package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/staywise/internal/auth"
	"github.com/joshua-takyi/staywise/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(tokens *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Auth(tokens), func(c *gin.Context) {
		claims, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "missing principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID, "role": claims.Role})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	tokens := auth.NewService("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsNonBearerHeader(t *testing.T) {
	tokens := auth.NewService("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	tokens := auth.NewService("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	expired := auth.NewService("test-secret", -time.Minute)
	token, err := expired.Issue("64f1b2a3c4d5e6f708192a3b", "user")
	assert.NoError(t, err)

	r := newAuthRouter(auth.NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthResolvesPrincipal(t *testing.T) {
	tokens := auth.NewService("test-secret", time.Hour)
	token, err := tokens.Issue("64f1b2a3c4d5e6f708192a3b", "admin")
	assert.NoError(t, err)

	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"64f1b2a3c4d5e6f708192a3b","role":"admin"}`, w.Body.String())
}
