package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

type stubAuth map[string]*models.User

func (s stubAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == "broken" {
		return nil, errors.New("db down")
	}
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, apperrors.Auth("Not authorized, token failed")
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.NewNop()))
	auth := stubAuth{
		"member": {ID: "u1", Role: models.RoleMember, IsActive: true},
		"admin":  {ID: "u2", Role: models.RoleAdmin, IsActive: true},
	}
	api := r.Group("/", AuthMiddleware(auth, zap.NewNop()))
	api.GET("/me", func(c *gin.Context) {
		actor, _ := ActorFromContext(c)
		c.String(http.StatusOK, actor.ID)
	})
	api.GET("/admin", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic member", http.StatusUnauthorized},
		{"empty bearer", "/me", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"store failure", "/me", "Bearer broken", http.StatusInternalServerError},
		{"member ok", "/me", "Bearer member", http.StatusOK},
		{"lower-case scheme", "/me", "bearer member", http.StatusOK},
		{"member on admin route", "/admin", "Bearer member", http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer admin", http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestRequestIDAndRecovery(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, want echoed id", RequestIDHeader, got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("request id not generated")
	}
}
