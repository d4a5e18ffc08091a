package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.Validation("Validation error", apperrors.FieldError{Field: "title", Message: "x"}), http.StatusBadRequest, "Validation error"},
		{"auth", apperrors.Auth("no token"), http.StatusUnauthorized, "no token"},
		{"forbidden", apperrors.Forbidden("nope"), http.StatusForbidden, "nope"},
		{"not found", apperrors.NotFound("Task not found"), http.StatusNotFound, "Task not found"},
		{"invalid operation", apperrors.InvalidOperation("Cannot change your own role"), http.StatusBadRequest, "Cannot change your own role"},
		{"storage", apperrors.Storage("insert task", errors.New("connection refused")), http.StatusInternalServerError, "Server error"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "Server error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, zap.NewNop(), "[test]", tc.err)

			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
			var body struct {
				Success bool                    `json:"success"`
				Message string                  `json:"message"`
				Errors  []apperrors.FieldError `json:"errors"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.Message != tc.message {
				t.Errorf("body = %+v, want message %q", body, tc.message)
			}
			if strings.Contains(w.Body.String(), "connection refused") {
				t.Error("storage cause leaked to client")
			}
		})
	}
}

func TestBindJSON_FieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"missing all", `{}`, []string{"name", "email", "password"}},
		{"bad email short password", `{"name":"a","email":"nope","password":"123"}`, []string{"email", "password"}},
		{"malformed json", `{"name":`, []string{"body"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req models.RegisterRequest
			err := bindJSON(c, &req)
			var appErr *apperrors.Error
			if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation {
				t.Fatalf("bindJSON() error = %v, want validation", err)
			}
			if len(appErr.Fields) != len(tc.fields) {
				t.Fatalf("fields = %+v, want %v", appErr.Fields, tc.fields)
			}
			for i, f := range tc.fields {
				if appErr.Fields[i].Field != f {
					t.Errorf("fields[%d] = %q, want %q", i, appErr.Fields[i].Field, f)
				}
			}
		})
	}
}

func TestPaginationJSON(t *testing.T) {
	p := models.NewPageResult([]int{1, 2}, 5, models.Page{Page: 2, Limit: 2})
	got := paginationJSON(p)
	if got["total"] != 5 {
		t.Errorf("total = %v, want 5", got["total"])
	}
	if _, ok := got["next"]; !ok {
		t.Error("next missing on middle page")
	}
	if _, ok := got["prev"]; !ok {
		t.Error("prev missing on middle page")
	}

	last := paginationJSON(models.NewPageResult([]int{5}, 5, models.Page{Page: 3, Limit: 2}))
	if _, ok := last["next"]; ok {
		t.Error("next present on last page")
	}
}
