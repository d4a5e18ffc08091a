package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
)

// statusFor is the one mapping from error kind to HTTP status.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation, apperrors.KindInvalidOperation:
		return http.StatusBadRequest
	case apperrors.KindAuth:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope. Storage and unclassified errors are logged
// and hidden behind a generic message.
func respondError(c *gin.Context, log *zap.Logger, tag string, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || statusFor(appErr.Kind) == http.StatusInternalServerError {
		logger.WithRequestID(c.Request.Context(), log).Error(tag+"[err]", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	logger.WithRequestID(c.Request.Context(), log).Debug(tag+"[deny]",
		zap.String("kind", string(appErr.Kind)), zap.String("reason", appErr.Message))
	body := gin.H{"success": false, "message": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	c.JSON(statusFor(appErr.Kind), body)
}

// bindJSON decodes the body into dst and converts binding failures into a Validation error.
func bindJSON(c *gin.Context, dst interface{}) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var fields apperrors.FieldSet
		for _, fe := range verrs {
			fields.Add(jsonFieldName(fe.Field()), tagMessage(fe))
		}
		return fields.Err()
	}
	return apperrors.Validation("Invalid request body", apperrors.FieldError{Field: "body", Message: err.Error()})
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please add a valid email"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Cannot be more than " + fe.Param() + " characters"
	}
	return "Invalid value"
}

// actorOf returns the authenticated caller; an empty actor is rejected by the policy.
func actorOf(c *gin.Context) authz.Actor {
	actor, _ := middleware.ActorFromContext(c)
	return actor
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

func pageFromQuery(c *gin.Context) models.Page {
	return models.Page{Page: queryInt(c, "page"), Limit: queryInt(c, "limit")}
}

func paginationJSON[T any](p models.PageResult[T]) gin.H {
	out := gin.H{"page": p.Page, "limit": p.Limit, "total": p.Total}
	if p.HasNext {
		out["next"] = gin.H{"page": p.Page + 1, "limit": p.Limit}
	}
	if p.HasPrev {
		out["prev"] = gin.H{"page": p.Page - 1, "limit": p.Limit}
	}
	return out
}

func listJSON[T any](p models.PageResult[T]) gin.H {
	return gin.H{
		"success":    true,
		"data":       p.Items,
		"count":      len(p.Items),
		"pagination": paginationJSON(p),
	}
}
