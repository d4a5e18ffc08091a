package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

type UserHandler struct {
	service services.UserService
	log     *zap.Logger
}

func NewUserHandler(service services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// @Summary      List users
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page, from 1"
// @Param        limit  query  int  false  "Page size, up to 100"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.service.ListUsers(c.Request.Context(), actorOf(c), pageFromQuery(c))
	if err != nil {
		respondError(c, h.log, "[user][list]", err)
		return
	}
	c.JSON(http.StatusOK, listJSON(page))
}

// @Summary      Get user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), actorOf(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "[user][get]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// @Summary      Change user role
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User ID"
// @Param        role  body      models.RoleRequest  true  "member | admin"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	actor := actorOf(c)
	var req models.RoleRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, "[user][role][bind]", err)
		return
	}

	user, err := h.service.UpdateUserRole(c.Request.Context(), actor, c.Param("id"), req.Role)
	if err != nil {
		respondError(c, h.log, "[user][role]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[user][role][ok]",
		zap.String("user_id", user.ID), zap.String("role", string(user.Role)), zap.String("by", actor.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// @Summary      Deactivate user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false, "[user][deactivate]", "User deactivated successfully")
}

// @Summary      Activate user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/activate [patch]
func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true, "[user][activate]", "User activated successfully")
}

func (h *UserHandler) setActive(c *gin.Context, active bool, tag, message string) {
	actor := actorOf(c)
	user, err := h.service.SetUserActive(c.Request.Context(), actor, c.Param("id"), active)
	if err != nil {
		respondError(c, h.log, tag, err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info(tag+"[ok]",
		zap.String("user_id", user.ID), zap.String("by", actor.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": user})
}

// @Summary      Delete user
// @Description  Fails while the user is still assignee or creator of a task
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	actor := actorOf(c)
	id := c.Param("id")
	if err := h.service.DeleteUser(c.Request.Context(), actor, id); err != nil {
		respondError(c, h.log, "[user][delete]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[user][delete][ok]",
		zap.String("user_id", id), zap.String("by", actor.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
