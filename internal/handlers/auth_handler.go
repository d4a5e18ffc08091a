package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

type AuthHandler struct {
	accounts services.AccountService
	log      *zap.Logger
}

func NewAuthHandler(accounts services.AccountService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log}
}

// @Summary      Register
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body      models.RegisterRequest  true  "New account"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, "[auth][register][bind]", err)
		return
	}

	user, token, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "[auth][register]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[auth][register][ok]", zap.String("user_id", user.ID))
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

// @Summary      Login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, "[auth][login][bind]", err)
		return
	}

	user, token, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, "[auth][login]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[auth][login][ok]", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.accounts.Me(c.Request.Context(), actorOf(c))
	if err != nil {
		respondError(c, h.log, "[auth][me]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// @Summary      Update own profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      models.ProfilePatch  true  "Fields to change"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, "[auth][profile][bind]", err)
		return
	}

	user, err := h.accounts.UpdateProfile(c.Request.Context(), actorOf(c), patch)
	if err != nil {
		respondError(c, h.log, "[auth][profile]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// @Summary      Change own password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        password  body      models.ChangePasswordRequest  true  "Current and new password"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]interface{}
// @Router       /auth/password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor := actorOf(c)
	var req models.ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, "[auth][password][bind]", err)
		return
	}

	if err := h.accounts.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, h.log, "[auth][password]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[auth][password][ok]", zap.String("user_id", actor.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}
