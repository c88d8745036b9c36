package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"yolimar/internal/domain"
	"yolimar/internal/usecase"
	"yolimar/pkg/validation"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
	log  *slog.Logger
}

func NewAuthHandler(auth *usecase.AuthUsecase, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and opens the back-office session
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}
	if err := validation.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "email and password are required",
		})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_credentials",
				"message": "credenciales inválidas",
			})
			return
		}
		h.log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to log in",
		})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout closes the session
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Session returns the active session user
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	user := h.auth.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "no_session",
			"message": "no active session",
		})
		return
	}
	c.JSON(http.StatusOK, user)
}
