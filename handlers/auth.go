// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tablescout/middleware"
	userSvc "tablescout/services/user"
)

// AuthHandler serves the mock sign-in, sign-up and sign-out endpoints.
type AuthHandler struct {
	Users  userSvc.UserService
	Logger *zap.Logger
}

func NewAuthHandler(users userSvc.UserService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{Users: users, Logger: logger}
}

// LoginHandler authenticates against the mock credential list.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, userSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignupHandler creates an account and signs it in.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, userSvc.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		h.Logger.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LogoutHandler drops the caller's session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := h.Users.Logout(c.Request.Context(), userID); err != nil {
		h.Logger.Error("logout failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
