// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"bga-backend/internal/services"
	"bga-backend/internal/transport/httpdto"
	"bga-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const serverErrorMessage = "Server error"

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := bindJSON(c, &req, "Validation failed"); err != nil {
		writeError(c, h.logger, "auth.register", err, serverErrorMessage)
		return
	}

	userID, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.logger, "auth.register", err, serverErrorMessage)
		return
	}

	c.JSON(http.StatusOK, httpdto.RegisterResponse{
		Success: true,
		UserID:  userID.String(),
	})
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := bindJSON(c, &req, "Validation failed"); err != nil {
		writeError(c, h.logger, "auth.login", err, serverErrorMessage)
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.logger, "auth.login", err, serverErrorMessage)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Success: true,
		Token:   res.Token,
		User: httpdto.AuthUserDTO{
			Email: res.User.Email,
			Name:  res.User.Name,
			Role:  res.User.Role,
		},
	})
}
