package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"employee-records/internal/dto"
	"employee-records/internal/response"
	"employee-records/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
// POST /api/v1/user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.ValidationError(c, msg)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Conflict(c, "Email already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, dto.UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

// Login handles user login
// POST /api/v1/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.ValidationError(c, msg)
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike
			response.Unauthorized(c, response.CodeInvalidCredentials, "Invalid email or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, pair)
}

// RefreshToken handles access-token refresh
// POST /api/v1/user/refresh-token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, response.CodeMissingToken, "Refresh token is missing")
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrMissingToken) {
			response.Unauthorized(c, response.CodeMissingToken, "Refresh token is missing")
			return
		}
		if errors.Is(err, service.ErrInvalidToken) {
			response.Forbidden(c, response.CodeInvalidToken, "Invalid refresh token")
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, dto.RefreshTokenResponse{AccessToken: accessToken})
}
