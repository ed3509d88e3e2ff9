package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/service"
)

// AuthHandler handles account and session requests
type AuthHandler struct {
	authService  service.AuthService
	logger       *zap.Logger
	cookieMaxAge int
	production   bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *zap.Logger, cookieMaxAge int, production bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		logger:       logger,
		cookieMaxAge: cookieMaxAge,
		production:   production,
	}
}

// SendOTP handles POST /auth/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Email is required",
			Errors: map[string]string{"email": "Email is required"},
		})
		return
	}

	if err := h.authService.SendOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Verification code sent to your email.",
	})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	setSessionCookie(c, result.Token, h.cookieMaxAge, h.production)
	c.JSON(http.StatusOK, dto.AuthResponse{User: result.User, Token: result.Token})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and password are required"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	setSessionCookie(c, result.Token, h.cookieMaxAge, h.production)
	c.JSON(http.StatusOK, dto.AuthResponse{User: result.User, Token: result.Token})
}

// Me handles GET /auth/me. It never errors: an absent, malformed or expired
// session simply reads as an anonymous visitor.
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	userID, err := h.authService.VerifySession(token)
	if err != nil {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: user})
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Please log in first"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Current password and new password are required"})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

// Logout handles POST /auth/logout by clearing the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, h.production)
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true})
}
