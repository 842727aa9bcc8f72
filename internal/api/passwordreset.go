package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// PasswordResetHandler handles the public forgot-password flow.
type PasswordResetHandler struct {
	resetService *service.PasswordResetService
}

func NewPasswordResetHandler(resetService *service.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{resetService: resetService}
}

// RegisterRoutes registers the reset routes. These are public and expected
// to sit behind a rate limiter.
func (h *PasswordResetHandler) RegisterRoutes(router *gin.RouterGroup) {
	reset := router.Group("/auth/password")
	{
		reset.POST("/forgot", h.Forgot)
		reset.POST("/verify-otp", h.VerifyOTP)
		reset.POST("/reset", h.Reset)
	}
}

// Forgot mails an OTP. The response is identical for known and unknown
// accounts so the endpoint cannot be used to probe for registered emails.
func (h *PasswordResetHandler) Forgot(c *gin.Context) {
	var req types.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or username is required"})
		return
	}

	if err := h.resetService.RequestOTP(c.Request.Context(), identifier); err != nil && err != service.ErrNotFound {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset code has been sent"})
}

func (h *PasswordResetHandler) VerifyOTP(c *gin.Context) {
	var req types.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.resetService.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resetToken": token})
}

func (h *PasswordResetHandler) Reset(c *gin.Context) {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.resetService.ResetPassword(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
