package auth

import (
	"errors"
	"net/http"

	"barberbook/internal/pkg/jwt"
	"barberbook/internal/pkg/response"
	"barberbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	jwt     *jwt.Service
}

func NewHandler(service *Service, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	a := public.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
		a.POST("/forgot-password", h.ForgotPassword)
		a.POST("/reset-password", h.ResetPassword)
	}

	p := protected.Group("")
	{
		p.GET("/me", h.Me)
		p.PUT("/me", h.UpdateProfile)
		p.POST("/me/change-password", h.ChangePassword)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FormatErrors(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email is already registered")
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTER_FAILED", "Failed to register")
		}
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TOKEN_FAILED", "Failed to issue token")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FormatErrors(err))
		return
	}

	user, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountLocked):
			response.Error(c, http.StatusTooManyRequests, "ACCOUNT_LOCKED", "Too many failed attempts, try again later")
		default:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		}
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TOKEN_FAILED", "Failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FormatErrors(err))
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email is already registered")
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPhone):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FormatErrors(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect")
		case errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to change password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"changed": true})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FormatErrors(err))
		return
	}

	if err := h.service.RequestPasswordReset(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to process request")
		return
	}

	// Always the same answer, whether or not the email exists.
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FormatErrors(err))
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidResetToken):
			response.Error(c, http.StatusBadRequest, "INVALID_TOKEN", "Reset token is invalid or expired")
		case errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to reset password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reset": true})
}
