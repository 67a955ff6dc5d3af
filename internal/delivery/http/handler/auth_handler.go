package handler

import (
	"net/http"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// SignupRequest represents signup request
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Birthdate string `json:"birthdate" binding:"required,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token for logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

type TokenRefreshResponse struct {
	Access string `json:"access"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// Signup handles account registration
// @Summary Sign up
// @Description Create an account with a default profile and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account data"
// @Success 201 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /signup/ [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	birthdate, err := time.Parse(time.DateOnly, req.Birthdate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"birthdate": []string{"Date has wrong format. Use YYYY-MM-DD."}})
		return
	}

	result, err := h.authUseCase.Signup(c.Request.Context(), auth.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthdate: birthdate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles email and password authentication
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout handles user logout
// @Summary Logout
// @Description Blacklist the caller's refresh token
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Refresh token is required"})
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), account.ID, req.RefreshToken); err != nil {
		respondTokenError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "User logged out successfully"})
}

// RefreshToken exchanges a refresh token for a new access token
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRefreshRequest true "Refresh token"
// @Success 200 {object} TokenRefreshResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /token/refresh/ [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req TokenRefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Refresh == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Refresh token is required"})
		return
	}

	access, err := h.authUseCase.RefreshAccess(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenRefreshResponse{Access: access})
}

// ChangePassword changes the caller's password
// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /change_password/ [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUseCase.ChangePassword(c.Request.Context(), account, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "Password changed successfully"})
}

// ResetPassword sets a new password on an account
// @Summary Reset password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reset_password/{id}/ [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUseCase.ResetPassword(c.Request.Context(), actor, id, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "Password reset successfully"})
}
