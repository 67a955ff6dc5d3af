package handler

import (
	"net/http"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/usecase/account"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUseCase *account.AccountUseCase
}

func NewAccountHandler(accountUseCase *account.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

// UpdateUserRequest is a partial account update
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Birthdate *string `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
}

// GetUser returns one account
// @Summary Get user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} domain.AccountView
// @Failure 404 {object} ErrorResponse
// @Router /user_by_id/{id}/ [get]
func (h *AccountHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.accountUseCase.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListUsers returns every account
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.AccountView
// @Failure 403 {object} ErrorResponse
// @Router /all/ [get]
func (h *AccountHandler) ListUsers(c *gin.Context) {
	views, err := h.accountUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// UpdateUser applies a partial update to an account
// @Summary Update user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} domain.AccountView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /update_user/{id}/ [patch]
func (h *AccountHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	in := account.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse(time.DateOnly, *req.Birthdate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"birthdate": []string{"Date has wrong format. Use YYYY-MM-DD."}})
			return
		}
		in.Birthdate = &birthdate
	}

	view, err := h.accountUseCase.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteUser deletes an account, blacklisting the supplied refresh token first
// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /delete_user/{id}/ [delete]
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	// the body is optional on DELETE
	var req RefreshTokenRequest
	if c.Request.ContentLength != 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	if err := h.accountUseCase.DeleteUser(c.Request.Context(), actor, id, req.RefreshToken); err != nil {
		respondTokenError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "User deleted successfully"})
}
