package handler

import (
	"net/http"

	"github.com/gdugdh24/topfive-backend/internal/usecase/prompt"
	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	promptUseCase *prompt.PromptUseCase
}

func NewPromptHandler(promptUseCase *prompt.PromptUseCase) *PromptHandler {
	return &PromptHandler{
		promptUseCase: promptUseCase,
	}
}

type CreatePromptRequest struct {
	Text string `json:"text" binding:"required"`
}

type SetPromptActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type AnswerPromptRequest struct {
	PromptID int    `json:"prompt_id" binding:"required,min=1"`
	Response string `json:"response" binding:"required"`
}

type UpdateResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

// ListPrompts returns the active prompts
// @Summary List prompts
// @Tags prompts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Prompt
// @Router /prompts/ [get]
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	prompts, err := h.promptUseCase.ListPrompts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// CreatePrompt adds a prompt
// @Summary Create prompt
// @Tags prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Prompt text"
// @Success 201 {object} domain.Prompt
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /prompts/ [post]
func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.promptUseCase.CreatePrompt(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// SetPromptActive toggles whether a prompt can be answered
// @Summary Activate or deactivate prompt
// @Tags prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param request body SetPromptActiveRequest true "Active flag"
// @Success 200 {object} domain.Prompt
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prompts/{id}/ [patch]
func (h *PromptHandler) SetPromptActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req SetPromptActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.promptUseCase.SetPromptActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// AnswerPrompt stores the caller's answer
// @Summary Answer prompt
// @Tags prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AnswerPromptRequest true "Answer"
// @Success 201 {object} domain.PromptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /prompt_responses/ [post]
func (h *PromptHandler) AnswerPrompt(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req AnswerPromptRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.promptUseCase.AnswerPrompt(c.Request.Context(), account.ID, req.PromptID, req.Response)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateResponse edits one of the caller's answers
// @Summary Update prompt response
// @Tags prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Response ID"
// @Param request body UpdateResponseRequest true "New answer"
// @Success 200 {object} domain.PromptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prompt_responses/{id}/ [patch]
func (h *PromptHandler) UpdateResponse(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateResponseRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.promptUseCase.UpdateResponse(c.Request.Context(), account.ID, id, req.Response)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteResponse removes one of the caller's answers
// @Summary Delete prompt response
// @Tags prompts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /prompt_responses/{id}/ [delete]
func (h *PromptHandler) DeleteResponse(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.promptUseCase.DeleteResponse(c.Request.Context(), account.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "Prompt response deleted successfully"})
}
