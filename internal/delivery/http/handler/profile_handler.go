package handler

import (
	"net/http"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// PresignedURLsResponse lists one upload URL per reserved slot
type PresignedURLsResponse struct {
	PresignedURLs []profile.PresignedURL `json:"presigned_urls"`
}

// GetProfile returns the profile of an account
// @Summary Get profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /get_profile/{id}/ [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile applies a partial update, including photo slot changes
// @Summary Update profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body profile.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /update_profile/{id}/ [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.profileUseCase.UpdateProfile(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetPresignedURLs reserves photo slots and returns upload URLs for them
// @Summary Reserve photo upload slots
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body profile.ReservePhotosRequest true "photo_indexes or photo_count"
// @Success 200 {object} PresignedURLsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /get_presigned_urls/{id}/ [put]
func (h *ProfileHandler) GetPresignedURLs(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req profile.ReservePhotosRequest
	if !bindJSON(c, &req) {
		return
	}

	urls, err := h.profileUseCase.ReservePhotoSlots(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PresignedURLsResponse{PresignedURLs: urls})
}

// ProfileChoices dumps every enumerated vocabulary
// @Summary Profile choices
// @Tags profile
// @Produce json
// @Success 200 {object} map[string][]domain.Choice
// @Router /profile_choices/ [get]
func (h *ProfileHandler) ProfileChoices(c *gin.Context) {
	c.JSON(http.StatusOK, domain.AllChoices())
}
