package handler

import (
	"net/http"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/usecase/like"
	"github.com/gdugdh24/topfive-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
	likeUseCase  *like.LikeUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, likeUseCase *like.LikeUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		likeUseCase:  likeUseCase,
	}
}

type PotentialMatchesResponse struct {
	PotentialMatches []domain.MatchCard `json:"potential_matches"`
}

type MatchesResponse struct {
	Matches []domain.MatchCard `json:"matches"`
}

// PotentialMatches lists accounts fitting the caller's preferences
// @Summary Potential matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} PotentialMatchesResponse
// @Failure 404 {object} ErrorResponse
// @Router /potential_matches/ [get]
func (h *MatchHandler) PotentialMatches(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	cards, err := h.matchUseCase.PotentialMatches(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PotentialMatchesResponse{PotentialMatches: cards})
}

// Matches lists the caller's confirmed matches
// @Summary Matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MatchesResponse
// @Router /matches/ [get]
func (h *MatchHandler) Matches(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	cards, err := h.matchUseCase.Matches(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchesResponse{Matches: cards})
}

// Like records a like and creates the match when it is mutual
// @Summary Like
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Account ID to like"
// @Success 200 {object} like.LikeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /like/{id}/ [post]
func (h *MatchHandler) Like(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.likeUseCase.Like(c.Request.Context(), account.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
