package like

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/gdugdh24/topfive-backend/pkg/log"
)

type LikeUseCase struct {
	likeRepo  repository.LikeRepository
	matchRepo repository.MatchRepository
}

func NewLikeUseCase(likeRepo repository.LikeRepository, matchRepo repository.MatchRepository) *LikeUseCase {
	return &LikeUseCase{
		likeRepo:  likeRepo,
		matchRepo: matchRepo,
	}
}

// LikeResponse reports the like and, when it was reciprocal, the match.
type LikeResponse struct {
	IsMatch bool          `json:"is_match"`
	Like    *domain.Like  `json:"like"`
	Match   *domain.Match `json:"match,omitempty"`
}

// Like records fromID -> toID. If toID already liked fromID the pair becomes a match.
// Liking again is harmless and returns the existing match.
func (uc *LikeUseCase) Like(ctx context.Context, fromID, toID int) (*LikeResponse, error) {
	const op = "usecase/like/Like"
	lg := log.From(ctx).With("op", op, "account_id", fromID, "target_id", toID)

	if fromID == toID {
		return nil, domain.NewValidationError("user_id", "You cannot like yourself.")
	}

	like := &domain.Like{FromAccountID: fromID, ToAccountID: toID}
	if err := uc.likeRepo.Create(ctx, like); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp := &LikeResponse{Like: like}

	mutual, err := uc.likeRepo.Exists(ctx, toID, fromID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !mutual {
		return resp, nil
	}

	match := domain.NewMatch(fromID, toID)
	switch err := uc.matchRepo.Create(ctx, match); {
	case err == nil:
		lg.Info("match created", "match_id", match.ID)
	case errors.Is(err, domain.ErrMatchExists):
		if match, err = uc.matchRepo.GetByUsers(ctx, fromID, toID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	default:
		lg.Error("create match failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp.IsMatch = true
	resp.Match = match
	return resp, nil
}
