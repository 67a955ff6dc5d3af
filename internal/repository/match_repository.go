package repository

import (
	"context"

	"github.com/gdugdh24/topfive-backend/internal/domain"
)

type MatchRepository interface {
	// Create stores the pair normalised. An existing pair yields domain.ErrMatchExists.
	Create(ctx context.Context, match *domain.Match) error
	GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID int) ([]*domain.Match, error)
}

type LikeRepository interface {
	// Create records from -> to. Repeating a like is a no-op.
	Create(ctx context.Context, like *domain.Like) error
	Exists(ctx context.Context, fromAccountID, toAccountID int) (bool, error)
}
