package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	// Ensure user1_id < user2_id for constraint
	user1ID, user2ID := match.User1ID, match.User2ID
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}

	query := `
		INSERT INTO matches (user1_id, user2_id)
		VALUES ($1, $2)
		RETURNING id, matched_at
	`
	err := r.db.QueryRowContext(ctx, query, user1ID, user2ID).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMatchExists
		}
		return err
	}

	match.User1ID = user1ID
	match.User2ID = user2ID
	return nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error) {
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}

	var match domain.Match
	query := `SELECT id, user1_id, user2_id, matched_at FROM matches WHERE user1_id = $1 AND user2_id = $2`
	err := r.db.GetContext(ctx, &match, query, user1ID, user2ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID int) ([]*domain.Match, error) {
	matches := []*domain.Match{}
	query := `
		SELECT id, user1_id, user2_id, matched_at FROM matches
		WHERE (user1_id = $1 OR user2_id = $1)
		ORDER BY matched_at DESC, id DESC
	`
	err := r.db.SelectContext(ctx, &matches, query, userID)
	return matches, err
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (from_account_id, to_account_id)
		VALUES ($1, $2)
		ON CONFLICT (from_account_id, to_account_id)
		DO UPDATE SET from_account_id = EXCLUDED.from_account_id
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, like.FromAccountID, like.ToAccountID).Scan(&like.ID, &like.CreatedAt)
	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrAccountNotFound
	}
	return err
}

func (r *likeRepository) Exists(ctx context.Context, fromAccountID, toAccountID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE from_account_id = $1 AND to_account_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, fromAccountID, toAccountID)
	return exists, err
}
