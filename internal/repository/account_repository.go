package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
)

type AccountRepository interface {
	// CreateWithProfile inserts the account and its profile in one transaction.
	CreateWithProfile(ctx context.Context, account *domain.Account, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int, at time.Time) error
	Delete(ctx context.Context, id int) error
}
