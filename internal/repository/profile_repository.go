package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
)

type ProfileRepository interface {
	GetByAccountID(ctx context.Context, accountID int) (*domain.Profile, error)

	// Lock runs fn while holding the profile row lock (SELECT ... FOR UPDATE). Nothing is written.
	Lock(ctx context.Context, accountID int, fn func(p *domain.Profile) error) error

	// Update locks the profile row, lets mutate change it and persists the result in the same
	// transaction. An error from mutate rolls everything back.
	Update(ctx context.Context, accountID int, mutate func(p *domain.Profile) error) (*domain.Profile, error)

	// FindCandidates returns accounts whose profile gender equals gender and whose birthdate lies
	// in [minBirthdate, maxBirthdate], excluding excludeAccountID.
	FindCandidates(ctx context.Context, excludeAccountID int, gender string, minBirthdate, maxBirthdate time.Time) ([]domain.Candidate, error)

	// CandidatesByIDs projects the given accounts for display.
	CandidatesByIDs(ctx context.Context, accountIDs []int) ([]domain.Candidate, error)
}
