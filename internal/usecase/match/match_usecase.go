package match

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/gdugdh24/topfive-backend/pkg/log"
)

type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	matchRepo   repository.MatchRepository
	now         func() time.Time
}

func NewMatchUseCase(
	profileRepo repository.ProfileRepository,
	matchRepo repository.MatchRepository,
) *MatchUseCase {
	return &MatchUseCase{
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
		now:         time.Now,
	}
}

// PotentialMatches lists accounts of the caller's preferred gender whose age lies in the
// caller's preferred range, minus the caller and everyone already matched with them.
// Without a preferred gender nobody qualifies.
func (uc *MatchUseCase) PotentialMatches(ctx context.Context, accountID int) ([]domain.MatchCard, error) {
	const op = "usecase/match/PotentialMatches"
	lg := log.From(ctx).With("op", op, "account_id", accountID)

	profile, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if profile.PreferredGender == nil {
		return []domain.MatchCard{}, nil
	}

	minBirthdate, maxBirthdate := domain.BirthdateWindow(uc.now(), profile.MinPreferredAge, profile.MaxPreferredAge)
	candidates, err := uc.profileRepo.FindCandidates(ctx, accountID, *profile.PreferredGender, minBirthdate, maxBirthdate)
	if err != nil {
		lg.Error("find candidates failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	matched, err := uc.matchedIDs(ctx, accountID)
	if err != nil {
		lg.Error("load matches failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cards := make([]domain.MatchCard, 0, len(candidates))
	for _, c := range candidates {
		if c.AccountID == accountID || matched[c.AccountID] {
			continue
		}
		cards = append(cards, c.Card())
	}

	lg.Debug("potential matches", "count", len(cards))
	return cards, nil
}

func (uc *MatchUseCase) matchedIDs(ctx context.Context, accountID int) (map[int]bool, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, accountID)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(matches))
	for _, m := range matches {
		if other, ok := m.GetOtherUserID(accountID); ok {
			ids[other] = true
		}
	}
	return ids, nil
}

// Matches resolves every match of accountID to the other account, newest first.
func (uc *MatchUseCase) Matches(ctx context.Context, accountID int) ([]domain.MatchCard, error) {
	const op = "usecase/match/Matches"

	matches, err := uc.matchRepo.GetUserMatches(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	others := make([]int, 0, len(matches))
	for _, m := range matches {
		if other, ok := m.GetOtherUserID(accountID); ok {
			others = append(others, other)
		}
	}

	candidates, err := uc.profileRepo.CandidatesByIDs(ctx, others)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	byID := make(map[int]domain.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.AccountID] = c
	}

	cards := make([]domain.MatchCard, 0, len(others))
	for _, id := range others {
		if c, ok := byID[id]; ok {
			cards = append(cards, c.Card())
		}
	}
	return cards, nil
}
