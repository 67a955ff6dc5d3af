package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/gdugdh24/topfive-backend/pkg/log"
)

// TokenRevoker blacklists a refresh token.
type TokenRevoker interface {
	RevokeRefresh(ctx context.Context, refreshToken string) error
}

type AccountUseCase struct {
	accountRepo repository.AccountRepository
	revoker     TokenRevoker
}

func NewAccountUseCase(accountRepo repository.AccountRepository, revoker TokenRevoker) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		revoker:     revoker,
	}
}

func (uc *AccountUseCase) GetUser(ctx context.Context, id int) (*domain.AccountView, error) {
	const op = "usecase/account/GetUser"

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	view := account.View()
	return &view, nil
}

func (uc *AccountUseCase) ListUsers(ctx context.Context) ([]domain.AccountView, error) {
	const op = "usecase/account/ListUsers"

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	views := make([]domain.AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, a.View())
	}
	return views, nil
}

// UpdateUserInput holds the account fields staff may change. Nil means unchanged.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Birthdate *time.Time
}

func (uc *AccountUseCase) UpdateUser(ctx context.Context, id int, in UpdateUserInput) (*domain.AccountView, error) {
	const op = "usecase/account/UpdateUser"

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		if email == "" || !strings.Contains(email, "@") {
			return nil, domain.NewValidationError("email", "Enter a valid email address.")
		}
		account.Email = email
	}
	if in.FirstName != nil {
		account.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		account.LastName = *in.LastName
	}
	if in.Birthdate != nil {
		account.Birthdate = *in.Birthdate
	}

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).With("op", op, "account_id", id).Info("account updated")
	view := account.View()
	return &view, nil
}

// DeleteUser removes targetID on behalf of actor. A supplied refresh token is blacklisted
// first and a bad token aborts the deletion.
func (uc *AccountUseCase) DeleteUser(ctx context.Context, actor *domain.Account, targetID int, refreshToken string) error {
	const op = "usecase/account/DeleteUser"

	target, err := uc.accountRepo.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "account_id", target.ID, "actor_id", actor.ID)

	if !actor.CanManage(target.ID) {
		lg.Warn("delete refused")
		return domain.ErrForbidden
	}

	if refreshToken != "" {
		if err := uc.revoker.RevokeRefresh(ctx, refreshToken); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := uc.accountRepo.Delete(ctx, target.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("account deleted")
	return nil
}
