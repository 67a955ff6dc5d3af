package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/gdugdh24/topfive-backend/pkg/log"
)

type AuthUseCase struct {
	accountRepo repository.AccountRepository
	tokens      *TokenManager
	blacklist   cache.TokenBlacklist
	now         func() time.Time
}

func NewAuthUseCase(
	accountRepo repository.AccountRepository,
	tokens *TokenManager,
	blacklist cache.TokenBlacklist,
) *AuthUseCase {
	return &AuthUseCase{
		accountRepo: accountRepo,
		tokens:      tokens,
		blacklist:   blacklist,
		now:         time.Now,
	}
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Birthdate time.Time
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User   domain.AccountView `json:"user"`
	Tokens TokenPair          `json:"tokens"`
}

// Signup creates the account together with its default profile and logs it in.
func (uc *AuthUseCase) Signup(ctx context.Context, in SignupInput) (*AuthResponse, error) {
	const op = "usecase/auth/Signup"

	account := &domain.Account{
		Email:     domain.NormalizeEmail(in.Email),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Birthdate: in.Birthdate,
		IsActive:  true,
	}
	if err := account.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	if err := uc.accountRepo.CreateWithProfile(ctx, account, domain.NewDefaultProfile(0)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "account_id", account.ID)

	tokens, err := uc.tokens.Issue(account.ID)
	if err != nil {
		lg.Error("issue tokens failed", "err", err)
		return nil, fmt.Errorf("%s: issue tokens: %w", op, err)
	}

	lg.Info("account created")
	return &AuthResponse{User: account.View(), Tokens: tokens}, nil
}

// Login checks email and password. Unknown email, wrong password and inactive
// accounts all fail the same way.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	const op = "usecase/auth/Login"

	account, err := uc.accountRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "account_id", account.ID)

	if !account.CheckPassword(password) || !account.Active() {
		lg.Warn("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	if err := uc.accountRepo.TouchLastLogin(ctx, account.ID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	account.LastLogin = &now

	tokens, err := uc.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: issue tokens: %w", op, err)
	}
	return &AuthResponse{User: account.View(), Tokens: tokens}, nil
}

// Logout blacklists the caller's refresh token.
func (uc *AuthUseCase) Logout(ctx context.Context, accountID int, refreshToken string) error {
	const op = "usecase/auth/Logout"

	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return err
	}
	if owner, err := claims.AccountID(); err != nil || owner != accountID {
		return domain.ErrInvalidToken
	}
	if err := uc.revoke(ctx, claims); err != nil {
		if errors.Is(err, domain.ErrTokenRevoked) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).With("op", op, "account_id", accountID).Info("logged out")
	return nil
}

// RevokeRefresh blacklists any valid refresh token.
func (uc *AuthUseCase) RevokeRefresh(ctx context.Context, refreshToken string) error {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return err
	}
	return uc.revoke(ctx, claims)
}

func (uc *AuthUseCase) revoke(ctx context.Context, claims *Claims) error {
	ttl := claims.ExpiresAt.Sub(uc.now())
	added, err := uc.blacklist.Add(ctx, claims.ID, ttl)
	if err != nil {
		return err
	}
	if !added {
		return domain.ErrTokenRevoked
	}
	return nil
}

// RefreshAccess exchanges a live refresh token for a new access token.
func (uc *AuthUseCase) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	const op = "usecase/auth/RefreshAccess"

	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	revoked, err := uc.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return "", domain.ErrTokenRevoked
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return "", err
	}
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !account.Active() {
		return "", domain.ErrInvalidToken
	}

	access, err := uc.tokens.IssueAccess(account.ID)
	if err != nil {
		return "", fmt.Errorf("%s: issue access: %w", op, err)
	}
	return access, nil
}

// Authenticate resolves an access token to an active account.
func (uc *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*domain.Account, error) {
	const op = "usecase/auth/Authenticate"

	claims, err := uc.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	accountID, err := claims.AccountID()
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !account.Active() {
		return nil, domain.ErrUnauthorized
	}
	return account, nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, account *domain.Account, oldPassword, newPassword string) error {
	const op = "usecase/auth/ChangePassword"

	if !account.CheckPassword(oldPassword) {
		return domain.ErrIncorrectPassword
	}
	if err := account.SetPassword(newPassword); err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}
	if err := uc.accountRepo.UpdatePassword(ctx, account.ID, account.PasswordHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).With("op", op, "account_id", account.ID).Info("password changed")
	return nil
}

// ResetPassword sets a new password on targetID. The actor must be that account or staff.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, actor *domain.Account, targetID int, newPassword string) error {
	const op = "usecase/auth/ResetPassword"

	target, err := uc.accountRepo.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !actor.CanManage(target.ID) {
		return domain.ErrForbidden
	}

	if err := target.SetPassword(newPassword); err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}
	if err := uc.accountRepo.UpdatePassword(ctx, target.ID, target.PasswordHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).With("op", op, "account_id", target.ID, "actor_id", actor.ID).Info("password reset")
	return nil
}
