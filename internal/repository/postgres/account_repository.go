package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, email, password_hash, first_name, last_name, birthdate,
	is_staff, is_active, date_joined, last_login`

func (r *accountRepository) CreateWithProfile(ctx context.Context, account *domain.Account, profile *domain.Profile) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO accounts (email, password_hash, first_name, last_name, birthdate, is_staff, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, date_joined
		`
		err := tx.QueryRowContext(
			ctx, query,
			account.Email, account.PasswordHash, account.FirstName, account.LastName,
			account.Birthdate.Format(time.DateOnly), account.IsStaff, account.IsActive,
		).Scan(&account.ID, &account.DateJoined)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrEmailTaken
			}
			return err
		}

		profile.AccountID = account.ID
		query = `
			INSERT INTO profiles (account_id, min_preferred_age, max_preferred_age, interests, picture_urls)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`
		return tx.QueryRowContext(
			ctx, query,
			profile.AccountID, profile.MinPreferredAge, profile.MaxPreferredAge,
			pq.Array(nonNil(profile.Interests)), pq.Array(nonNil(profile.PictureURLs)),
		).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	})
}

func (r *accountRepository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	accounts := []*domain.Account{}
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`
	err := r.db.SelectContext(ctx, &accounts, query)
	return accounts, err
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET email = $1, first_name = $2, last_name = $3, birthdate = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(
		ctx, query,
		account.Email, account.FirstName, account.LastName,
		account.Birthdate.Format(time.DateOnly), account.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return expectOneRow(result, domain.ErrAccountNotFound)
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrAccountNotFound)
}

func (r *accountRepository) TouchLastLogin(ctx context.Context, id int, at time.Time) error {
	query := `UPDATE accounts SET last_login = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrAccountNotFound)
}

// Delete removes the account. Profile, match, like and prompt response rows go with it.
func (r *accountRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrAccountNotFound)
}

func expectOneRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

func nonNil[S ~[]string](s S) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}
