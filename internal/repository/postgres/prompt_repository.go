package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type promptRepository struct {
	db *sqlx.DB
}

func NewPromptRepository(db *sqlx.DB) repository.PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	query := `
		INSERT INTO prompts (text, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, prompt.Text, prompt.IsActive).Scan(&prompt.ID, &prompt.CreatedAt)
	if isUniqueViolation(err) {
		return domain.NewValidationError("text", "A prompt with this text already exists.")
	}
	return err
}

func (r *promptRepository) GetByID(ctx context.Context, id int) (*domain.Prompt, error) {
	var prompt domain.Prompt
	query := `SELECT id, text, is_active, created_at FROM prompts WHERE id = $1`
	if err := r.db.GetContext(ctx, &prompt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromptNotFound
		}
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) ListActive(ctx context.Context) ([]*domain.Prompt, error) {
	prompts := []*domain.Prompt{}
	query := `SELECT id, text, is_active, created_at FROM prompts WHERE is_active ORDER BY id`
	err := r.db.SelectContext(ctx, &prompts, query)
	return prompts, err
}

func (r *promptRepository) SetActive(ctx context.Context, id int, active bool) (*domain.Prompt, error) {
	var prompt domain.Prompt
	query := `
		UPDATE prompts SET is_active = $1 WHERE id = $2
		RETURNING id, text, is_active, created_at
	`
	if err := r.db.GetContext(ctx, &prompt, query, active, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromptNotFound
		}
		return nil, err
	}
	return &prompt, nil
}

const responseSelect = `
	SELECT r.id, r.profile_id, r.prompt_id, p.text AS prompt_text, r.response, r.created_at, r.updated_at
	FROM prompt_responses r
	JOIN prompts p ON p.id = r.prompt_id
`

func (r *promptRepository) CreateResponse(ctx context.Context, resp *domain.PromptResponse) error {
	query := `
		WITH ins AS (
			INSERT INTO prompt_responses (profile_id, prompt_id, response)
			VALUES ($1, $2, $3)
			RETURNING id, profile_id, prompt_id, response, created_at, updated_at
		)
		SELECT ins.id, ins.profile_id, ins.prompt_id, p.text AS prompt_text, ins.response, ins.created_at, ins.updated_at
		FROM ins
		JOIN prompts p ON p.id = ins.prompt_id
	`
	err := r.db.GetContext(ctx, resp, query, resp.ProfileID, resp.PromptID, resp.Response)
	switch {
	case isUniqueViolation(err):
		return domain.ErrPromptAlreadyAnswered
	case isForeignKeyViolation(err):
		return domain.ErrPromptNotFound
	}
	return err
}

func (r *promptRepository) GetResponse(ctx context.Context, id int) (*domain.PromptResponse, error) {
	var resp domain.PromptResponse
	if err := r.db.GetContext(ctx, &resp, responseSelect+` WHERE r.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromptResponseNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (r *promptRepository) UpdateResponse(ctx context.Context, id int, text string) (*domain.PromptResponse, error) {
	query := `UPDATE prompt_responses SET response = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, text, id)
	if err != nil {
		return nil, err
	}
	if err := expectOneRow(result, domain.ErrPromptResponseNotFound); err != nil {
		return nil, err
	}
	return r.GetResponse(ctx, id)
}

func (r *promptRepository) DeleteResponse(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM prompt_responses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, domain.ErrPromptResponseNotFound)
}

func (r *promptRepository) ListResponses(ctx context.Context, profileID int) ([]domain.PromptResponse, error) {
	responses := []domain.PromptResponse{}
	err := r.db.SelectContext(ctx, &responses, responseSelect+` WHERE r.profile_id = $1 ORDER BY r.id`, profileID)
	return responses, err
}
