package repository

import (
	"context"

	"github.com/gdugdh24/topfive-backend/internal/domain"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *domain.Prompt) error
	GetByID(ctx context.Context, id int) (*domain.Prompt, error)
	ListActive(ctx context.Context) ([]*domain.Prompt, error)
	SetActive(ctx context.Context, id int, active bool) (*domain.Prompt, error)

	CreateResponse(ctx context.Context, resp *domain.PromptResponse) error
	GetResponse(ctx context.Context, id int) (*domain.PromptResponse, error)
	UpdateResponse(ctx context.Context, id int, text string) (*domain.PromptResponse, error)
	DeleteResponse(ctx context.Context, id int) error
	ListResponses(ctx context.Context, profileID int) ([]domain.PromptResponse, error)
}
