package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/gdugdh24/topfive-backend/pkg/log"
)

const (
	maxPromptLength   = 255
	maxResponseLength = 500
)

type PromptUseCase struct {
	promptRepo  repository.PromptRepository
	profileRepo repository.ProfileRepository
}

func NewPromptUseCase(promptRepo repository.PromptRepository, profileRepo repository.ProfileRepository) *PromptUseCase {
	return &PromptUseCase{
		promptRepo:  promptRepo,
		profileRepo: profileRepo,
	}
}

func (uc *PromptUseCase) ListPrompts(ctx context.Context) ([]*domain.Prompt, error) {
	const op = "usecase/prompt/ListPrompts"

	prompts, err := uc.promptRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return prompts, nil
}

func (uc *PromptUseCase) CreatePrompt(ctx context.Context, text string) (*domain.Prompt, error) {
	const op = "usecase/prompt/CreatePrompt"

	text = strings.TrimSpace(text)
	if err := checkText("text", text, maxPromptLength); err != nil {
		return nil, err
	}

	prompt := &domain.Prompt{Text: text, IsActive: true}
	if err := uc.promptRepo.Create(ctx, prompt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).With("op", op).Info("prompt created", "prompt_id", prompt.ID)
	return prompt, nil
}

func (uc *PromptUseCase) SetPromptActive(ctx context.Context, id int, active bool) (*domain.Prompt, error) {
	const op = "usecase/prompt/SetPromptActive"

	prompt, err := uc.promptRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return prompt, nil
}

// AnswerPrompt stores the caller's answer to an active prompt. A profile answers each
// prompt at most once.
func (uc *PromptUseCase) AnswerPrompt(ctx context.Context, accountID, promptID int, response string) (*domain.PromptResponse, error) {
	const op = "usecase/prompt/AnswerPrompt"

	response = strings.TrimSpace(response)
	if err := checkText("response", response, maxResponseLength); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	prompt, err := uc.promptRepo.GetByID(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !prompt.IsActive {
		return nil, domain.NewValidationError("prompt_id", "This prompt is no longer available.")
	}

	resp := &domain.PromptResponse{
		ProfileID: profile.ID,
		PromptID:  prompt.ID,
		Response:  response,
	}
	if err := uc.promptRepo.CreateResponse(ctx, resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

func (uc *PromptUseCase) UpdateResponse(ctx context.Context, accountID, responseID int, response string) (*domain.PromptResponse, error) {
	const op = "usecase/prompt/UpdateResponse"

	response = strings.TrimSpace(response)
	if err := checkText("response", response, maxResponseLength); err != nil {
		return nil, err
	}
	if err := uc.checkOwner(ctx, accountID, responseID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := uc.promptRepo.UpdateResponse(ctx, responseID, response)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (uc *PromptUseCase) DeleteResponse(ctx context.Context, accountID, responseID int) error {
	const op = "usecase/prompt/DeleteResponse"

	if err := uc.checkOwner(ctx, accountID, responseID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := uc.promptRepo.DeleteResponse(ctx, responseID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (uc *PromptUseCase) checkOwner(ctx context.Context, accountID, responseID int) error {
	resp, err := uc.promptRepo.GetResponse(ctx, responseID)
	if err != nil {
		return err
	}
	profile, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	if resp.ProfileID != profile.ID {
		log.From(ctx).Warn("prompt response owned by another profile",
			"account_id", accountID, "response_id", responseID)
		return domain.ErrForbidden
	}
	return nil
}

func checkText(field, text string, limit int) error {
	switch {
	case text == "":
		return domain.NewValidationError(field, "This field may not be blank.")
	case len([]rune(text)) > limit:
		return domain.NewValidationError(field, fmt.Sprintf("Ensure this field has no more than %d characters.", limit))
	}
	return nil
}
