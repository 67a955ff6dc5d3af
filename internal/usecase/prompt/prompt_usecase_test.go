package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPromptUC(t *testing.T) (*PromptUseCase, *mocks.MockPromptRepository, *mocks.MockProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prompts := mocks.NewMockPromptRepository(ctrl)
	profiles := mocks.NewMockProfileRepository(ctrl)
	return NewPromptUseCase(prompts, profiles), prompts, profiles
}

func profileWithID(accountID, id int) *domain.Profile {
	p := domain.NewDefaultProfile(accountID)
	p.ID = id
	return p
}

func TestCreatePrompt(t *testing.T) {
	t.Parallel()

	uc, prompts, _ := newPromptUC(t)
	prompts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Prompt) error {
		require.Equal(t, "Two truths and a lie", p.Text)
		require.True(t, p.IsActive)
		p.ID = 1
		return nil
	})

	p, err := uc.CreatePrompt(context.Background(), "  Two truths and a lie ")
	require.NoError(t, err)
	require.Equal(t, 1, p.ID)

	_, err = uc.CreatePrompt(context.Background(), "   ")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestAnswerPrompt(t *testing.T) {
	t.Parallel()

	t.Run("stores answer against caller's profile", func(t *testing.T) {
		uc, prompts, profiles := newPromptUC(t)
		profiles.EXPECT().GetByAccountID(gomock.Any(), 4).Return(profileWithID(4, 40), nil)
		prompts.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Prompt{ID: 2, Text: "Q", IsActive: true}, nil)
		prompts.EXPECT().CreateResponse(gomock.Any(), &domain.PromptResponse{ProfileID: 40, PromptID: 2, Response: "A"}).Return(nil)

		resp, err := uc.AnswerPrompt(context.Background(), 4, 2, "A")
		require.NoError(t, err)
		require.Equal(t, 40, resp.ProfileID)
	})

	t.Run("inactive prompt", func(t *testing.T) {
		uc, prompts, profiles := newPromptUC(t)
		profiles.EXPECT().GetByAccountID(gomock.Any(), 4).Return(profileWithID(4, 40), nil)
		prompts.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Prompt{ID: 2, IsActive: false}, nil)

		_, err := uc.AnswerPrompt(context.Background(), 4, 2, "A")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("second answer conflicts", func(t *testing.T) {
		uc, prompts, profiles := newPromptUC(t)
		profiles.EXPECT().GetByAccountID(gomock.Any(), 4).Return(profileWithID(4, 40), nil)
		prompts.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Prompt{ID: 2, IsActive: true}, nil)
		prompts.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).Return(domain.ErrPromptAlreadyAnswered)

		_, err := uc.AnswerPrompt(context.Background(), 4, 2, "A")
		require.ErrorIs(t, err, domain.ErrPromptAlreadyAnswered)
	})

	t.Run("too long", func(t *testing.T) {
		uc, _, _ := newPromptUC(t)
		_, err := uc.AnswerPrompt(context.Background(), 4, 2, strings.Repeat("x", maxResponseLength+1))
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestUpdateAndDeleteResponse_OwnerOnly(t *testing.T) {
	t.Parallel()

	uc, prompts, profiles := newPromptUC(t)

	prompts.EXPECT().GetResponse(gomock.Any(), 9).Return(&domain.PromptResponse{ID: 9, ProfileID: 40}, nil).Times(2)
	profiles.EXPECT().GetByAccountID(gomock.Any(), 5).Return(profileWithID(5, 50), nil).Times(2)
	prompts.EXPECT().UpdateResponse(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	prompts.EXPECT().DeleteResponse(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdateResponse(context.Background(), 5, 9, "mine now")
	require.ErrorIs(t, err, domain.ErrForbidden)
	require.ErrorIs(t, uc.DeleteResponse(context.Background(), 5, 9), domain.ErrForbidden)
}

func TestUpdateResponse_Owner(t *testing.T) {
	t.Parallel()

	uc, prompts, profiles := newPromptUC(t)
	prompts.EXPECT().GetResponse(gomock.Any(), 9).Return(&domain.PromptResponse{ID: 9, ProfileID: 40}, nil)
	profiles.EXPECT().GetByAccountID(gomock.Any(), 4).Return(profileWithID(4, 40), nil)
	prompts.EXPECT().UpdateResponse(gomock.Any(), 9, "new answer").
		Return(&domain.PromptResponse{ID: 9, ProfileID: 40, Response: "new answer"}, nil)

	resp, err := uc.UpdateResponse(context.Background(), 4, 9, "new answer")
	require.NoError(t, err)
	require.Equal(t, "new answer", resp.Response)
}

func TestDeleteResponse_Missing(t *testing.T) {
	t.Parallel()

	uc, prompts, _ := newPromptUC(t)
	prompts.EXPECT().GetResponse(gomock.Any(), 9).Return(nil, domain.ErrPromptResponseNotFound)

	require.ErrorIs(t, uc.DeleteResponse(context.Background(), 4, 9), domain.ErrPromptResponseNotFound)
}
