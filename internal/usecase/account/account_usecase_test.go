package account

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountUC(t *testing.T) (*AccountUseCase, *mocks.MockAccountRepository, *mocks.MockTokenRevoker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	revoker := mocks.NewMockTokenRevoker(ctrl)
	return NewAccountUseCase(repo, revoker), repo, revoker
}

func ptr[T any](v T) *T { return &v }

func TestDeleteUser_NonOwnerIsForbiddenAndAccountSurvives(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newAccountUC(t)
	actor := &domain.Account{ID: 1, IsActive: true}

	repo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Account{ID: 2, IsActive: true}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := uc.DeleteUser(context.Background(), actor, 2, "")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteUser_SelfWithTokenRevokesFirst(t *testing.T) {
	t.Parallel()

	uc, repo, revoker := newAccountUC(t)
	actor := &domain.Account{ID: 3, IsActive: true}

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), 3).Return(actor, nil),
		revoker.EXPECT().RevokeRefresh(gomock.Any(), "refresh-token").Return(nil),
		repo.EXPECT().Delete(gomock.Any(), 3).Return(nil),
	)

	require.NoError(t, uc.DeleteUser(context.Background(), actor, 3, "refresh-token"))
}

func TestDeleteUser_BadTokenAbortsDeletion(t *testing.T) {
	t.Parallel()

	uc, repo, revoker := newAccountUC(t)
	actor := &domain.Account{ID: 3, IsActive: true}

	repo.EXPECT().GetByID(gomock.Any(), 3).Return(actor, nil)
	revoker.EXPECT().RevokeRefresh(gomock.Any(), "stale").Return(domain.ErrInvalidToken)

	err := uc.DeleteUser(context.Background(), actor, 3, "stale")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestDeleteUser_StaffAndMissingTarget(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newAccountUC(t)
	staff := &domain.Account{ID: 1, IsStaff: true, IsActive: true}

	repo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.Account{ID: 5}, nil)
	repo.EXPECT().Delete(gomock.Any(), 5).Return(nil)
	require.NoError(t, uc.DeleteUser(context.Background(), staff, 5, ""))

	repo.EXPECT().GetByID(gomock.Any(), 6).Return(nil, domain.ErrAccountNotFound)
	require.ErrorIs(t, uc.DeleteUser(context.Background(), staff, 6, ""), domain.ErrAccountNotFound)
}

func TestUpdateUser_PartialAndNormalised(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newAccountUC(t)
	existing := &domain.Account{
		ID:        4,
		Email:     "old@example.com",
		FirstName: "Old",
		LastName:  "Name",
		Birthdate: time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	repo.EXPECT().GetByID(gomock.Any(), 4).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
		require.Equal(t, "new@example.com", a.Email)
		require.Equal(t, "New", a.FirstName)
		require.Equal(t, "Name", a.LastName)
		return nil
	})

	view, err := uc.UpdateUser(context.Background(), 4, UpdateUserInput{
		Email:     ptr(" NEW@example.com"),
		FirstName: ptr("New"),
	})
	require.NoError(t, err)
	require.Equal(t, "1990-01-02", view.Birthdate)
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newAccountUC(t)
	repo.EXPECT().GetByID(gomock.Any(), 4).Return(&domain.Account{ID: 4}, nil)

	_, err := uc.UpdateUser(context.Background(), 4, UpdateUserInput{Email: ptr("nope")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "email")
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newAccountUC(t)
	repo.EXPECT().List(gomock.Any()).Return([]*domain.Account{{ID: 1}, {ID: 2}}, nil)

	views, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, 2, views[1].ID)
}
