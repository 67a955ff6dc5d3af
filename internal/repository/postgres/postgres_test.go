package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Run with GO_TEST_INTEGRATION=1 go test ./internal/repository/postgres -v -count=1

func startPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image: "postgres:16-alpine",
		Env: map[string]string{
			"POSTGRES_USER":     "topfive",
			"POSTGRES_PASSWORD": "topfive",
			"POSTGRES_DB":       "topfive",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &config.DatabaseConfig{
		Host:         host,
		Port:         port.Int(),
		User:         "topfive",
		Password:     "topfive",
		DBName:       "topfive",
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}
	require.NoError(t, database.Migrate(cfg, "../../../migrations", true))

	db, err := database.NewPostgresDB(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func signup(t *testing.T, repo *accountRepository, email, name string, birthdate time.Time) (*domain.Account, *domain.Profile) {
	t.Helper()
	account := &domain.Account{Email: email, FirstName: name, Birthdate: birthdate, IsActive: true}
	require.NoError(t, account.SetPassword("correct horse"))
	profile := domain.NewDefaultProfile(0)
	require.NoError(t, repo.CreateWithProfile(context.Background(), account, profile))
	return account, profile
}

func TestIntegration_Repositories(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	accounts := &accountRepository{db: db}
	profiles := &profileRepository{db: db}
	matches := &matchRepository{db: db}
	likes := &likeRepository{db: db}
	prompts := &promptRepository{db: db}

	ada, adaProfile := signup(t, accounts, "ada@example.com", "Ada", time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC))
	bob, _ := signup(t, accounts, "bob@example.com", "Bob", time.Date(1990, 2, 14, 0, 0, 0, 0, time.UTC))
	cy, _ := signup(t, accounts, "cy@example.com", "Cy", time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("signup creates a default profile", func(t *testing.T) {
		require.NotZero(t, ada.ID)
		require.Equal(t, ada.ID, adaProfile.AccountID)

		got, err := profiles.GetByAccountID(ctx, ada.ID)
		require.NoError(t, err)
		require.Equal(t, domain.MinPreferredAge, got.MinPreferredAge)
		require.Equal(t, domain.MaxPreferredAge, got.MaxPreferredAge)
		require.Empty(t, got.PictureURLs)
		require.NotNil(t, got.Interests)
	})

	t.Run("email is unique", func(t *testing.T) {
		dup := &domain.Account{Email: "ada@example.com", Birthdate: ada.Birthdate, IsActive: true}
		require.ErrorIs(t, accounts.CreateWithProfile(ctx, dup, domain.NewDefaultProfile(0)), domain.ErrEmailTaken)

		bobCopy := *bob
		bobCopy.Email = "ada@example.com"
		require.ErrorIs(t, accounts.Update(ctx, &bobCopy), domain.ErrEmailTaken)
	})

	t.Run("account reads", func(t *testing.T) {
		got, err := accounts.GetByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, bob.ID, got.ID)
		require.True(t, got.CheckPassword("correct horse"))
		require.Equal(t, "1990-02-14", got.Birthdate.Format(time.DateOnly))

		_, err = accounts.GetByID(ctx, 99999)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)

		all, err := accounts.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)

		now := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, accounts.TouchLastLogin(ctx, bob.ID, now))
		got, err = accounts.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastLogin)
		require.WithinDuration(t, now, *got.LastLogin, time.Second)
	})

	t.Run("profile update persists and validates in the caller", func(t *testing.T) {
		updated, err := profiles.Update(ctx, bob.ID, func(p *domain.Profile) error {
			p.Gender = strPtr("male")
			p.Bio = "Runner"
			p.Interests = []string{"hiking", "music"}
			p.PictureURLs = domain.PhotoSlots{"", "https://cdn.example.com/2/1?v=1"}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, "Runner", updated.Bio)

		got, err := profiles.GetByAccountID(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "male", *got.Gender)
		require.Equal(t, []string{"hiking", "music"}, got.Interests)
		require.Equal(t, domain.PhotoSlots{"", "https://cdn.example.com/2/1?v=1"}, got.PictureURLs)

		_, err = profiles.Update(ctx, bob.ID, func(p *domain.Profile) error {
			p.Bio = "discarded"
			return domain.ErrCapacityExceeded
		})
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
		got, err = profiles.GetByAccountID(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "Runner", got.Bio)

		_, err = profiles.Update(ctx, 99999, func(*domain.Profile) error { return nil })
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("lock reads the current profile", func(t *testing.T) {
		var seen *domain.Profile
		require.NoError(t, profiles.Lock(ctx, bob.ID, func(p *domain.Profile) error {
			seen = p
			return nil
		}))
		require.Equal(t, "Runner", seen.Bio)
	})

	t.Run("candidates honour gender and the birthdate window", func(t *testing.T) {
		_, err := profiles.Update(ctx, cy.ID, func(p *domain.Profile) error {
			p.Gender = strPtr("male")
			return nil
		})
		require.NoError(t, err)

		today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
		minB, maxB := domain.BirthdateWindow(today, 25, 40)
		got, err := profiles.FindCandidates(ctx, ada.ID, "male", minB, maxB)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, bob.ID, got[0].AccountID)
		require.Equal(t, "Bob", got[0].FirstName)
		require.Equal(t, "https://cdn.example.com/2/1?v=1", *got[0].Card().PictureURL)

		minB, maxB = domain.BirthdateWindow(today, 18, 100)
		got, err = profiles.FindCandidates(ctx, bob.ID, "male", minB, maxB)
		require.NoError(t, err)
		require.Len(t, got, 1, "the requester is never a candidate")
		require.Equal(t, cy.ID, got[0].AccountID)

		got, err = profiles.FindCandidates(ctx, ada.ID, "female", minB, maxB)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("candidates by id", func(t *testing.T) {
		got, err := profiles.CandidatesByIDs(ctx, []int{cy.ID, bob.ID, 99999})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, bob.ID, got[0].AccountID)
		require.Equal(t, cy.ID, got[1].AccountID)

		got, err = profiles.CandidatesByIDs(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("matches are stored normalised and unique", func(t *testing.T) {
		m := &domain.Match{User1ID: bob.ID, User2ID: ada.ID}
		require.NoError(t, matches.Create(ctx, m))
		require.Equal(t, ada.ID, m.User1ID)
		require.Equal(t, bob.ID, m.User2ID)

		require.ErrorIs(t, matches.Create(ctx, domain.NewMatch(ada.ID, bob.ID)), domain.ErrMatchExists)

		got, err := matches.GetByUsers(ctx, bob.ID, ada.ID)
		require.NoError(t, err)
		require.Equal(t, m.ID, got.ID)

		_, err = matches.GetByUsers(ctx, ada.ID, cy.ID)
		require.ErrorIs(t, err, domain.ErrMatchNotFound)

		list, err := matches.GetUserMatches(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("likes are idempotent", func(t *testing.T) {
		first := &domain.Like{FromAccountID: cy.ID, ToAccountID: ada.ID}
		require.NoError(t, likes.Create(ctx, first))
		again := &domain.Like{FromAccountID: cy.ID, ToAccountID: ada.ID}
		require.NoError(t, likes.Create(ctx, again))
		require.Equal(t, first.ID, again.ID)

		ok, err := likes.Exists(ctx, cy.ID, ada.ID)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = likes.Exists(ctx, ada.ID, cy.ID)
		require.NoError(t, err)
		require.False(t, ok)

		require.ErrorIs(t, likes.Create(ctx, &domain.Like{FromAccountID: cy.ID, ToAccountID: 99999}), domain.ErrAccountNotFound)
	})

	t.Run("prompts and responses", func(t *testing.T) {
		p := &domain.Prompt{Text: "Best trip?", IsActive: true}
		require.NoError(t, prompts.Create(ctx, p))
		var verr *domain.ValidationError
		require.ErrorAs(t, prompts.Create(ctx, &domain.Prompt{Text: "Best trip?", IsActive: true}), &verr)

		resp := &domain.PromptResponse{ProfileID: adaProfile.ID, PromptID: p.ID, Response: "Lisbon"}
		require.NoError(t, prompts.CreateResponse(ctx, resp))
		require.Equal(t, "Best trip?", resp.PromptText)

		dup := &domain.PromptResponse{ProfileID: adaProfile.ID, PromptID: p.ID, Response: "Porto"}
		require.ErrorIs(t, prompts.CreateResponse(ctx, dup), domain.ErrPromptAlreadyAnswered)

		missing := &domain.PromptResponse{ProfileID: adaProfile.ID, PromptID: 99999, Response: "?"}
		require.ErrorIs(t, prompts.CreateResponse(ctx, missing), domain.ErrPromptNotFound)

		updated, err := prompts.UpdateResponse(ctx, resp.ID, "Kyoto")
		require.NoError(t, err)
		require.Equal(t, "Kyoto", updated.Response)

		list, err := prompts.ListResponses(ctx, adaProfile.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		inactive, err := prompts.SetActive(ctx, p.ID, false)
		require.NoError(t, err)
		require.False(t, inactive.IsActive)
		active, err := prompts.ListActive(ctx)
		require.NoError(t, err)
		require.Empty(t, active)

		require.NoError(t, prompts.DeleteResponse(ctx, resp.ID))
		require.ErrorIs(t, prompts.DeleteResponse(ctx, resp.ID), domain.ErrPromptResponseNotFound)
	})

	t.Run("deleting an account cascades", func(t *testing.T) {
		require.NoError(t, accounts.Delete(ctx, bob.ID))

		_, err := profiles.GetByAccountID(ctx, bob.ID)
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
		_, err = matches.GetByUsers(ctx, ada.ID, bob.ID)
		require.ErrorIs(t, err, domain.ErrMatchNotFound)

		require.ErrorIs(t, accounts.Delete(ctx, bob.ID), domain.ErrAccountNotFound)
	})
}
