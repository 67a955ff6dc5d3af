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

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// profileRow overrides the array columns with scannable types.
type profileRow struct {
	domain.Profile
	Interests   pq.StringArray `db:"interests"`
	PictureURLs pq.StringArray `db:"picture_urls"`
}

func (r profileRow) toDomain() *domain.Profile {
	p := r.Profile
	p.Interests = nonNil(r.Interests)
	p.PictureURLs = domain.PhotoSlots(nonNil(r.PictureURLs))
	return &p
}

const profileColumns = `id, account_id, bio, location, phone_number, occupation, goals, additional_info,
	height, gender, preferred_gender, min_preferred_age, max_preferred_age, interests,
	pronouns, sexual_orientation, highest_education, ethnicity, religion, political_views,
	exercise_level, diet, alcohol, cannabis, body_type, family_plans, relationship_goal,
	love_language, communication_style, personality_type, sleep_pattern, social_media_usage,
	vaccine_status, zodiac_sign, pet_preferences, picture_urls, created_at, updated_at`

func (r *profileRepository) GetByAccountID(ctx context.Context, accountID int) (*domain.Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1`
	if err := r.db.GetContext(ctx, &row, query, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func lockProfile(ctx context.Context, tx *sqlx.Tx, accountID int) (*domain.Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &row, query, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *profileRepository) Lock(ctx context.Context, accountID int, fn func(p *domain.Profile) error) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		profile, err := lockProfile(ctx, tx, accountID)
		if err != nil {
			return err
		}
		return fn(profile)
	})
}

func (r *profileRepository) Update(ctx context.Context, accountID int, mutate func(p *domain.Profile) error) (*domain.Profile, error) {
	var updated *domain.Profile
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		profile, err := lockProfile(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if err := mutate(profile); err != nil {
			return err
		}

		query := `
			UPDATE profiles
			SET bio = $1, location = $2, phone_number = $3, occupation = $4, goals = $5,
			    additional_info = $6, height = $7, gender = $8, preferred_gender = $9,
			    min_preferred_age = $10, max_preferred_age = $11, interests = $12,
			    pronouns = $13, sexual_orientation = $14, highest_education = $15,
			    ethnicity = $16, religion = $17, political_views = $18, exercise_level = $19,
			    diet = $20, alcohol = $21, cannabis = $22, body_type = $23, family_plans = $24,
			    relationship_goal = $25, love_language = $26, communication_style = $27,
			    personality_type = $28, sleep_pattern = $29, social_media_usage = $30,
			    vaccine_status = $31, zodiac_sign = $32, pet_preferences = $33,
			    picture_urls = $34, updated_at = CURRENT_TIMESTAMP
			WHERE id = $35
			RETURNING updated_at
		`
		err = tx.QueryRowContext(
			ctx, query,
			profile.Bio, profile.Location, profile.PhoneNumber, profile.Occupation, profile.Goals,
			profile.AdditionalInfo, profile.Height, profile.Gender, profile.PreferredGender,
			profile.MinPreferredAge, profile.MaxPreferredAge, pq.Array(nonNil(profile.Interests)),
			profile.Pronouns, profile.SexualOrientation, profile.HighestEducation,
			profile.Ethnicity, profile.Religion, profile.PoliticalViews, profile.ExerciseLevel,
			profile.Diet, profile.Alcohol, profile.Cannabis, profile.BodyType, profile.FamilyPlans,
			profile.RelationshipGoal, profile.LoveLanguage, profile.CommunicationStyle,
			profile.PersonalityType, profile.SleepPattern, profile.SocialMediaUsage,
			profile.VaccineStatus, profile.ZodiacSign, profile.PetPreferences,
			pq.Array(nonNil(profile.PictureURLs)),
			profile.ID,
		).Scan(&profile.UpdatedAt)
		if err != nil {
			return err
		}
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type candidateRow struct {
	AccountID   int            `db:"account_id"`
	FirstName   string         `db:"first_name"`
	PictureURLs pq.StringArray `db:"picture_urls"`
}

func toCandidates(rows []candidateRow) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Candidate{
			AccountID:   row.AccountID,
			FirstName:   row.FirstName,
			PictureURLs: domain.PhotoSlots(nonNil(row.PictureURLs)),
		})
	}
	return out
}

func (r *profileRepository) FindCandidates(ctx context.Context, excludeAccountID int, gender string, minBirthdate, maxBirthdate time.Time) ([]domain.Candidate, error) {
	var rows []candidateRow
	query := `
		SELECT a.id AS account_id, a.first_name, p.picture_urls
		FROM accounts a
		JOIN profiles p ON p.account_id = a.id
		WHERE p.gender = $1
		  AND a.birthdate BETWEEN $2::date AND $3::date
		  AND a.id <> $4
		ORDER BY a.id
	`
	err := r.db.SelectContext(
		ctx, &rows, query,
		gender, minBirthdate.Format(time.DateOnly), maxBirthdate.Format(time.DateOnly), excludeAccountID,
	)
	if err != nil {
		return nil, err
	}
	return toCandidates(rows), nil
}

func (r *profileRepository) CandidatesByIDs(ctx context.Context, accountIDs []int) ([]domain.Candidate, error) {
	if len(accountIDs) == 0 {
		return []domain.Candidate{}, nil
	}

	ids := make([]int64, len(accountIDs))
	for i, id := range accountIDs {
		ids[i] = int64(id)
	}

	var rows []candidateRow
	query := `
		SELECT a.id AS account_id, a.first_name, COALESCE(p.picture_urls, '{}') AS picture_urls
		FROM accounts a
		LEFT JOIN profiles p ON p.account_id = a.id
		WHERE a.id = ANY($1)
		ORDER BY a.id
	`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	return toCandidates(rows), nil
}
