package domain

import (
	"fmt"
	"time"
)

const (
	MinPreferredAge = 18
	MaxPreferredAge = 100
)

type Profile struct {
	ID                 int              `json:"id" db:"id"`
	AccountID          int              `json:"user_id" db:"account_id"`
	Bio                string           `json:"bio" db:"bio"`
	Location           string           `json:"location" db:"location"`
	PhoneNumber        string           `json:"phone_number" db:"phone_number"`
	Occupation         string           `json:"occupation" db:"occupation"`
	Goals              string           `json:"goals" db:"goals"`
	AdditionalInfo     string           `json:"additional_info" db:"additional_info"`
	Height             *int             `json:"height" db:"height"`
	Gender             *string          `json:"gender" db:"gender"`
	PreferredGender    *string          `json:"preferred_gender" db:"preferred_gender"`
	MinPreferredAge    int              `json:"min_preferred_age" db:"min_preferred_age"`
	MaxPreferredAge    int              `json:"max_preferred_age" db:"max_preferred_age"`
	Interests          []string         `json:"interests" db:"interests"`
	Pronouns           *string          `json:"pronouns" db:"pronouns"`
	SexualOrientation  *string          `json:"sexual_orientation" db:"sexual_orientation"`
	HighestEducation   *string          `json:"highest_education" db:"highest_education"`
	Ethnicity          *string          `json:"ethnicity" db:"ethnicity"`
	Religion           *string          `json:"religion" db:"religion"`
	PoliticalViews     *string          `json:"political_views" db:"political_views"`
	ExerciseLevel      *string          `json:"exercise_level" db:"exercise_level"`
	Diet               *string          `json:"diet" db:"diet"`
	Alcohol            *string          `json:"alcohol" db:"alcohol"`
	Cannabis           *string          `json:"cannabis" db:"cannabis"`
	BodyType           *string          `json:"body_type" db:"body_type"`
	FamilyPlans        *string          `json:"family_plans" db:"family_plans"`
	RelationshipGoal   *string          `json:"relationship_goal" db:"relationship_goal"`
	LoveLanguage       *string          `json:"love_language" db:"love_language"`
	CommunicationStyle *string          `json:"communication_style" db:"communication_style"`
	PersonalityType    *string          `json:"personality_type" db:"personality_type"`
	SleepPattern       *string          `json:"sleep_pattern" db:"sleep_pattern"`
	SocialMediaUsage   *string          `json:"social_media_usage" db:"social_media_usage"`
	VaccineStatus      *string          `json:"vaccine_status" db:"vaccine_status"`
	ZodiacSign         *string          `json:"zodiac_sign" db:"zodiac_sign"`
	PetPreferences     *string          `json:"pet_preferences" db:"pet_preferences"`
	PictureURLs        PhotoSlots       `json:"picture_urls" db:"picture_urls"`
	PromptResponses    []PromptResponse `json:"prompt_responses" db:"-"`
	CreatedAt          time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at" db:"updated_at"`
}

// NewDefaultProfile is the profile every account starts with.
func NewDefaultProfile(accountID int) *Profile {
	return &Profile{
		AccountID:       accountID,
		MinPreferredAge: MinPreferredAge,
		MaxPreferredAge: MaxPreferredAge,
		Interests:       []string{},
		PictureURLs:     PhotoSlots{},
	}
}

type choiceField struct {
	name  string
	kind  ChoiceKind
	value *string
}

func (p *Profile) choiceFields() []choiceField {
	return []choiceField{
		{"gender", ChoiceGender, p.Gender},
		{"preferred_gender", ChoiceGender, p.PreferredGender},
		{"pronouns", ChoicePronoun, p.Pronouns},
		{"sexual_orientation", ChoiceSexualOrientation, p.SexualOrientation},
		{"highest_education", ChoiceEducation, p.HighestEducation},
		{"ethnicity", ChoiceEthnicity, p.Ethnicity},
		{"religion", ChoiceReligion, p.Religion},
		{"political_views", ChoicePolitical, p.PoliticalViews},
		{"exercise_level", ChoiceExercise, p.ExerciseLevel},
		{"diet", ChoiceDiet, p.Diet},
		{"alcohol", ChoiceAlcohol, p.Alcohol},
		{"cannabis", ChoiceCannabis, p.Cannabis},
		{"body_type", ChoiceBodyType, p.BodyType},
		{"family_plans", ChoiceFamilyPlans, p.FamilyPlans},
		{"relationship_goal", ChoiceRelationshipGoal, p.RelationshipGoal},
		{"love_language", ChoiceLoveLanguage, p.LoveLanguage},
		{"communication_style", ChoiceCommunicationStyle, p.CommunicationStyle},
		{"personality_type", ChoicePersonalityType, p.PersonalityType},
		{"sleep_pattern", ChoiceSleepPattern, p.SleepPattern},
		{"social_media_usage", ChoiceSocialMediaUsage, p.SocialMediaUsage},
		{"vaccine_status", ChoiceVaccineStatus, p.VaccineStatus},
		{"zodiac_sign", ChoiceZodiac, p.ZodiacSign},
		{"pet_preferences", ChoicePet, p.PetPreferences},
	}
}

// Validate runs the full invariant check that precedes every save.
func (p *Profile) Validate() error {
	verr := &ValidationError{}

	if p.MinPreferredAge < MinPreferredAge || p.MinPreferredAge > MaxPreferredAge {
		verr.Add("min_preferred_age", fmt.Sprintf("Ensure this value is between %d and %d.", MinPreferredAge, MaxPreferredAge))
	}
	if p.MaxPreferredAge < MinPreferredAge || p.MaxPreferredAge > MaxPreferredAge {
		verr.Add("max_preferred_age", fmt.Sprintf("Ensure this value is between %d and %d.", MinPreferredAge, MaxPreferredAge))
	}
	if p.MinPreferredAge > p.MaxPreferredAge {
		verr.Add("max_preferred_age", "Must be greater than or equal to min_preferred_age.")
	}

	for _, f := range p.choiceFields() {
		if f.value != nil && !IsValidChoice(f.kind, *f.value) {
			verr.Add(f.name, fmt.Sprintf("%q is not a valid choice.", *f.value))
		}
	}

	seen := make(map[string]bool, len(p.Interests))
	for _, in := range p.Interests {
		if !IsValidChoice(ChoiceInterest, in) {
			verr.Add("interests", fmt.Sprintf("%q is not a valid choice.", in))
			continue
		}
		if seen[in] {
			verr.Add("interests", fmt.Sprintf("%q is listed more than once.", in))
		}
		seen[in] = true
	}

	if p.Height != nil && (*p.Height < 50 || *p.Height > 300) {
		verr.Add("height", "Ensure this value is between 50 and 300.")
	}

	if n := len(p.PictureURLs); n < MinPhotos || n > MaxPhotos {
		verr.Add("picture_urls", fmt.Sprintf("Ensure this list has between %d and %d items.", MinPhotos, MaxPhotos))
	}

	return verr.OrNil()
}
