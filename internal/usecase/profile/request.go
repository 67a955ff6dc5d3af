package profile

import "github.com/gdugdh24/topfive-backend/internal/domain"

// UpdateProfileRequest is a partial profile update. Nil fields are left alone; an empty
// string clears an enumerated field.
type UpdateProfileRequest struct {
	Bio            *string `json:"bio" binding:"omitempty,max=500"`
	Location       *string `json:"location" binding:"omitempty,max=100"`
	PhoneNumber    *string `json:"phone_number" binding:"omitempty,max=20"`
	Occupation     *string `json:"occupation" binding:"omitempty,max=100"`
	Goals          *string `json:"goals" binding:"omitempty,max=500"`
	AdditionalInfo *string `json:"additional_info" binding:"omitempty,max=1000"`
	Height         *int    `json:"height" binding:"omitempty,min=50,max=300"`

	Gender          *string   `json:"gender" binding:"omitempty,choice=gender"`
	PreferredGender *string   `json:"preferred_gender" binding:"omitempty,choice=gender"`
	MinPreferredAge *int      `json:"min_preferred_age" binding:"omitempty,min=18,max=100"`
	MaxPreferredAge *int      `json:"max_preferred_age" binding:"omitempty,min=18,max=100"`
	Interests       *[]string `json:"interests" binding:"omitempty,dive,choice=interest"`

	Pronouns           *string `json:"pronouns" binding:"omitempty,choice=pronoun"`
	SexualOrientation  *string `json:"sexual_orientation" binding:"omitempty,choice=sexual_orientation"`
	HighestEducation   *string `json:"highest_education" binding:"omitempty,choice=education"`
	Ethnicity          *string `json:"ethnicity" binding:"omitempty,choice=ethnicity"`
	Religion           *string `json:"religion" binding:"omitempty,choice=religion"`
	PoliticalViews     *string `json:"political_views" binding:"omitempty,choice=political"`
	ExerciseLevel      *string `json:"exercise_level" binding:"omitempty,choice=exercise"`
	Diet               *string `json:"diet" binding:"omitempty,choice=diet"`
	Alcohol            *string `json:"alcohol" binding:"omitempty,choice=alcohol"`
	Cannabis           *string `json:"cannabis" binding:"omitempty,choice=cannabis"`
	BodyType           *string `json:"body_type" binding:"omitempty,choice=body_type"`
	FamilyPlans        *string `json:"family_plans" binding:"omitempty,choice=family_plans"`
	RelationshipGoal   *string `json:"relationship_goal" binding:"omitempty,choice=relationship_goal"`
	LoveLanguage       *string `json:"love_language" binding:"omitempty,choice=love_language"`
	CommunicationStyle *string `json:"communication_style" binding:"omitempty,choice=communication_style"`
	PersonalityType    *string `json:"personality_type" binding:"omitempty,choice=personality_type"`
	SleepPattern       *string `json:"sleep_pattern" binding:"omitempty,choice=sleep_pattern"`
	SocialMediaUsage   *string `json:"social_media_usage" binding:"omitempty,choice=social_media_usage"`
	VaccineStatus      *string `json:"vaccine_status" binding:"omitempty,choice=vaccine_status"`
	ZodiacSign         *string `json:"zodiac_sign" binding:"omitempty,choice=zodiac"`
	PetPreferences     *string `json:"pet_preferences" binding:"omitempty,choice=pet"`

	// PictureURLs is merged into the existing slots by index.
	PictureURLs []domain.PhotoUpdate `json:"picture_urls"`
}

// ReservePhotosRequest names the slots to upload into, either explicitly or as a count
// of the lowest free slots. Exactly one of the two is set.
type ReservePhotosRequest struct {
	PhotoIndexes []int `json:"photo_indexes" binding:"omitempty,max=7"`
	PhotoCount   int   `json:"photo_count" binding:"omitempty,min=1"`
}

func (r *ReservePhotosRequest) validate() error {
	if (len(r.PhotoIndexes) == 0) == (r.PhotoCount == 0) {
		return domain.NewValidationError("photo_indexes", "Provide either photo_indexes or photo_count.")
	}
	return nil
}

func (r *UpdateProfileRequest) apply(p *domain.Profile) {
	setText(&p.Bio, r.Bio)
	setText(&p.Location, r.Location)
	setText(&p.PhoneNumber, r.PhoneNumber)
	setText(&p.Occupation, r.Occupation)
	setText(&p.Goals, r.Goals)
	setText(&p.AdditionalInfo, r.AdditionalInfo)
	if r.Height != nil {
		h := *r.Height
		p.Height = &h
	}
	if r.MinPreferredAge != nil {
		p.MinPreferredAge = *r.MinPreferredAge
	}
	if r.MaxPreferredAge != nil {
		p.MaxPreferredAge = *r.MaxPreferredAge
	}
	if r.Interests != nil {
		p.Interests = append([]string{}, (*r.Interests)...)
	}

	setChoice(&p.Gender, r.Gender)
	setChoice(&p.PreferredGender, r.PreferredGender)
	setChoice(&p.Pronouns, r.Pronouns)
	setChoice(&p.SexualOrientation, r.SexualOrientation)
	setChoice(&p.HighestEducation, r.HighestEducation)
	setChoice(&p.Ethnicity, r.Ethnicity)
	setChoice(&p.Religion, r.Religion)
	setChoice(&p.PoliticalViews, r.PoliticalViews)
	setChoice(&p.ExerciseLevel, r.ExerciseLevel)
	setChoice(&p.Diet, r.Diet)
	setChoice(&p.Alcohol, r.Alcohol)
	setChoice(&p.Cannabis, r.Cannabis)
	setChoice(&p.BodyType, r.BodyType)
	setChoice(&p.FamilyPlans, r.FamilyPlans)
	setChoice(&p.RelationshipGoal, r.RelationshipGoal)
	setChoice(&p.LoveLanguage, r.LoveLanguage)
	setChoice(&p.CommunicationStyle, r.CommunicationStyle)
	setChoice(&p.PersonalityType, r.PersonalityType)
	setChoice(&p.SleepPattern, r.SleepPattern)
	setChoice(&p.SocialMediaUsage, r.SocialMediaUsage)
	setChoice(&p.VaccineStatus, r.VaccineStatus)
	setChoice(&p.ZodiacSign, r.ZodiacSign)
	setChoice(&p.PetPreferences, r.PetPreferences)
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setChoice(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	s := *v
	*dst = &s
}
