package domain

// Choice is one allowed value of an enumerated profile field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoiceKind names a vocabulary in the registry.
type ChoiceKind string

const (
	ChoiceAlcohol            ChoiceKind = "alcohol"
	ChoiceBodyType           ChoiceKind = "body_type"
	ChoiceCannabis           ChoiceKind = "cannabis"
	ChoiceCommunicationStyle ChoiceKind = "communication_style"
	ChoiceDiet               ChoiceKind = "diet"
	ChoiceEducation          ChoiceKind = "education"
	ChoiceEthnicity          ChoiceKind = "ethnicity"
	ChoiceExercise           ChoiceKind = "exercise"
	ChoiceFamilyPlans        ChoiceKind = "family_plans"
	ChoiceGender             ChoiceKind = "gender"
	ChoiceInterest           ChoiceKind = "interest"
	ChoiceLoveLanguage       ChoiceKind = "love_language"
	ChoicePersonalityType    ChoiceKind = "personality_type"
	ChoicePet                ChoiceKind = "pet"
	ChoicePolitical          ChoiceKind = "political"
	ChoicePronoun            ChoiceKind = "pronoun"
	ChoiceRelationshipGoal   ChoiceKind = "relationship_goal"
	ChoiceReligion           ChoiceKind = "religion"
	ChoiceSexualOrientation  ChoiceKind = "sexual_orientation"
	ChoiceSleepPattern       ChoiceKind = "sleep_pattern"
	ChoiceSocialMediaUsage   ChoiceKind = "social_media_usage"
	ChoiceVaccineStatus      ChoiceKind = "vaccine_status"
	ChoiceZodiac             ChoiceKind = "zodiac"
)

const prefNotToSay = "prefer_not_to_say"

var choiceRegistry = map[ChoiceKind][]Choice{
	ChoiceAlcohol: {
		{"never", "Never"}, {"rarely", "Rarely"}, {"socially", "Socially"},
		{"regularly", "Regularly"}, {prefNotToSay, "Prefer not to say"},
	},
	ChoiceBodyType: {
		{"athletic", "Athletic"}, {"muscular", "Muscular"}, {"average", "Average"}, {"slim", "Slim"},
		{"curvy", "Curvy"}, {"plus_size", "Plus Size"}, {prefNotToSay, "Prefer not to say"},
	},
	ChoiceCannabis: {
		{"never", "Never"}, {"occasionally", "Occasionally"}, {"regularly", "Regularly"},
		{prefNotToSay, "Prefer not to say"},
	},
	ChoiceCommunicationStyle: {
		{"in_person", "In Person"}, {"phone_calls", "Phone Calls"}, {"video_calls", "Video Calls"},
		{"texting", "Texting"}, {"mixed", "Mix of Everything"},
	},
	ChoiceDiet: {
		{"omnivore", "Omnivore"}, {"vegetarian", "Vegetarian"}, {"vegan", "Vegan"},
		{"pescatarian", "Pescatarian"}, {"keto", "Keto"}, {"gluten_free", "Gluten-Free"},
		{"kosher", "Kosher"}, {"halal", "Halal"}, {"other", "Other"},
	},
	ChoiceEducation: {
		{"high_school", "High School"}, {"trade_school", "Trade School"},
		{"associate", "Associate Degree"}, {"bachelor", "Bachelor's Degree"},
		{"master", "Master's Degree"}, {"doctorate", "Doctorate"}, {"other", "Other"},
	},
	ChoiceEthnicity: {
		{"asian", "Asian"}, {"black", "Black/African"}, {"hispanic", "Hispanic/Latino"},
		{"middle_eastern", "Middle Eastern"}, {"native_american", "Native American"},
		{"pacific_islander", "Pacific Islander"}, {"white", "White/Caucasian"},
		{"multiracial", "Multiracial"}, {"other", "Other"},
	},
	ChoiceExercise: {
		{"daily", "Daily"}, {"often", "Often"}, {"sometimes", "Sometimes"}, {"rarely", "Rarely"},
		{"never", "Never"},
	},
	ChoiceFamilyPlans: {
		{"no_children", "I don't have children"},
		{"have_and_want_more", "I have children and want more"},
		{"have_and_dont_want_more", "I have children and don't want more"},
		{"want_children", "I want children"},
		{"cannot_have_children", "I cannot have children"},
		{"dont_want_children", "I don't want children"},
		{"undecided", "I'm undecided about having children"},
	},
	ChoiceGender: {
		{"male", "Male"}, {"female", "Female"}, {"non-binary", "Non-Binary"},
	},
	ChoiceInterest: {
		{"art_culture", "Art & Culture"}, {"books", "Reading & Books"},
		{"travel", "Travel & Adventure"}, {"cooking", "Cooking & Food"}, {"dance", "Dancing"},
		{"fashion", "Fashion"}, {"fitness", "Fitness & Health"}, {"gaming", "Gaming"},
		{"gardening", "Gardening"}, {"hiking", "Hiking"}, {"movies", "Movies & TV"},
		{"music", "Music"}, {"pets", "Pets & Animals"}, {"photography", "Photography"},
		{"sports", "Sports"}, {"tech", "Technology"}, {"writing", "Writing"},
	},
	ChoiceLoveLanguage: {
		{"words", "Words of Affirmation"}, {"acts", "Acts of Service"},
		{"gifts", "Receiving Gifts"}, {"time", "Quality Time"}, {"touch", "Physical Touch"},
	},
	ChoicePersonalityType: {
		{"INTJ", "INTJ"}, {"INTP", "INTP"}, {"ENTJ", "ENTJ"}, {"ENTP", "ENTP"},
		{"INFJ", "INFJ"}, {"INFP", "INFP"}, {"ENFJ", "ENFJ"}, {"ENFP", "ENFP"},
		{"ISTJ", "ISTJ"}, {"ISFJ", "ISFJ"}, {"ESTJ", "ESTJ"}, {"ESFJ", "ESFJ"},
		{"ISTP", "ISTP"}, {"ISFP", "ISFP"}, {"ESTP", "ESTP"}, {"ESFP", "ESFP"},
		{"unknown", "Don't Know"},
	},
	ChoicePet: {
		{"dogs", "Dogs"}, {"cats", "Cats"}, {"birds", "Birds"}, {"fish", "Fish"},
		{"reptiles", "Reptiles"}, {"small_animals", "Small Animals"},
		{"multiple", "Multiple Types"}, {"none", "None"}, {"allergic", "Allergic"},
		{"dislike", "Dislike"},
	},
	ChoicePolitical: {
		{"liberal", "Liberal"}, {"moderate", "Moderate"}, {"conservative", "Conservative"},
		{"apolitical", "Apolitical"}, {"other", "Other"},
	},
	ChoicePronoun: {
		{"he_him", "He/Him"}, {"she_her", "She/Her"}, {"they_them", "They/Them"},
		{"he_they", "He/They"}, {"she_they", "She/They"}, {"ze_zir", "Ze/Zir"},
		{"ze_hir", "Ze/Hir"}, {"xe_xem", "Xe/Xem"}, {"any", "Any Pronouns"},
		{"other", "Other"}, {prefNotToSay, "Prefer not to say"},
	},
	ChoiceRelationshipGoal: {
		{"long_term", "Long-term Relationship"}, {"short_term", "Short-term Relationship"},
		{"short_open_to_long", "Short-term, Open to Long-term"}, {"casual", "Casual Dating"},
		{"friends", "Friends First"}, {"not_sure", "Not Sure Yet"},
	},
	ChoiceReligion: {
		{"christianity", "Christianity"}, {"islam", "Islam"}, {"judaism", "Judaism"},
		{"hinduism", "Hinduism"}, {"buddhism", "Buddhism"}, {"sikhism", "Sikhism"},
		{"spiritual", "Spiritual but not religious"}, {"agnostic", "Agnostic"},
		{"atheist", "Atheist"}, {"other", "Other"}, {prefNotToSay, "Prefer not to say"},
	},
	ChoiceSexualOrientation: {
		{"straight", "Straight/Heterosexual"}, {"gay", "Gay"}, {"lesbian", "Lesbian"},
		{"bisexual", "Bisexual"}, {"pansexual", "Pansexual"}, {"demisexual", "Demisexual"},
		{"questioning", "Questioning"}, {"asexual", "Asexual"}, {"queer", "Queer"},
		{"other", "Other"},
	},
	ChoiceSleepPattern: {
		{"early_bird", "Early Bird"}, {"night_owl", "Night Owl"},
		{"regular", "Regular Schedule"}, {"irregular", "Irregular Schedule"},
	},
	ChoiceSocialMediaUsage: {
		{"very_active", "Very Active"}, {"moderate", "Moderate"}, {"minimal", "Minimal"},
		{"none", "No Social Media"},
	},
	ChoiceVaccineStatus: {
		{"vaccinated", "Vaccinated"}, {"not_vaccinated", "Not Vaccinated"},
		{prefNotToSay, "Prefer not to say"},
	},
	ChoiceZodiac: {
		{"aries", "Aries"}, {"taurus", "Taurus"}, {"gemini", "Gemini"}, {"cancer", "Cancer"},
		{"leo", "Leo"}, {"virgo", "Virgo"}, {"libra", "Libra"}, {"scorpio", "Scorpio"},
		{"sagittarius", "Sagittarius"}, {"capricorn", "Capricorn"}, {"aquarius", "Aquarius"},
		{"pisces", "Pisces"},
	},
}

// IsValidChoice reports whether value belongs to the vocabulary of kind.
// Unknown kinds never validate.
func IsValidChoice(kind ChoiceKind, value string) bool {
	for _, c := range choiceRegistry[kind] {
		if c.Value == value {
			return true
		}
	}
	return false
}

// HasChoiceKind reports whether kind is registered.
func HasChoiceKind(kind ChoiceKind) bool {
	_, ok := choiceRegistry[kind]
	return ok
}

// AllChoices returns a copy of the registry keyed by vocabulary name.
func AllChoices() map[ChoiceKind][]Choice {
	out := make(map[ChoiceKind][]Choice, len(choiceRegistry))
	for k, v := range choiceRegistry {
		out[k] = append([]Choice(nil), v...)
	}
	return out
}
