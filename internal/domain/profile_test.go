package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validationFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestProfileValidate_DefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewDefaultProfile(1).Validate())
}

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(p *Profile)
		field  string
	}{
		{"min age below floor", func(p *Profile) { p.MinPreferredAge = 17 }, "min_preferred_age"},
		{"max age above ceiling", func(p *Profile) { p.MaxPreferredAge = 101 }, "max_preferred_age"},
		{"inverted range", func(p *Profile) { p.MinPreferredAge, p.MaxPreferredAge = 40, 30 }, "max_preferred_age"},
		{"unknown gender", func(p *Profile) { p.Gender = ptr("robot") }, "gender"},
		{"unknown zodiac", func(p *Profile) { p.ZodiacSign = ptr("ophiuchus") }, "zodiac_sign"},
		{"unknown interest", func(p *Profile) { p.Interests = []string{"hiking", "knitting"} }, "interests"},
		{"repeated interest", func(p *Profile) { p.Interests = []string{"music", "music"} }, "interests"},
		{"height out of range", func(p *Profile) { p.Height = ptr(20) }, "height"},
		{"too many photos", func(p *Profile) { p.PictureURLs = make(PhotoSlots, MaxPhotos+1) }, "picture_urls"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewDefaultProfile(1)
			tc.mutate(p)
			fields := validationFields(t, p.Validate())
			require.Contains(t, fields, tc.field)
		})
	}
}

func TestProfileValidate_CollectsEveryField(t *testing.T) {
	t.Parallel()

	p := NewDefaultProfile(1)
	p.Gender = ptr("robot")
	p.Diet = ptr("sunlight")
	p.Height = ptr(500)

	fields := validationFields(t, p.Validate())
	require.Len(t, fields, 3)
	require.Equal(t, []string{`"robot" is not a valid choice.`}, fields["gender"])
}

func TestProfileValidate_AcceptsKnownChoices(t *testing.T) {
	t.Parallel()

	p := NewDefaultProfile(1)
	p.Gender = ptr("non-binary")
	p.PreferredGender = ptr("female")
	p.Pronouns = ptr("they_them")
	p.PersonalityType = ptr("INTJ")
	p.Interests = []string{"hiking", "tech"}
	p.Height = ptr(172)
	p.MinPreferredAge, p.MaxPreferredAge = 30, 30

	require.NoError(t, p.Validate())
}

func TestChoices(t *testing.T) {
	t.Parallel()

	require.True(t, IsValidChoice(ChoiceGender, "male"))
	require.False(t, IsValidChoice(ChoiceGender, "Male"))
	require.False(t, IsValidChoice("colour", "red"))
	require.True(t, HasChoiceKind(ChoiceZodiac))
	require.False(t, HasChoiceKind("colour"))

	all := AllChoices()
	require.Contains(t, all, ChoiceInterest)
	all[ChoiceGender][0].Value = "changed"
	require.True(t, IsValidChoice(ChoiceGender, "male"), "callers get a copy")

	for kind, choices := range AllChoices() {
		seen := map[string]bool{}
		for _, c := range choices {
			require.NotEmpty(t, c.Label, "%s/%s", kind, c.Value)
			require.False(t, seen[c.Value], "%s lists %q twice", kind, c.Value)
			seen[c.Value] = true
		}
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	var empty *ValidationError
	require.True(t, empty.Empty())
	require.NoError(t, (&ValidationError{}).OrNil())

	v := NewValidationError("zeta", "bad")
	v.Add("alpha", "worse")
	v.Add("alpha", "worst")
	require.EqualError(t, v.OrNil(), "validation failed: alpha: worse, worst; zeta: bad")
}
