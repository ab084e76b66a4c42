package activity_test

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/trip-planner/backend/internal/activity"
	"github.com/tripkit/trip-planner/backend/internal/domain"
)

// ---- Parse -----------------------------------------------------------------

func TestParse_PlainText(t *testing.T) {
	got := activity.Parse("Morning run")

	assert.Equal(t, domain.Activity{Text: "Morning run"}, got)
}

func TestParse_BothTags(t *testing.T) {
	got := activity.Parse("Dinner [at: Le Procope] [time: 8pm]")

	assert.Equal(t, "Dinner", got.Text)
	assert.Equal(t, "Le Procope", got.Location)
	assert.Equal(t, "8pm", got.Time)
}

func TestParse_TagsInAnyOrder(t *testing.T) {
	got := activity.Parse("[time: 9am] Breakfast [at: Cafe Central]")

	assert.Equal(t, "Breakfast", got.Text)
	assert.Equal(t, "Cafe Central", got.Location)
	assert.Equal(t, "9am", got.Time)
}

func TestParse_CaseInsensitiveKeywords(t *testing.T) {
	got := activity.Parse("Lunch [AT: Market Hall] [TIME: noon]")

	assert.Equal(t, "Market Hall", got.Location)
	assert.Equal(t, "noon", got.Time)
}

// TestParse_FirstTagWins verifies that only the first occurrence of each
// tag kind supplies the value, while all occurrences are stripped from
// the text.
func TestParse_FirstTagWins(t *testing.T) {
	got := activity.Parse("Walk [at: Pier] then rest [at: Hotel]")

	assert.Equal(t, "Pier", got.Location)
	assert.Equal(t, "Walk  then rest", got.Text)
}

// TestParse_MalformedTagIsText verifies the fail-soft contract: an
// unterminated bracket never errors, it just stays part of the text.
func TestParse_MalformedTagIsText(t *testing.T) {
	got := activity.Parse("Dinner [at: somewhere")

	assert.Equal(t, "Dinner [at: somewhere", got.Text)
	assert.Empty(t, got.Location)
}

// TestParse_TextNeverContainsTags is the tag-stripping idempotence
// property: parsed text must carry no recognizable tag substring.
func TestParse_TextNeverContainsTags(t *testing.T) {
	tagRe := regexp.MustCompile(`(?i)\[(?:at|time):.*?\]`)

	inputs := []string{
		"Swim [at: Bondi Beach]",
		"[time: 6am] [at: Gym] Workout",
		"Plain text with no tags",
		"Double [at: A] [at: B] [time: 1] [time: 2]",
	}
	for _, in := range inputs {
		got := activity.Parse(in)
		assert.NotRegexp(t, tagRe, got.Text, "input %q", in)
	}
}

// ---- Format / round-trip ---------------------------------------------------

func TestFormat_AppendsTagsInOrder(t *testing.T) {
	s := activity.Format(domain.Activity{Text: "Dinner", Location: "Le Procope", Time: "8pm"})

	assert.Equal(t, "Dinner [at: Le Procope] [time: 8pm]", s)
}

func TestFormat_OmitsEmptyFields(t *testing.T) {
	assert.Equal(t, "Run", activity.Format(domain.Activity{Text: "Run"}))
	assert.Equal(t, "Run [time: 7am]", activity.Format(domain.Activity{Text: "Run", Time: "7am"}))
}

// TestRoundTrip verifies parse(format(a)) == a for texts without bracket
// characters and every combination of optional fields.
func TestRoundTrip(t *testing.T) {
	cases := []domain.Activity{
		{Text: "Visit the harbor"},
		{Text: "Visit the harbor", Location: "Old Port"},
		{Text: "Visit the harbor", Time: "10am"},
		{Text: "Visit the harbor", Location: "Old Port", Time: "10am"},
		{Text: "Crêpes & cider tasting", Location: "Rue du Théâtre", Time: "14:30"},
	}
	for _, want := range cases {
		got := activity.Parse(activity.Format(want))
		assert.Equal(t, want, got)
	}
}

// ---- SetLocation -----------------------------------------------------------

func TestSetLocation_AddsTag(t *testing.T) {
	s := activity.SetLocation("Relax [time: 3pm]", "Beach Club")

	got := activity.Parse(s)
	assert.Equal(t, domain.Activity{Text: "Relax", Location: "Beach Club", Time: "3pm"}, got)
}

func TestSetLocation_ReplacesExistingTag(t *testing.T) {
	s := activity.SetLocation("Dinner [at: Old Place]", "New Place")

	got := activity.Parse(s)
	assert.Equal(t, "New Place", got.Location)
	assert.Equal(t, "Dinner", got.Text)
}

// ---- InferLocation ---------------------------------------------------------

func TestInferLocation_GazetteerLandmark(t *testing.T) {
	got, ok := activity.InferLocation("Visit the Eiffel Tower")

	require.True(t, ok)
	assert.Equal(t, "Eiffel Tower", got)
}

func TestInferLocation_GazetteerIsCaseInsensitive(t *testing.T) {
	got, ok := activity.InferLocation("morning walk along the THAMES")

	require.True(t, ok)
	assert.Equal(t, "Thames", got)
}

func TestInferLocation_VerbPhrase(t *testing.T) {
	got, ok := activity.InferLocation("Visit the Grand Bazaar")

	require.True(t, ok)
	assert.Equal(t, "Grand Bazaar", got)
}

// TestInferLocation_VerbPhraseDropsInClause verifies that a trailing
// "in <place>" qualifier is excluded from the captured location.
func TestInferLocation_VerbPhraseDropsInClause(t *testing.T) {
	got, ok := activity.InferLocation("Tour the Blue Mosque in Istanbul")

	require.True(t, ok)
	assert.Equal(t, "Blue Mosque", got)
}

func TestInferLocation_LandmarkNoun(t *testing.T) {
	got, ok := activity.InferLocation("Morning at the maritime museum")

	require.True(t, ok)
	assert.Contains(t, got, "museum")
}

func TestInferLocation_NoMatch(t *testing.T) {
	_, ok := activity.InferLocation("Relax at the hotel pool")

	assert.False(t, ok)
}

func TestInferLocation_EmptyText(t *testing.T) {
	_, ok := activity.InferLocation("")

	assert.False(t, ok)
}

// ---- MapActivities ---------------------------------------------------------

func dayWith(activities ...string) domain.DayPlan {
	return domain.DayPlan{ID: uuid.New(), Activities: activities}
}

func TestMapActivities_EmptyDay(t *testing.T) {
	got := activity.MapActivities(dayWith())

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestMapActivities_ExplicitTagBeatsInference(t *testing.T) {
	got := activity.MapActivities(dayWith("Visit the Eiffel Tower [at: Champ de Mars]"))

	require.Len(t, got, 1)
	assert.Equal(t, "Champ de Mars", got[0].Location)
	assert.False(t, got[0].IsAutoDetected)
}

func TestMapActivities_InferredLocationIsFlagged(t *testing.T) {
	got := activity.MapActivities(dayWith("Visit the Eiffel Tower"))

	require.Len(t, got, 1)
	assert.Equal(t, "Eiffel Tower", got[0].Location)
	assert.True(t, got[0].IsAutoDetected)
}

func TestMapActivities_IndicesAreOneBased(t *testing.T) {
	got := activity.MapActivities(dayWith("First", "Second", "Third"))

	require.Len(t, got, 3)
	for i, m := range got {
		assert.Equal(t, i+1, m.Index)
	}
}

func TestMapActivities_TimeCarriedThrough(t *testing.T) {
	got := activity.MapActivities(dayWith("Dinner [time: 8pm]"))

	require.Len(t, got, 1)
	assert.Equal(t, "Dinner", got[0].Title)
	assert.Equal(t, "8pm", got[0].Time)
	assert.False(t, got[0].IsAutoDetected)
}
