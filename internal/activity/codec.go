// Package activity converts between the string form of an activity (plain
// text with optional inline [at: ...] and [time: ...] tags) and the
// structured domain.Activity form, and infers a display location when no
// explicit tag is present.
//
// The tag grammar lives only here. Any other code that needs location or
// time metadata round-trips through Parse and Format rather than matching
// brackets itself.
package activity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tripkit/trip-planner/backend/internal/domain"
)

var (
	atTagRe   = regexp.MustCompile(`(?i)\[at:\s*(.*?)\]`)
	timeTagRe = regexp.MustCompile(`(?i)\[time:\s*(.*?)\]`)
)

// Parse extracts the structured form of an activity string.
// The first occurrence of each tag kind supplies the field value; all tag
// occurrences are stripped from the text. A missing or malformed tag
// (e.g. an unterminated bracket) simply leaves the field empty — Parse
// never fails.
func Parse(s string) domain.Activity {
	var a domain.Activity
	if m := atTagRe.FindStringSubmatch(s); m != nil {
		a.Location = m[1]
	}
	if m := timeTagRe.FindStringSubmatch(s); m != nil {
		a.Time = m[1]
	}
	text := atTagRe.ReplaceAllString(s, "")
	text = timeTagRe.ReplaceAllString(text, "")
	a.Text = strings.TrimSpace(text)
	return a
}

// Format renders the string form of a structured activity: the text,
// followed by an [at: ...] tag when Location is set and a [time: ...] tag
// when Time is set. Parse(Format(a)) is field-wise equal to a for any
// value Parse can produce.
func Format(a domain.Activity) string {
	var b strings.Builder
	b.WriteString(a.Text)
	if a.Location != "" {
		fmt.Fprintf(&b, " [at: %s]", a.Location)
	}
	if a.Time != "" {
		fmt.Fprintf(&b, " [time: %s]", a.Time)
	}
	return b.String()
}

// SetLocation replaces the location tag on an activity string, adding one
// if none exists. Adding and editing deliberately share this single
// codepath; the text and time tag are preserved.
func SetLocation(s, location string) string {
	a := Parse(s)
	a.Location = location
	return Format(a)
}

// MapActivities derives the view form of a day's activities: one
// MapActivity per activity string, numbered from 1 in list order.
// Activities without an explicit location tag get a best-effort inferred
// location; IsAutoDetected marks those so the UI can render them as hints.
func MapActivities(day domain.DayPlan) []domain.MapActivity {
	if len(day.Activities) == 0 {
		return []domain.MapActivity{}
	}

	out := make([]domain.MapActivity, len(day.Activities))
	for i, s := range day.Activities {
		a := Parse(s)
		location := a.Location
		auto := false
		if location == "" {
			if inferred, ok := InferLocation(a.Text); ok {
				location = inferred
				auto = true
			}
		}
		out[i] = domain.MapActivity{
			Title:          a.Text,
			Location:       location,
			Time:           a.Time,
			Index:          i + 1,
			IsAutoDetected: auto,
		}
	}
	return out
}
