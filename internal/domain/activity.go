package domain

// Activity is the structured form of a single activity string.
// Location and Time are empty when the string carried no corresponding tag.
// Conversion between string and structured form happens only in the
// activity package — no other code pattern-matches tags.
type Activity struct {
	Text     string `json:"text"`
	Location string `json:"location,omitempty"`
	Time     string `json:"time,omitempty"`
}

// MapActivity is the display/view form of an activity, derived for map
// markers and numbered lists. Index is 1-based. IsAutoDetected is true
// when Location was inferred heuristically rather than explicitly tagged;
// inferred locations are never written back into the string form.
type MapActivity struct {
	Title          string `json:"title"`
	Location       string `json:"location,omitempty"`
	Time           string `json:"time,omitempty"`
	Index          int    `json:"index"`
	IsAutoDetected bool   `json:"is_auto_detected"`
}
