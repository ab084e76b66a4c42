package domain

// ExportRow is a single row in a trip export.
// It is a flat, denormalized view: one row per activity, with day fields
// repeated for every activity on that day. Days with no activities yield
// one row with zero values for all activity fields.
//
// ActivityLocation and ActivityTime come from the parsed tag values of the
// activity string; AutoDetected is true when the location was inferred
// rather than tagged.
type ExportRow struct {
	// Trip fields — repeated on every row.
	TripID          string `json:"trip_id"`
	TripDestination string `json:"trip_destination"`

	// Day fields — repeated for every activity on the day.
	DayDate string `json:"day_date"` // "2006-01-02" formatted date
	DayIcon string `json:"day_icon"`

	// Activity fields — zero values when the day has no activities.
	ActivityIndex    int    `json:"activity_index,omitempty"` // 1-based
	ActivityText     string `json:"activity_text,omitempty"`
	ActivityLocation string `json:"activity_location,omitempty"`
	ActivityTime     string `json:"activity_time,omitempty"`
	AutoDetected     bool   `json:"auto_detected,omitempty"`
}
