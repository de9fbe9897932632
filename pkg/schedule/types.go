package schedule

import "time"

// Frequency is the cadence of a recurring reminder.
type Frequency string

const (
	Minutely Frequency = "minutely"
	Hourly   Frequency = "hourly"
	Daily    Frequency = "daily"
	Weekly   Frequency = "weekly"
	Monthly  Frequency = "monthly"
	Yearly   Frequency = "yearly"

	// Weekdays and Weekends are first-class so a weekday-only reminder
	// never fires on Saturday or Sunday. Unknown values coming back from
	// the store still format via OriginalText, so older rows keep working.
	Weekdays Frequency = "weekdays"
	Weekends Frequency = "weekends"
)

// DefaultTime is the anchor time used when the user gave none.
const DefaultTime = "09:00"

// Recurrence is the persisted shape of a repeating reminder. JSON field
// names match the stored columns one-to-one; do not rename them.
type Recurrence struct {
	Frequency Frequency `json:"frequency"`
	// Time is wall-clock "HH:MM", 24-hour.
	Time string `json:"time,omitempty"`
	// Interval multiplies minutely/hourly cadences ("every N minutes").
	Interval int `json:"interval,omitempty"`
	// DayOfWeek is 0-6, Sunday = 0.
	DayOfWeek   *int `json:"dayOfWeek,omitempty"`
	DayOfMonth  *int `json:"dayOfMonth,omitempty"`
	MonthOfYear *int `json:"monthOfYear,omitempty"`
	// OriginalText is the exact substring matched from user input. It is
	// kept for display fallback and for recovering biweekly-ness and the
	// weekday when the structured fields were never filled in.
	OriginalText string `json:"originalText,omitempty"`
}

// Kind tells which outcome Extract produced.
type Kind int

const (
	KindNone Kind = iota
	KindRecurrence
	KindAbsoluteDate
)

// ExtractionResult is the ephemeral output of Extract. A result is either
// a recurrence or an absolute date, never both.
type ExtractionResult struct {
	Kind        Kind
	MatchedSpan string
	// ResidualText is the input with the matched span removed and the
	// first letter re-capitalized.
	ResidualText string
	Recurrence   *Recurrence
	AbsoluteDate time.Time
}
