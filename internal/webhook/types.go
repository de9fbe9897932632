package webhook

import "remindly/pkg/schedule"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// Database change event types sent by the hosted store.
const (
	eventInsert = "INSERT"
	eventUpdate = "UPDATE"
	eventDelete = "DELETE"
)

// storeEvent is the database webhook payload for a single row change.
type storeEvent struct {
	Type      string      `json:"type"`
	Table     string      `json:"table"`
	Record    *taskRecord `json:"record"`
	OldRecord *taskRecord `json:"old_record"`
}

// taskRecord carries the columns the webhook cares about. Descriptor
// columns use the same wire names the clients read.
type taskRecord struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	DisplayText  string  `json:"display_text"`
	Frequency    *string `json:"frequency"`
	Time         *string `json:"time"`
	Interval     *int    `json:"interval"`
	DayOfWeek    *int    `json:"dayOfWeek"`
	DayOfMonth   *int    `json:"dayOfMonth"`
	MonthOfYear  *int    `json:"monthOfYear"`
	OriginalText *string `json:"originalText"`
}

// recurrence rebuilds the descriptor from the flat columns, or nil when the
// row has no schedule.
func (r *taskRecord) recurrence() *schedule.Recurrence {
	if r == nil || r.Frequency == nil {
		return nil
	}
	rec := schedule.Recurrence{
		Frequency:   schedule.Frequency(*r.Frequency),
		Time:        schedule.DefaultTime,
		Interval:    1,
		DayOfWeek:   r.DayOfWeek,
		DayOfMonth:  r.DayOfMonth,
		MonthOfYear: r.MonthOfYear,
	}
	if r.Time != nil {
		rec.Time = *r.Time
	}
	if r.Interval != nil {
		rec.Interval = *r.Interval
	}
	if r.OriginalText != nil {
		rec.OriginalText = *r.OriginalText
	}
	return &rec
}
