package schedule_test

import (
	"strings"
	"testing"
	"time"
	"unicode"

	"remindly/pkg/schedule"
)

// Monday, March 10 2025, noon UTC.
var baseNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func intPtr(n int) *int { return &n }

func TestExtractRecurrence(t *testing.T) {
	ex := schedule.NewExtractor()

	tests := []struct {
		name         string
		input        string
		frequency    schedule.Frequency
		time         string
		interval     int
		dayOfWeek    *int
		dayOfMonth   *int
		matchedSpan  string
		residualText string
	}{
		{
			name:         "weekday with meridiem time",
			input:        "every tuesday at 6pm call mom",
			frequency:    schedule.Weekly,
			time:         "18:00",
			dayOfWeek:    intPtr(2),
			matchedSpan:  "every tuesday",
			residualText: "Call mom",
		},
		{
			name:         "monthly with day of month",
			input:        "pay rent on the 3rd of every month",
			frequency:    schedule.Monthly,
			time:         "09:00",
			dayOfMonth:   intPtr(3),
			matchedSpan:  "on the 3rd of every month",
			residualText: "Pay rent",
		},
		{
			name:         "hourly with interval",
			input:        "drink water every 2 hours",
			frequency:    schedule.Hourly,
			time:         "09:00",
			interval:     2,
			matchedSpan:  "every 2 hours",
			residualText: "Drink water",
		},
		{
			name:         "minutely with interval",
			input:        "stretch every 45 minutes",
			frequency:    schedule.Minutely,
			time:         "09:00",
			interval:     45,
			matchedSpan:  "every 45 minutes",
			residualText: "Stretch",
		},
		{
			name:         "biweekly weekday",
			input:        "take out recycling every other thursday",
			frequency:    schedule.Weekly,
			time:         "09:00",
			dayOfWeek:    intPtr(4),
			matchedSpan:  "every other thursday",
			residualText: "Take out recycling",
		},
		{
			name:         "daily with bare hour defaults to pm",
			input:        "standup notes every day at 9:30",
			frequency:    schedule.Daily,
			time:         "21:30",
			matchedSpan:  "every day",
			residualText: "Standup notes",
		},
		{
			name:         "daily keyword",
			input:        "journal daily",
			frequency:    schedule.Daily,
			time:         "09:00",
			matchedSpan:  "daily",
			residualText: "Journal",
		},
		{
			name:         "weekdays stay distinct from daily",
			input:        "pack lunch every weekday at 7am",
			frequency:    schedule.Weekdays,
			time:         "07:00",
			matchedSpan:  "every weekday",
			residualText: "Pack lunch",
		},
		{
			name:         "weekends stay distinct from weekly",
			input:        "water plants every weekend",
			frequency:    schedule.Weekends,
			time:         "09:00",
			matchedSpan:  "every weekend",
			residualText: "Water plants",
		},
		{
			name:         "yearly keyword",
			input:        "renew passport check annually",
			frequency:    schedule.Yearly,
			time:         "09:00",
			matchedSpan:  "annually",
			residualText: "Renew passport check",
		},
		{
			name:         "midnight crossing with explicit am",
			input:        "every day at 12am backup",
			frequency:    schedule.Daily,
			time:         "00:00",
			matchedSpan:  "every day",
			residualText: "Backup",
		},
		{
			name:         "hour 13 and above stays 24h",
			input:        "every monday at 14:15 review",
			frequency:    schedule.Weekly,
			time:         "14:15",
			dayOfWeek:    intPtr(1),
			matchedSpan:  "every monday",
			residualText: "Review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.input, baseNow)

			if got.Kind != schedule.KindRecurrence {
				t.Fatalf("Extract(%q) kind = %v, want recurrence", tt.input, got.Kind)
			}
			if got.Recurrence == nil {
				t.Fatalf("Extract(%q) returned nil recurrence", tt.input)
			}
			rec := got.Recurrence

			if rec.Frequency != tt.frequency {
				t.Errorf("frequency = %q, want %q", rec.Frequency, tt.frequency)
			}
			if rec.Time != tt.time {
				t.Errorf("time = %q, want %q", rec.Time, tt.time)
			}
			if rec.Interval != tt.interval {
				t.Errorf("interval = %d, want %d", rec.Interval, tt.interval)
			}
			if !intPtrEqual(rec.DayOfWeek, tt.dayOfWeek) {
				t.Errorf("dayOfWeek = %v, want %v", fmtIntPtr(rec.DayOfWeek), fmtIntPtr(tt.dayOfWeek))
			}
			if !intPtrEqual(rec.DayOfMonth, tt.dayOfMonth) {
				t.Errorf("dayOfMonth = %v, want %v", fmtIntPtr(rec.DayOfMonth), fmtIntPtr(tt.dayOfMonth))
			}
			if got.MatchedSpan != tt.matchedSpan {
				t.Errorf("matchedSpan = %q, want %q", got.MatchedSpan, tt.matchedSpan)
			}
			if rec.OriginalText != tt.matchedSpan {
				t.Errorf("originalText = %q, want %q", rec.OriginalText, tt.matchedSpan)
			}
			if got.ResidualText != tt.residualText {
				t.Errorf("residualText = %q, want %q", got.ResidualText, tt.residualText)
			}
			if !got.AbsoluteDate.IsZero() {
				t.Errorf("recurrence outcome must not carry an absolute date, got %v", got.AbsoluteDate)
			}
		})
	}
}

func TestExtractAbsoluteDate(t *testing.T) {
	ex := schedule.NewExtractor()

	t.Run("tomorrow", func(t *testing.T) {
		got := ex.Extract("call the dentist tomorrow", baseNow)
		if got.Kind != schedule.KindAbsoluteDate {
			t.Fatalf("kind = %v, want absoluteDate", got.Kind)
		}
		if got.Recurrence != nil {
			t.Fatalf("absolute-date outcome must not carry a recurrence")
		}
		wantDay := baseNow.AddDate(0, 0, 1)
		y, m, d := got.AbsoluteDate.Date()
		wy, wm, wd := wantDay.Date()
		if y != wy || m != wm || d != wd {
			t.Errorf("resolved date = %v, want the day after %v", got.AbsoluteDate, baseNow)
		}
		if got.ResidualText != "Call the dentist" {
			t.Errorf("residualText = %q, want %q", got.ResidualText, "Call the dentist")
		}
	})

	t.Run("in N days", func(t *testing.T) {
		got := ex.Extract("rotate backups in 3 days", baseNow)
		if got.Kind != schedule.KindAbsoluteDate {
			t.Fatalf("kind = %v, want absoluteDate", got.Kind)
		}
		if want := 72 * time.Hour; got.AbsoluteDate.Sub(baseNow) != want {
			t.Errorf("resolved offset = %v, want %v", got.AbsoluteDate.Sub(baseNow), want)
		}
		if got.ResidualText != "Rotate backups" {
			t.Errorf("residualText = %q, want %q", got.ResidualText, "Rotate backups")
		}
	})

	t.Run("spelled-out hour", func(t *testing.T) {
		got := ex.Extract("pick up kids tomorrow at three pm", baseNow)
		if got.Kind != schedule.KindAbsoluteDate {
			t.Fatalf("kind = %v, want absoluteDate", got.Kind)
		}
		if got.ResidualText != "Pick up kids" {
			t.Errorf("residualText = %q, want %q", got.ResidualText, "Pick up kids")
		}
		if got.MatchedSpan != "tomorrow at three pm" {
			t.Errorf("matchedSpan = %q, want the original spelled-out span", got.MatchedSpan)
		}
	})

	t.Run("number word outside the date survives", func(t *testing.T) {
		got := ex.Extract("buy two apples tomorrow", baseNow)
		if got.Kind != schedule.KindAbsoluteDate {
			t.Fatalf("kind = %v, want absoluteDate", got.Kind)
		}
		if got.MatchedSpan != "tomorrow" {
			t.Errorf("matchedSpan = %q, want %q", got.MatchedSpan, "tomorrow")
		}
		if got.ResidualText != "Buy two apples" {
			t.Errorf("residualText = %q, number word must not be rewritten", got.ResidualText)
		}
	})

	t.Run("number word outside a spelled-out time survives", func(t *testing.T) {
		got := ex.Extract("grab two bagels tomorrow at three pm", baseNow)
		if got.Kind != schedule.KindAbsoluteDate {
			t.Fatalf("kind = %v, want absoluteDate", got.Kind)
		}
		if got.ResidualText != "Grab two bagels" {
			t.Errorf("residualText = %q, want %q", got.ResidualText, "Grab two bagels")
		}
	})
}

func TestExtractNoMatch(t *testing.T) {
	ex := schedule.NewExtractor()

	for _, input := range []string{"buy milk", "", "   ", "fix the leaky faucet"} {
		got := ex.Extract(input, baseNow)
		if got.Kind != schedule.KindNone {
			t.Errorf("Extract(%q) kind = %v, want none", input, got.Kind)
		}
		if got.MatchedSpan != "" {
			t.Errorf("Extract(%q) matchedSpan = %q, want empty", input, got.MatchedSpan)
		}
		if got.ResidualText != input {
			t.Errorf("Extract(%q) residualText = %q, want input unchanged", input, got.ResidualText)
		}
	}
}

func TestExtractPreservesLinkResidual(t *testing.T) {
	ex := schedule.NewExtractor()

	tests := []struct {
		name     string
		input    string
		kind     schedule.Kind
		residual string
	}{
		{
			name:     "bare domain",
			input:    "example.com domain renewal every year",
			kind:     schedule.KindRecurrence,
			residual: "example.com domain renewal",
		},
		{
			name:     "domain with path",
			input:    "tomorrow example.com/read this",
			kind:     schedule.KindAbsoluteDate,
			residual: "example.com/read this",
		},
		{
			name:     "email address",
			input:    "every monday bob@example.com status ping",
			kind:     schedule.KindRecurrence,
			residual: "bob@example.com status ping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.input, baseNow)
			if got.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.ResidualText != tt.residual {
				t.Errorf("residualText = %q, want %q (casing must be untouched)", got.ResidualText, tt.residual)
			}
		})
	}
}

// Extraction outcomes are mutually exclusive and residuals never contain
// the matched span.
func TestExtractInvariants(t *testing.T) {
	ex := schedule.NewExtractor()

	inputs := []string{
		"every tuesday at 6pm call mom",
		"pay rent on the 3rd of every month",
		"water plants every weekend",
		"call the dentist tomorrow",
		"rotate backups in 3 days",
		"buy milk",
		"drink water every 2 hours",
	}

	for _, input := range inputs {
		got := ex.Extract(input, baseNow)

		if got.Recurrence != nil && !got.AbsoluteDate.IsZero() {
			t.Errorf("Extract(%q) produced both a recurrence and an absolute date", input)
		}
		if got.Kind == schedule.KindNone {
			continue
		}
		if got.MatchedSpan == "" {
			t.Errorf("Extract(%q) matched but span is empty", input)
		}
		if strings.Contains(got.ResidualText, got.MatchedSpan) {
			t.Errorf("Extract(%q) residual %q still contains span %q", input, got.ResidualText, got.MatchedSpan)
		}
		if got.ResidualText != "" {
			first := []rune(got.ResidualText)[0]
			if unicode.IsLetter(first) && !unicode.IsUpper(first) {
				t.Errorf("Extract(%q) residual %q does not start uppercase", input, got.ResidualText)
			}
		}
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtIntPtr(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
