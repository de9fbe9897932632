package schedule_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"remindly/pkg/schedule"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		rec  schedule.Recurrence
		want string
	}{
		{
			name: "daily",
			rec:  schedule.Recurrence{Frequency: schedule.Daily, Time: "09:00"},
			want: "Daily at 9:00 AM",
		},
		{
			name: "weekly with day",
			rec:  schedule.Recurrence{Frequency: schedule.Weekly, DayOfWeek: intPtr(2), Time: "18:00"},
			want: "Weekly on Tuesday at 6:00 PM",
		},
		{
			name: "weekly without day",
			rec:  schedule.Recurrence{Frequency: schedule.Weekly, Time: "08:15"},
			want: "Weekly at 8:15 AM",
		},
		{
			name: "biweekly recovered from original text with default time",
			rec:  schedule.Recurrence{Frequency: schedule.Weekly, DayOfWeek: intPtr(2), OriginalText: "every other tuesday"},
			want: "Biweekly on Tuesday at 9:00 AM",
		},
		{
			name: "weekday recovered from original text",
			rec:  schedule.Recurrence{Frequency: schedule.Weekly, OriginalText: "every fri", Time: "12:00"},
			want: "Weekly on Friday at 12:00 PM",
		},
		{
			name: "monthly with ordinal day",
			rec:  schedule.Recurrence{Frequency: schedule.Monthly, DayOfMonth: intPtr(3), Time: "09:00"},
			want: "Monthly on the 3rd at 9:00 AM",
		},
		{
			name: "monthly without day",
			rec:  schedule.Recurrence{Frequency: schedule.Monthly, Time: "23:59"},
			want: "Monthly at 11:59 PM",
		},
		{
			name: "yearly with month and day",
			rec:  schedule.Recurrence{Frequency: schedule.Yearly, MonthOfYear: intPtr(7), DayOfMonth: intPtr(4), Time: "12:00"},
			want: "Yearly on July 4th at 12:00 PM",
		},
		{
			name: "yearly without date parts",
			rec:  schedule.Recurrence{Frequency: schedule.Yearly, Time: "09:00"},
			want: "Yearly at 9:00 AM",
		},
		{
			name: "hourly single",
			rec:  schedule.Recurrence{Frequency: schedule.Hourly, Interval: 1, Time: "10:00"},
			want: "Every hour starting at 10:00 AM",
		},
		{
			name: "hourly with interval",
			rec:  schedule.Recurrence{Frequency: schedule.Hourly, Interval: 3, Time: "14:00"},
			want: "Every 3 hours starting at 2:00 PM",
		},
		{
			name: "minutely singular",
			rec:  schedule.Recurrence{Frequency: schedule.Minutely, Interval: 1, Time: "09:00"},
			want: "Every 1 minute starting at 9:00 AM",
		},
		{
			name: "minutely plural",
			rec:  schedule.Recurrence{Frequency: schedule.Minutely, Interval: 45, Time: "00:30"},
			want: "Every 45 minutes starting at 12:30 AM",
		},
		{
			name: "minutely zero interval defaults to one",
			rec:  schedule.Recurrence{Frequency: schedule.Minutely, Time: "09:00"},
			want: "Every 1 minute starting at 9:00 AM",
		},
		{
			name: "weekdays",
			rec:  schedule.Recurrence{Frequency: schedule.Weekdays, Time: "07:00"},
			want: "Every weekday at 7:00 AM",
		},
		{
			name: "weekends",
			rec:  schedule.Recurrence{Frequency: schedule.Weekends, Time: "09:00"},
			want: "Every weekend at 9:00 AM",
		},
		{
			name: "unknown frequency falls back to original text",
			rec:  schedule.Recurrence{Frequency: "fortnightly", OriginalText: "every fortnight", Time: "09:00"},
			want: "Every fortnight at 9:00 AM",
		},
		{
			name: "unknown frequency without original text",
			rec:  schedule.Recurrence{Frequency: "fortnightly", Time: "09:00"},
			want: "fortnightly at 9:00 AM",
		},
		{
			name: "empty time falls back",
			rec:  schedule.Recurrence{Frequency: schedule.Daily},
			want: "Daily at 9:00 AM",
		},
		{
			name: "malformed time falls back",
			rec:  schedule.Recurrence{Frequency: schedule.Daily, Time: "9am"},
			want: "Daily at 9:00 AM",
		},
		{
			name: "out of range time falls back",
			rec:  schedule.Recurrence{Frequency: schedule.Daily, Time: "25:00"},
			want: "Daily at 9:00 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Format(tt.rec)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			// Formatting is pure: a second call must agree with the first.
			if again := schedule.Format(tt.rec); again != got {
				t.Errorf("Format() is not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestOrdinalSuffixes(t *testing.T) {
	days := []int{1, 2, 3, 4, 11, 12, 13, 21, 22, 23}
	suffixes := []string{"st", "nd", "rd", "th", "th", "th", "th", "st", "nd", "rd"}

	for i, day := range days {
		rec := schedule.Recurrence{Frequency: schedule.Monthly, DayOfMonth: &days[i], Time: "09:00"}
		want := fmt.Sprintf("Monthly on the %d%s at 9:00 AM", day, suffixes[i])
		if got := schedule.Format(rec); got != want {
			t.Errorf("day %d: Format() = %q, want %q", day, got, want)
		}
	}
}

// Every valid HH:MM survives the trip through 12-hour display and back.
func TestClockRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for min := 0; min < 60; min++ {
			stored := fmt.Sprintf("%02d:%02d", hour, min)
			out := schedule.Format(schedule.Recurrence{Frequency: schedule.Daily, Time: stored})

			displayed := strings.TrimPrefix(out, "Daily at ")
			h, m, ok := parseClock12(displayed)
			if !ok {
				t.Fatalf("cannot re-parse displayed time %q (from %q)", displayed, stored)
			}
			if h != hour || m != min {
				t.Errorf("round trip %q -> %q -> %02d:%02d", stored, displayed, h, m)
			}
		}
	}
}

// parseClock12 reads "H:MM AM" back into 24-hour parts.
func parseClock12(s string) (hour, min int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}
	parts := strings.SplitN(fields[0], ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	switch fields[1] {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, 0, false
	}
	return h, m, true
}
