package schedule_test

import (
	"testing"
	"time"

	"remindly/pkg/schedule"
)

func TestNext(t *testing.T) {
	// Monday, March 10 2025, noon UTC.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rec  schedule.Recurrence
		want time.Time
	}{
		{
			name: "daily later today",
			rec:  schedule.Recurrence{Frequency: schedule.Daily, Time: "18:00"},
			want: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "daily already passed rolls to tomorrow",
			rec:  schedule.Recurrence{Frequency: schedule.Daily, Time: "09:00"},
			want: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly on tuesday",
			rec:  schedule.Recurrence{Frequency: schedule.Weekly, DayOfWeek: intPtr(2), Time: "18:00"},
			want: time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "weekday skips the weekend",
			rec:  schedule.Recurrence{Frequency: schedule.Weekdays, Time: "07:00"},
			want: time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
		},
		{
			name: "weekend waits for saturday",
			rec:  schedule.Recurrence{Frequency: schedule.Weekends, Time: "09:00"},
			want: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "monthly on a day already passed this month",
			rec:  schedule.Recurrence{Frequency: schedule.Monthly, DayOfMonth: intPtr(3), Time: "09:00"},
			want: time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "yearly on july 4th",
			rec:  schedule.Recurrence{Frequency: schedule.Yearly, MonthOfYear: intPtr(7), DayOfMonth: intPtr(4), Time: "12:00"},
			want: time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "hourly interval from anchor",
			rec:  schedule.Recurrence{Frequency: schedule.Hourly, Interval: 3, Time: "09:00"},
			want: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "malformed time anchors at nine",
			rec:  schedule.Recurrence{Frequency: schedule.Daily, Time: "bogus"},
			want: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.Next(tt.rec, now, time.UTC)
			if !ok {
				t.Fatalf("Next() reported no occurrence")
			}
			if !got.Equal(tt.want) {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("biweekly uses interval two", func(t *testing.T) {
		rec := schedule.Recurrence{
			Frequency:    schedule.Weekly,
			DayOfWeek:    intPtr(1),
			Time:         "09:00",
			OriginalText: "every other monday",
		}
		first, ok := schedule.Next(rec, now, time.UTC)
		if !ok {
			t.Fatalf("Next() reported no occurrence")
		}
		second, ok := schedule.Next(rec, first, time.UTC)
		if !ok {
			t.Fatalf("Next() reported no second occurrence")
		}
		if gap := second.Sub(first); gap != 14*24*time.Hour {
			t.Errorf("biweekly gap = %v, want 336h", gap)
		}
	})

	t.Run("unknown frequency has no occurrence", func(t *testing.T) {
		if _, ok := schedule.Next(schedule.Recurrence{Frequency: "fortnightly"}, now, time.UTC); ok {
			t.Errorf("Next() = ok for unknown frequency, want false")
		}
	})
}
