package schedule

import (
	"strconv"
	"strings"
	"time"

	rrule "github.com/teambition/rrule-go"
)

// rruleWeekdays is indexed by our day numbering, Sunday = 0.
var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Next computes the first occurrence of rec strictly after now by lowering
// the descriptor to an RFC 5545 rule. The second return is false when the
// frequency is unknown or the rule cannot be built.
func Next(rec Recurrence, now time.Time, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	hour, min := clockParts(rec.Time)
	opt := rrule.ROption{
		Dtstart: time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc),
	}

	interval := rec.Interval
	if interval < 1 {
		interval = 1
	}

	switch rec.Frequency {
	case Minutely:
		opt.Freq = rrule.MINUTELY
		opt.Interval = interval
	case Hourly:
		opt.Freq = rrule.HOURLY
		opt.Interval = interval
	case Daily:
		opt.Freq = rrule.DAILY
	case Weekly:
		opt.Freq = rrule.WEEKLY
		if biweeklyRe.MatchString(rec.OriginalText) {
			opt.Interval = 2
		}
		if day, ok := weekdayOf(rec); ok {
			opt.Byweekday = []rrule.Weekday{rruleWeekdays[day]}
		}
	case Weekdays:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	case Weekends:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rrule.SA, rrule.SU}
	case Monthly:
		opt.Freq = rrule.MONTHLY
		if rec.DayOfMonth != nil {
			opt.Bymonthday = []int{*rec.DayOfMonth}
		}
	case Yearly:
		opt.Freq = rrule.YEARLY
		if rec.MonthOfYear != nil {
			opt.Bymonth = []int{*rec.MonthOfYear}
		}
		if rec.DayOfMonth != nil {
			opt.Bymonthday = []int{*rec.DayOfMonth}
		}
	default:
		return time.Time{}, false
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return time.Time{}, false
	}
	next := r.After(now, false)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

// clockParts splits "HH:MM", defaulting to the 9:00 anchor on bad input.
func clockParts(s string) (hour, min int) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 9, 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 9, 0
	}
	return h, m
}
