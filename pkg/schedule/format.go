package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// biweeklyRe recovers every-other-week cadence from the matched text.
// Biweekly is not a distinct frequency; the store only ever sees "weekly".
var biweeklyRe = regexp.MustCompile(`(?i)\bevery\s+(?:other|2nd|second)\b`)

// Format renders a descriptor as its canonical display phrase. It is total:
// every input, malformed ones included, maps to some string.
func Format(rec Recurrence) string {
	t := clockDisplay(rec.Time)

	switch rec.Frequency {
	case Minutely:
		n := rec.Interval
		if n < 1 {
			n = 1
		}
		unit := "minutes"
		if n == 1 {
			unit = "minute"
		}
		return fmt.Sprintf("Every %d %s starting at %s", n, unit, t)

	case Hourly:
		if rec.Interval > 1 {
			return fmt.Sprintf("Every %d hours starting at %s", rec.Interval, t)
		}
		return "Every hour starting at " + t

	case Daily:
		return "Daily at " + t

	case Weekly:
		prefix := "Weekly"
		if biweeklyRe.MatchString(rec.OriginalText) {
			prefix = "Biweekly"
		}
		if day, ok := weekdayOf(rec); ok {
			return fmt.Sprintf("%s on %s at %s", prefix, dayNames[day], t)
		}
		return prefix + " at " + t

	case Monthly:
		if rec.DayOfMonth != nil {
			n := *rec.DayOfMonth
			return fmt.Sprintf("Monthly on the %d%s at %s", n, ordinalSuffix(n), t)
		}
		return "Monthly at " + t

	case Yearly:
		if rec.MonthOfYear != nil && rec.DayOfMonth != nil {
			m, n := *rec.MonthOfYear, *rec.DayOfMonth
			if m >= 1 && m <= 12 {
				return fmt.Sprintf("Yearly on %s %d%s at %s", monthNames[m-1], n, ordinalSuffix(n), t)
			}
		}
		return "Yearly at " + t

	case Weekdays:
		return "Every weekday at " + t

	case Weekends:
		return "Every weekend at " + t

	default:
		if rec.OriginalText != "" {
			return capitalizeFirst(rec.OriginalText) + " at " + t
		}
		return string(rec.Frequency) + " at " + t
	}
}

var clockShapeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// clockDisplay renders "HH:MM" on the 12-hour clock with uppercase AM/PM.
// Anything failing the strict shape check falls back to 9:00 AM instead of
// surfacing an error.
func clockDisplay(s string) string {
	m := clockShapeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "9:00 AM"
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if hour > 23 || min > 59 {
		return "9:00 AM"
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, min, ampm)
}

// weekdayOf resolves the display weekday: the structured field when set,
// otherwise the first weekday name found in OriginalText.
func weekdayOf(rec Recurrence) (int, bool) {
	if rec.DayOfWeek != nil && *rec.DayOfWeek >= 0 && *rec.DayOfWeek <= 6 {
		return *rec.DayOfWeek, true
	}
	if m := weekdayScanRe.FindString(rec.OriginalText); m != "" {
		if n := weekdayNum(m); n != nil {
			return *n, true
		}
	}
	return 0, false
}

var weekdayScanRe = regexp.MustCompile(`(?i)\b(?:` + weekdayAlt + `)`)

// ordinalSuffix follows English rules: 11th-13th, then 1st/2nd/3rd, else th.
func ordinalSuffix(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
