package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// rule binds a recurrence phrase to the descriptor it produces. Rules are
// tried in order and the first match wins, so the more specific phrases
// ("every other tuesday") sit above the generic ones ("every tuesday").
type rule struct {
	re    *regexp.Regexp
	build func(m []string) Recurrence
}

const weekdayAlt = `sun(?:day)?|mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:rs?(?:day)?)?|fri(?:day)?|sat(?:urday)?`

var rules = []rule{
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(?:other|2nd|second)\s+(` + weekdayAlt + `)\b`),
		build: func(m []string) Recurrence {
			return Recurrence{Frequency: Weekly, DayOfWeek: weekdayNum(m[1])}
		},
	},
	{
		re:    regexp.MustCompile(`(?i)\bevery\s+(?:other|2nd|second)\s+week\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Weekly} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+weekday|weekdays)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Weekdays} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+weekend|weekends)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Weekends} },
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:on\s+the\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+of\s+every\s+month\b`),
		build: func(m []string) Recurrence {
			return Recurrence{Frequency: Monthly, DayOfMonth: atoiPtr(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+month\s+on\s+the\s+(\d{1,2})(?:st|nd|rd|th)?\b`),
		build: func(m []string) Recurrence {
			return Recurrence{Frequency: Monthly, DayOfMonth: atoiPtr(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(` + weekdayAlt + `)\b`),
		build: func(m []string) Recurrence {
			return Recurrence{Frequency: Weekly, DayOfWeek: weekdayNum(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(\d+)\s+minutes?\b`),
		build: func(m []string) Recurrence {
			return Recurrence{Frequency: Minutely, Interval: atoi(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(\d+)\s+hours?\b`),
		build: func(m []string) Recurrence {
			return Recurrence{Frequency: Hourly, Interval: atoi(m[1])}
		},
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+day|daily)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Daily} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+week|weekly)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Weekly} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+month|monthly)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Monthly} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+year|yearly|annually)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Yearly} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+hour|hourly)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Hourly, Interval: 1} },
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every\s+minute|minutely)\b`),
		build: func(m []string) Recurrence { return Recurrence{Frequency: Minutely, Interval: 1} },
	},
}

var weekdayNums = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tues": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thur": 4, "thurs": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// weekdayNum resolves a weekday name or abbreviation to 0-6, Sunday = 0.
func weekdayNum(name string) *int {
	key := strings.ToLower(strings.TrimSpace(name))
	if n, ok := weekdayNums[key]; ok {
		return &n
	}
	if len(key) >= 3 {
		if n, ok := weekdayNums[key[:3]]; ok {
			return &n
		}
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
