package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Extractor pulls a recurrence pattern or a one-shot date out of free text.
// It is stateless after construction and safe for concurrent use; the
// reference clock is always passed in, never read from the system.
type Extractor struct {
	dates *when.Parser
}

// NewExtractor creates an Extractor with the English natural-date rules.
func NewExtractor() *Extractor {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Extractor{dates: w}
}

// Extract scans text for a recurrence phrase first and, failing that, a
// natural-language date resolved against now. It never returns an error:
// anything unrecognized comes back as KindNone with the text untouched.
func (e *Extractor) Extract(text string, now time.Time) ExtractionResult {
	if strings.TrimSpace(text) == "" {
		return ExtractionResult{Kind: KindNone, ResidualText: text}
	}

	for _, r := range rules {
		loc := r.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		span := text[loc[0]:loc[1]]
		rec := r.build(submatches(text, loc))
		rec.OriginalText = span

		residual := removeSpan(text, loc[0], loc[1])
		if clock, clockSpan, ok := findClock(text, loc[0], loc[1]); ok {
			rec.Time = clock
			residual = removeFirst(residual, clockSpan)
		} else {
			rec.Time = DefaultTime
		}

		return ExtractionResult{
			Kind:         KindRecurrence,
			MatchedSpan:  span,
			ResidualText: finishResidual(residual),
			Recurrence:   &rec,
		}
	}

	// Spell out "at three" as "at 3" so the date parser can see it. The
	// parser runs on the rewritten string, but the matched span is mapped
	// back so both the span and the residual come from the original text.
	normalized, edits := substituteNumberWords(text)
	if match, err := e.dates.Parse(normalized, now); err == nil && match != nil {
		start, end := mapSpan(match.Index, match.Index+len(match.Text), edits)
		return ExtractionResult{
			Kind:         KindAbsoluteDate,
			MatchedSpan:  text[start:end],
			ResidualText: finishResidual(removeSpan(text, start, end)),
			AbsoluteDate: match.Time,
		}
	}

	return ExtractionResult{Kind: KindNone, ResidualText: text}
}

// clockRe matches "[at ]H[:MM][ am|pm]". A bare number only counts as a
// time when it is qualified by "at", minutes, or a meridiem, so the "2" in
// "every 2 hours" is never mistaken for two o'clock.
var clockRe = regexp.MustCompile(`(?i)(?:\b(at)\s+)?\b(\d{1,2})(?::([0-5][0-9]))?\s*(am|pm)?\b`)

// findClock looks for a time-of-day expression in text, skipping anything
// inside the already-matched recurrence span [skipFrom, skipTo).
func findClock(text string, skipFrom, skipTo int) (clock, span string, ok bool) {
	for _, m := range clockRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] >= skipFrom && m[1] <= skipTo {
			continue
		}
		at := m[2] >= 0
		hour, _ := strconv.Atoi(text[m[4]:m[5]])
		min := 0
		hasMin := m[6] >= 0
		if hasMin {
			min, _ = strconv.Atoi(text[m[6]:m[7]])
		}
		meridiem := ""
		if m[8] >= 0 {
			meridiem = strings.ToLower(text[m[8]:m[9]])
		}
		if !at && !hasMin && meridiem == "" {
			continue
		}
		if hour > 23 || (meridiem != "" && (hour < 1 || hour > 12)) {
			continue
		}

		switch {
		case meridiem == "am":
			if hour == 12 {
				hour = 0
			}
		case meridiem == "pm":
			if hour != 12 {
				hour += 12
			}
		case hour >= 1 && hour <= 11:
			// No meridiem: bias bare 1-11 toward the afternoon/evening.
			hour += 12
		}

		return pad2(hour) + ":" + pad2(min), text[m[0]:m[1]], true
	}
	return "", "", false
}

var numberWordRe = regexp.MustCompile(`(?i)\b(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\b`)

var numberWords = map[string]string{
	"one": "1", "two": "2", "three": "3", "four": "4", "five": "5",
	"six": "6", "seven": "7", "eight": "8", "nine": "9", "ten": "10",
	"eleven": "11", "twelve": "12",
}

// numberWordEdit records one word-to-digit rewrite so spans found in the
// rewritten string can be mapped back to the original text.
type numberWordEdit struct {
	origStart, origEnd int
	normStart, normEnd int
}

func substituteNumberWords(text string) (string, []numberWordEdit) {
	matches := numberWordRe.FindAllStringIndex(text, -1)
	if matches == nil {
		return text, nil
	}

	var b strings.Builder
	edits := make([]numberWordEdit, 0, len(matches))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		repl := numberWords[strings.ToLower(text[m[0]:m[1]])]
		edits = append(edits, numberWordEdit{
			origStart: m[0], origEnd: m[1],
			normStart: b.Len(), normEnd: b.Len() + len(repl),
		})
		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), edits
}

// mapSpan translates a [start, end) span in the rewritten string back to
// the original text.
func mapSpan(start, end int, edits []numberWordEdit) (int, int) {
	return mapPos(start, edits, false), mapPos(end, edits, true)
}

// mapPos translates one position. A position inside a rewritten word snaps
// to the word's original boundary: its start when mapping a span start,
// its end when mapping a span end.
func mapPos(p int, edits []numberWordEdit, snapEnd bool) int {
	delta := 0
	for _, e := range edits {
		if p <= e.normStart {
			break
		}
		if p < e.normEnd {
			if snapEnd {
				return e.origEnd
			}
			return e.origStart
		}
		delta += (e.origEnd - e.origStart) - (e.normEnd - e.normStart)
	}
	return p + delta
}

// removeSpan cuts [start, end) out of s, dropping one of the two spaces
// left touching at the junction.
func removeSpan(s string, start, end int) string {
	left, right := s[:start], s[end:]
	if strings.HasSuffix(left, " ") && strings.HasPrefix(right, " ") {
		right = right[1:]
	}
	return left + right
}

// removeFirst removes the first occurrence of span from s.
func removeFirst(s, span string) string {
	if span == "" {
		return s
	}
	idx := strings.Index(s, span)
	if idx < 0 {
		return s
	}
	return removeSpan(s, idx, idx+len(span))
}

// finishResidual trims the residue and uppercases its first letter. Text
// that starts with something URL- or email-shaped is left alone: callers
// feed the residue into spell correction that must keep such tokens intact.
func finishResidual(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || startsWithLink(s) {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

var linkishRe = regexp.MustCompile(`(?i)^(?:https?://|www\.|[^\s@]+@[^\s@]+\.[^\s@]+$|[\w-]+(?:\.[\w-]+)+(?:/\S*)?$)`)

func startsWithLink(s string) bool {
	tok := s
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		tok = s[:i]
	}
	return linkishRe.MatchString(tok)
}

// submatches materializes the submatch strings for a match index vector.
func submatches(text string, loc []int) []string {
	out := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, text[loc[i]:loc[i+1]])
	}
	return out
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
