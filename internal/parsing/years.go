package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/careza/matchengine/internal/types"
)

// yearsPattern matches requirement phrasings like "5 years", "3+ yrs".
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(years?|yrs?)`)

// ExtractRequiredYears pulls the first years-of-experience requirement out of
// job text. The second return distinguishes "no requirement stated" from a
// parsed zero, so callers can treat the two differently if they ever diverge.
func ExtractRequiredYears(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}

// dateLayouts are tried in order when parsing CV experience dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// parseExperienceDate parses a single CV date string. "present", "current"
// and empty strings resolve to now (an ongoing position).
func parseExperienceDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "present", "current", "now":
		return now, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DatedSpan is one employment period with both endpoints resolved.
type DatedSpan struct {
	Start time.Time
	End   time.Time
}

// Months returns the span length in calendar months, never negative.
func (s DatedSpan) Months() int {
	months := (s.End.Year()-s.Start.Year())*12 + int(s.End.Month()) - int(s.Start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// EstimateYears estimates a candidate's total experience from CV entries.
// Periods with parseable dates are summed month by month; entries whose dates
// cannot be parsed fall back to counting one year each, so a CV without any
// usable dates still yields entry-count years rather than zero.
func EstimateYears(entries []types.ExperienceEntry, now time.Time) int {
	totalMonths := 0
	unparsed := 0
	for _, entry := range entries {
		start, okStart := parseExperienceDate(entry.StartDate, now)
		end, okEnd := parseExperienceDate(entry.EndDate, now)
		if !okStart || !okEnd || entry.StartDate == "" {
			unparsed++
			continue
		}
		totalMonths += DatedSpan{Start: start, End: end}.Months()
	}
	years := totalMonths / 12
	return years + unparsed
}
