package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// salaryPattern matches South African salary ranges like "R25000 - R40000",
// "R25 000 – R40 000" or "R25,000 to R40,000".
var salaryPattern = regexp.MustCompile(`(?i)R\s*([\d][\d\s,]*)\s*(?:-|–|to)\s*R\s*([\d][\d\s,]*)`)

// SalaryRange is a parsed monthly salary band in ZAR.
type SalaryRange struct {
	Min int
	Max int
}

// ParseSalaryRange extracts a "R<min> - R<max>" band from posting text. The
// second return is false when no range can be parsed, letting callers apply
// the neutral salary score instead of treating the posting as free.
func ParseSalaryRange(text string) (SalaryRange, bool) {
	m := salaryPattern.FindStringSubmatch(text)
	if m == nil {
		return SalaryRange{}, false
	}
	minVal, okMin := parseAmount(m[1])
	maxVal, okMax := parseAmount(m[2])
	if !okMin || !okMax || minVal <= 0 || maxVal < minVal {
		return SalaryRange{}, false
	}
	return SalaryRange{Min: minVal, Max: maxVal}, true
}

// parseAmount strips grouping characters and parses the remaining digits.
func parseAmount(s string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}
