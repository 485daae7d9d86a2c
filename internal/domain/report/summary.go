package report

import (
	"fmt"
	"strconv"
	"strings"
)

// SummaryCounts tallies codes for one lecturer. Codes with no days are absent.
type SummaryCounts map[StatusCode]int

func (s SummaryCounts) add(c StatusCode, delta int) {
	if n := s[c] + delta; n > 0 {
		s[c] = n
	} else {
		delete(s, c)
	}
}

// String renders "KT:5, IZ:2" in code order, leaving out zero counts.
func (s SummaryCounts) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range codeOrder {
		if n := s[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", c, n))
		}
	}
	return strings.Join(parts, ", ")
}

// ParseSummary is the inverse of SummaryCounts.String.
func ParseSummary(s string) (SummaryCounts, error) {
	counts := SummaryCounts{}
	if strings.TrimSpace(s) == "" {
		return counts, nil
	}

	for _, part := range strings.Split(s, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSummary, part)
		}
		code, err := ParseStatusCode(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSummary, err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: count %q for %s", ErrInvalidSummary, value, code)
		}
		if _, dup := counts[code]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidSummary, code)
		}
		counts[code] = n
	}
	return counts, nil
}
