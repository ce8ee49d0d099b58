package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMoment parses a point in time given on the command line.
//
// Accepted forms:
//
//	2026-01-02T15:04:05Z   RFC3339
//	1767366245             unix seconds
//	+90m, +2h30m           offset from now (Go duration)
//	+3d                    offset from now in whole days
func ParseMoment(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("time must not be empty")
	}

	if strings.HasPrefix(s, "+") {
		offset := s[1:]
		if days, ok := strings.CutSuffix(offset, "d"); ok {
			n, err := strconv.Atoi(days)
			if err != nil || n < 0 {
				return time.Time{}, fmt.Errorf("invalid day offset %q", s)
			}
			return now.AddDate(0, 0, n), nil
		}
		d, err := time.ParseDuration(offset)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid duration offset %q: %w", s, err)
		}
		return now.Add(d), nil
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339, unix seconds, or +duration", s)
	}
	return t, nil
}

// parseID parses a positive numeric election or candidate ID.
func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID '%s'. Expected a positive number", kind, s)
	}
	return id, nil
}
