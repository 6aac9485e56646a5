package feed

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Date labels in content are display strings. Absolute ones go through
// jinzhu/now with the layouts the fixtures and admin forms produce; relative
// ones are resolved against the reference time.
var labelLayouts = []string{
	"Jan 2, 2006",
	"Jan 02, 2006",
	"January 2, 2006",
	"2006-01-02",
	"1/2/2006",
	"2006",
}

var relativeRe = regexp.MustCompile(`^(\d+)\s+(minute|hour|day|week)s?\s+ago$`)

// parseLabel returns the instant a label refers to, or false if it cannot be
// read.
func parseLabel(label string, ref time.Time) (time.Time, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	switch l {
	case "":
		return time.Time{}, false
	case "just now", "now", "today":
		return ref, true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	}

	if m := relativeRe.FindStringSubmatch(l); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		switch m[2] {
		case "minute":
			return ref.Add(-time.Duration(n) * time.Minute), true
		case "hour":
			return ref.Add(-time.Duration(n) * time.Hour), true
		case "day":
			return ref.AddDate(0, 0, -n), true
		case "week":
			return ref.AddDate(0, 0, -7*n), true
		}
	}

	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: ref.Location(),
		TimeFormats:  labelLayouts,
	}
	t, err := cfg.With(ref).Parse(strings.TrimSpace(label))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
