package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

const maxTimeLabel = 32

// ParseDate keeps only the calendar part of s, normalized to UTC midnight.
// Both 2006-01-02 and RFC3339 inputs are accepted.
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return datatypes.Date{}, NewValidationError("date", "Date must be YYYY-MM-DD")
		}
	}
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// ParseTimeLabel trims a slot time label such as "10:00" or "morning".
// Labels are opaque but end up in email headers, so control characters
// are refused.
func ParseTimeLabel(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewValidationError("time", "Time is required")
	}
	if utf8.RuneCountInString(s) > maxTimeLabel {
		return "", NewValidationError("time", "Time must be at most 32 characters")
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return "", NewValidationError("time", "Time must not contain control characters")
	}
	return s, nil
}
