package domain

import "time"

// DateLayout is the canonical 8-digit date form used throughout.
const DateLayout = "20060102"

// ParseDate parses an 8-digit YYYYMMDD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, &DateFormatError{Value: s, Reason: "must be exactly 8 characters"}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return time.Time{}, &DateFormatError{Value: s, Reason: "must contain only digits"}
		}
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &DateFormatError{Value: s, Reason: "invalid date components"}
	}
	return d, nil
}
