package daterange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timekeep/internal/domain"
)

// ExpandMonth turns a "M" or "M/Y" shorthand into the inclusive
// "YYYYMMDD:YYYYMMDD" interval covering that calendar month. When the year
// is omitted it comes from ref. Years of fewer than three digits go
// through the pivot rule: 00-69 map to 2000-2069, 70-99 to 1970-1999.
// Whitespace around the slash and components is tolerated.
func ExpandMonth(s string, ref time.Time) (string, error) {
	var monthStr, yearStr string

	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		monthStr = strings.TrimSpace(parts[0])
		if monthStr == "" {
			return "", &domain.MonthRangeError{Input: s, Reason: "empty month"}
		}
	case 2:
		monthStr = strings.TrimSpace(parts[0])
		yearStr = strings.TrimSpace(parts[1])
		if monthStr == "" || yearStr == "" {
			return "", &domain.MonthRangeError{Input: s, Reason: "empty component"}
		}
	default:
		return "", &domain.MonthRangeError{Input: s, Reason: "too many components"}
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return "", &domain.MonthRangeError{Input: s, Reason: "month is not a number"}
	}
	if month < 1 || month > 12 {
		return "", &domain.MonthRangeError{Input: s, Reason: fmt.Sprintf("month must be between 1 and 12, got %d", month)}
	}

	year := ref.Year()
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return "", &domain.MonthRangeError{Input: s, Reason: "year is not a number"}
		}
		switch {
		case y >= 100:
			year = y
		case y <= 69:
			year = 2000 + y
		default:
			year = 1900 + y
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(domain.DateLayout) + ":" + last.Format(domain.DateLayout), nil
}
