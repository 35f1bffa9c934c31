package parser

import (
	"strconv"

	"github.com/alexanderramin/timekeep/internal/domain"
)

const minutesPerDay = 24 * 60

// GapHours computes the fractional hours between two HHMM clock values,
// rolling over midnight when end precedes start. Equal start and end is
// zero hours, not a full day; a 24-hour span must be written as two
// chained records.
func GapHours(start, end string) (float64, error) {
	s, err := clockMinutes("start", start)
	if err != nil {
		return 0, err
	}
	e, err := clockMinutes("end", end)
	if err != nil {
		return 0, err
	}

	delta := e - s
	if delta < 0 {
		delta += minutesPerDay
	}
	return float64(delta) / 60.0, nil
}

// clockMinutes validates an HHMM value and converts it to minutes since
// midnight.
func clockMinutes(field, value string) (int, error) {
	if len(value) != 4 {
		return 0, &domain.TimeValueError{Field: field, Value: value, Reason: "must be exactly 4 digits"}
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, &domain.TimeValueError{Field: field, Value: value, Reason: "must contain only digits"}
		}
	}

	hours, _ := strconv.Atoi(value[:2])
	minutes, _ := strconv.Atoi(value[2:])
	if hours > 23 {
		return 0, &domain.TimeValueError{Field: field, Value: value, Reason: "hours out of range"}
	}
	if minutes > 59 {
		return 0, &domain.TimeValueError{Field: field, Value: value, Reason: "minutes out of range"}
	}

	return hours*60 + minutes, nil
}
