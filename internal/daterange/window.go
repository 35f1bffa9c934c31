package daterange

import (
	"strings"

	"github.com/alexanderramin/timekeep/internal/domain"
)

// ParseWindow resolves a date-window literal ("YYYYMMDD:YYYYMMDD" or a
// single "YYYYMMDD", which becomes a one-day window) into an inclusive
// interval.
func ParseWindow(spec string) (domain.DateInterval, error) {
	startStr, endStr := spec, spec
	if i := strings.Index(spec, ":"); i >= 0 {
		startStr, endStr = spec[:i], spec[i+1:]
	}

	start, err := domain.ParseDate(startStr)
	if err != nil {
		return domain.DateInterval{}, err
	}
	end, err := domain.ParseDate(endStr)
	if err != nil {
		return domain.DateInterval{}, err
	}

	return domain.DateInterval{Start: start, End: end}, nil
}
