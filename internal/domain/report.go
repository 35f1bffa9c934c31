package domain

import "time"

const (
	// TotalDate is the sentinel date a synthetic total row carries when it
	// travels through date filtering.
	TotalDate = "Total"

	// TotalDescription labels the synthetic total row appended to a report.
	TotalDescription = "TOTAL"
)

// ReportRow is one line of a rendered report. The trailing total row has a
// blank date and the TotalDescription label.
type ReportRow struct {
	Date        string
	Start       string
	End         string
	Description string
	Hours       float64
}

// DateInterval is an inclusive date window. An inverted interval matches
// nothing; it is not independently rejected.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d lies within the inclusive interval.
func (iv DateInterval) Contains(d time.Time) bool {
	return !d.Before(iv.Start) && !d.After(iv.End)
}
