package report

import "github.com/alexanderramin/timekeep/internal/domain"

// FilterRows keeps rows whose date lies within the inclusive window. Rows
// carrying the Total sentinel date survive unconditionally; rows whose
// date does not parse as a calendar date are dropped, not errored.
// Relative order is preserved.
func FilterRows(rows []domain.ReportRow, window domain.DateInterval) []domain.ReportRow {
	kept := make([]domain.ReportRow, 0, len(rows))
	for _, row := range rows {
		if row.Date == domain.TotalDate {
			kept = append(kept, row)
			continue
		}
		d, err := domain.ParseDate(row.Date)
		if err != nil {
			continue
		}
		if window.Contains(d) {
			row.Date = d.Format(domain.DateLayout)
			kept = append(kept, row)
		}
	}
	return kept
}
