package report

import "github.com/alexanderramin/timekeep/internal/domain"

// BuildRows converts validated, sorted records into report rows, one per
// record.
func BuildRows(records []domain.WorkRecord) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, domain.ReportRow{
			Date:        rec.Date,
			Start:       rec.Start,
			End:         rec.End,
			Description: rec.Description,
			Hours:       rec.Hours,
		})
	}
	return rows
}

// AppendTotal appends the synthetic TOTAL row summing all prior rows'
// hours. An empty set of rows totals to zero.
func AppendTotal(rows []domain.ReportRow) []domain.ReportRow {
	total := 0.0
	for _, row := range rows {
		total += row.Hours
	}
	return append(rows, domain.ReportRow{
		Description: domain.TotalDescription,
		Hours:       total,
	})
}
