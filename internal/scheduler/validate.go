package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/timekeep/internal/domain"
	"github.com/rs/zerolog"
)

// span pairs a record with its absolute start and end instants. End rolls
// to the next calendar day for overnight records.
type span struct {
	start  time.Time
	end    time.Time
	record domain.WorkRecord
}

// ValidateSchedule sorts one business's records by absolute start instant
// and rejects any pair of records whose intervals overlap. Records that
// merely touch (one's end equals the next's start) are accepted. All field
// values are returned unchanged; only the order differs. The sort is
// stable, so records starting at the same instant keep their input order.
func ValidateSchedule(ctx context.Context, records []domain.WorkRecord) ([]domain.WorkRecord, error) {
	spans := make([]span, 0, len(records))
	for _, rec := range records {
		day, err := domain.ParseDate(rec.Date)
		if err != nil {
			return nil, err
		}
		startOffset, err := clockOffset("start", rec.Start)
		if err != nil {
			return nil, err
		}
		endOffset, err := clockOffset("end", rec.End)
		if err != nil {
			return nil, err
		}
		start := day.Add(startOffset)
		end := day.Add(endOffset)
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}
		spans = append(spans, span{start: start, end: end, record: rec})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start.Before(spans[j].start)
	})

	// Single pass tracking the maximum end instant seen so far. The
	// watermark never resets, so a record contained inside an earlier,
	// longer one is caught even when they are not adjacent after sorting.
	var watermark time.Time
	var holder domain.WorkRecord
	for i, sp := range spans {
		if i > 0 && sp.start.Before(watermark) {
			return nil, &domain.OverlapError{Previous: holder, Next: sp.record}
		}
		if i == 0 || sp.end.After(watermark) {
			watermark = sp.end
			holder = sp.record
		}
	}

	sorted := make([]domain.WorkRecord, len(spans))
	for i, sp := range spans {
		sorted[i] = sp.record
	}
	zerolog.Ctx(ctx).Debug().Int("records", len(sorted)).Msg("schedule validated")
	return sorted, nil
}

// clockOffset converts an HHMM value into an offset from midnight. The
// parser validates records before they reach here, but callers of the
// exported API get the typed error rather than a panic.
func clockOffset(field, hhmm string) (time.Duration, error) {
	if len(hhmm) != 4 {
		return 0, &domain.TimeValueError{Field: field, Value: hhmm, Reason: "must be exactly 4 digits"}
	}
	for _, r := range hhmm {
		if r < '0' || r > '9' {
			return 0, &domain.TimeValueError{Field: field, Value: hhmm, Reason: "must contain only digits"}
		}
	}

	h := time.Duration(hhmm[0]-'0')*10 + time.Duration(hhmm[1]-'0')
	m := time.Duration(hhmm[2]-'0')*10 + time.Duration(hhmm[3]-'0')
	if h > 23 {
		return 0, &domain.TimeValueError{Field: field, Value: hhmm, Reason: "hours out of range"}
	}
	if m > 59 {
		return 0, &domain.TimeValueError{Field: field, Value: hhmm, Reason: "minutes out of range"}
	}
	return h*time.Hour + m*time.Minute, nil
}
