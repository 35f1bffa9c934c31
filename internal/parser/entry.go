package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/alexanderramin/timekeep/internal/domain"
	"github.com/rs/zerolog"
)

// Marker prefixes every record line. Lines without it are not records and
// are skipped without error.
const Marker = "!WORK"

// maxLineBytes caps a single input line. Descriptions are free text, so
// the scanner default of 64KiB is too tight.
const maxLineBytes = 1 << 20

var entryPattern = regexp.MustCompile(`^!WORK-([A-Z]+)\s+(\d{8})\s+(\d{4})\s+(\d{4})\s+(.*\S)$`)

// ParseEntry splits one marker line into its business, date, start, end and
// description fields. Only the shape is checked here; numeric validation of
// times and dates happens in GapHours and schedule validation.
func ParseEntry(line string) (domain.WorkRecord, error) {
	m := entryPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.WorkRecord{}, &domain.ParseError{Line: line}
	}
	return domain.WorkRecord{
		Business:    m[1],
		Date:        m[2],
		Start:       m[3],
		End:         m[4],
		Description: m[5],
	}, nil
}

// ScanEntries reads lines from r, parses every marker line and annotates it
// with its duration. The first malformed record aborts the scan.
func ScanEntries(ctx context.Context, r io.Reader) ([]domain.WorkRecord, error) {
	logger := zerolog.Ctx(ctx)

	var records []domain.WorkRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(strings.TrimSpace(line), Marker) {
			continue
		}

		rec, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		rec.Hours, err = GapHours(rec.Start, rec.End)
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Str("business", rec.Business).
			Str("date", rec.Date).
			Str("start", rec.Start).
			Str("end", rec.End).
			Float64("hours", rec.Hours).
			Msg("parsed entry")
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return records, nil
}
