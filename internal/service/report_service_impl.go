package service

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/alexanderramin/timekeep/internal/domain"
	"github.com/alexanderramin/timekeep/internal/parser"
	"github.com/alexanderramin/timekeep/internal/report"
	"github.com/alexanderramin/timekeep/internal/scheduler"
	"github.com/rs/zerolog"
)

type reportService struct{}

// NewReportService creates the record-to-report pipeline.
func NewReportService() ReportService {
	return &reportService{}
}

func (s *reportService) Generate(ctx context.Context, lines io.Reader, window *domain.DateInterval) (string, error) {
	logger := zerolog.Ctx(ctx)

	records, err := parser.ScanEntries(ctx, lines)
	if err != nil {
		return "", err
	}

	groups := make(map[string][]domain.WorkRecord)
	for _, rec := range records {
		groups[rec.Business] = append(groups[rec.Business], rec)
	}

	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	tables := make(map[string]string, len(groups))
	for _, code := range codes {
		validated, err := scheduler.ValidateSchedule(ctx, groups[code])
		if err != nil {
			return "", fmt.Errorf("business %s: %w", code, err)
		}

		rows := report.BuildRows(validated)
		if window != nil {
			rows = report.FilterRows(rows, *window)
		}
		rows = report.AppendTotal(rows)

		tables[code] = report.RenderTable(rows)
		logger.Debug().Str("business", code).Int("rows", len(rows)).Msg("rendered section")
	}

	return report.RenderDocument(tables, window), nil
}
