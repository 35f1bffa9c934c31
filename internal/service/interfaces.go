package service

import (
	"context"
	"io"

	"github.com/alexanderramin/timekeep/internal/domain"
)

// ReportService turns a stream of time-tracking lines into the rendered
// per-client hour summary.
type ReportService interface {
	// Generate parses, validates and renders all records read from lines.
	// A nil window disables date filtering. The first malformed or
	// overlapping record aborts the run.
	Generate(ctx context.Context, lines io.Reader, window *domain.DateInterval) (string, error)
}
