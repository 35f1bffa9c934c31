package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/timekeep/internal/domain"
)

// RenderDocument assembles per-business tables into one report. Sections
// appear in ascending business-code order, each under a heading naming the
// code. When a window is active the document opens with a line naming it.
func RenderDocument(tables map[string]string, window *domain.DateInterval) string {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var b strings.Builder
	if window != nil {
		fmt.Fprintf(&b, "Data covering range %s to %s:\n\n",
			window.Start.Format(domain.DateLayout), window.End.Format(domain.DateLayout))
	}
	for _, code := range codes {
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", code, tables[code])
	}
	return b.String()
}
