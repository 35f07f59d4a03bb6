package service

import (
	"context"
	"fmt"
	"io"

	"process_control_sim/internal/csvlog"
)

// ExportService writes the in-memory collection as CSV.
type ExportService struct {
	session *Session
}

func NewExportService(session *Session) *ExportService {
	return &ExportService{session: session}
}

// WriteCSV writes every record, newest first, including the Severity column.
// It returns the number of data rows written.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	records := s.session.Records()
	if err := csvlog.Encode(w, records, csvlog.Options{WithSeverity: true}); err != nil {
		return 0, fmt.Errorf("export %d records: %w", len(records), err)
	}
	return len(records), nil
}
