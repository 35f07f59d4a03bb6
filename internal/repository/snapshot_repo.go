package repository

import (
	"context"
	"fmt"
	"os"

	"process_control_sim/internal/csvlog"
	"process_control_sim/internal/models"
)

// SnapshotCSV writes a batch to a fixed CSV path, truncating any previous
// file. The parent directory must already exist.
type SnapshotCSV struct {
	path string
	opts csvlog.Options
}

func NewSnapshotCSV(path string, opts csvlog.Options) *SnapshotCSV {
	return &SnapshotCSV{path: path, opts: opts}
}

var _ SnapshotRepo = (*SnapshotCSV)(nil)

// Path returns the target file.
func (r *SnapshotCSV) Path() string { return r.path }

// Save replaces the snapshot file with records.
func (r *SnapshotCSV) Save(ctx context.Context, records []models.TelemetryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create snapshot %q: %w", r.path, err)
	}
	if err := csvlog.Encode(f, records, r.opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("write snapshot %q: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot %q: %w", r.path, err)
	}
	return nil
}
