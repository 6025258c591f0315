package saver

import (
	"strings"

	"hews-sync/internal/model"
)

// SnapshotSaver là abstraction cho lưu archive snapshots.
// High-level (main) inject implementation; low-level (sync) chỉ phụ thuộc interface — DIP.
type SnapshotSaver interface {
	Save(snaps []model.HealthSnapshot, path string) error
	Extension() string
}

// NewSnapshotSaver creates implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewSnapshotSaver(format string) SnapshotSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
