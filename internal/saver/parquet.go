package saver

import (
	"github.com/parquet-go/parquet-go"

	"hews-sync/internal/model"
)

// ParquetSaver lưu archive snapshots dưới dạng Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(snaps []model.HealthSnapshot, path string) error {
	return parquet.WriteFile(path, snaps)
}
