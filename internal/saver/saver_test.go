package saver

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hews-sync/internal/model"
)

func sampleSnapshots() []model.HealthSnapshot {
	steps := 8423
	rhr := 58
	weight := 72.5
	return []model.HealthSnapshot{{
		Date:             "2024-01-15",
		Source:           "garmin",
		FetchedAt:        "2024-01-15T06:00:00Z",
		Steps:            &steps,
		HeartRateResting: &rhr,
		Weight:           &weight,
	}}
}

func TestNewSnapshotSaver(t *testing.T) {
	assert.IsType(t, CSVSaver{}, NewSnapshotSaver("csv"))
	assert.IsType(t, ParquetSaver{}, NewSnapshotSaver("parquet"))
	assert.IsType(t, JSONSaver{}, NewSnapshotSaver("JSON"))
	assert.IsType(t, CSVSaver{}, NewSnapshotSaver("  csv "))
	assert.Nil(t, NewSnapshotSaver("xml"))
	assert.Nil(t, NewSnapshotSaver(""))
}

func TestJSONSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-01-15.json")
	snaps := sampleSnapshots()
	require.NoError(t, JSONSaver{}.Save(snaps, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []model.HealthSnapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, snaps, got)
}

func TestCSVSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-01-15.csv")
	require.NoError(t, CSVSaver{}.Save(sampleSnapshots(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])

	row := rows[1]
	assert.Equal(t, "2024-01-15", row[0])
	assert.Equal(t, "8423", row[15]) // steps
	assert.Equal(t, "58", row[4])    // heart_rate_resting
	assert.Equal(t, "72.5", row[22]) // weight
	assert.Equal(t, "", row[3])      // hrv is null → empty cell
}

func TestParquetSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-01-15.parquet")
	require.NoError(t, ParquetSaver{}.Save(sampleSnapshots(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, "json", JSONSaver{}.Extension())
	assert.Equal(t, "csv", CSVSaver{}.Extension())
	assert.Equal(t, "parquet", ParquetSaver{}.Extension())
}
