package sync

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hews-sync/internal/model"
)

func intPtr(v int) *int { return &v }

func sampleDoc() *model.SyncDocument {
	snap := model.HealthSnapshot{
		Date:             "2024-01-15",
		Source:           "garmin",
		FetchedAt:        "2024-01-15T06:00:00Z",
		Steps:            intPtr(8423),
		HeartRateResting: intPtr(58),
	}
	return &model.SyncDocument{
		LastSync: "2024-01-15T06:00:00Z",
		Mode:     model.ModeDaily,
		Today:    &snap,
		History:  []model.HealthSnapshot{},
	}
}

func TestWriteDocumentAtomic(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "health_data.json")
		doc := sampleDoc()
		require.NoError(t, WriteDocumentAtomic(doc, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got model.SyncDocument
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *doc, got)
	})

	t.Run("NullFieldsStayNull", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "health_data.json")
		require.NoError(t, WriteDocumentAtomic(sampleDoc(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		body := string(data)
		// Missing metrics are published as explicit nulls, never omitted.
		assert.Contains(t, body, `"sleep_duration": null`)
		assert.Contains(t, body, `"hrv": null`)
		assert.Contains(t, body, `"steps": 8423`)
		assert.Contains(t, body, `"heart_rate_resting": 58`)
		assert.Contains(t, body, `"date": "2024-01-15"`)
	})

	t.Run("OverwritesPrevious", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "health_data.json")
		require.NoError(t, WriteDocumentAtomic(sampleDoc(), path))

		doc2 := sampleDoc()
		doc2.Today.Steps = intPtr(100)
		require.NoError(t, WriteDocumentAtomic(doc2, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got model.SyncDocument
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, 100, *got.Today.Steps)
	})

	t.Run("NoTempFilesLeftBehind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "health_data.json")
		require.NoError(t, WriteDocumentAtomic(sampleDoc(), path))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
		}
	})

	t.Run("FailureLeavesExistingFileUntouched", func(t *testing.T) {
		dir := t.TempDir()
		// The parent "data" path is a regular file, so the write cannot even
		// create its directory; the file's content must survive.
		parent := filepath.Join(dir, "data")
		require.NoError(t, os.WriteFile(parent, []byte("previous content"), 0644))

		err := WriteDocumentAtomic(sampleDoc(), filepath.Join(parent, "health_data.json"))
		require.Error(t, err)

		data, readErr := os.ReadFile(parent)
		require.NoError(t, readErr)
		assert.Equal(t, "previous content", string(data))
	})
}
