package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hews-sync/internal/model"
)

// WriteDocumentAtomic writes the published document as indented UTF-8 JSON,
// creating parent directories if absent. The write goes to a temp file in the
// target directory followed by a rename, so a failed run never leaves the
// previous output truncated or half-written.
func WriteDocumentAtomic(doc *model.SyncDocument, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".health_data-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace output file: %w", err)
	}
	return nil
}
