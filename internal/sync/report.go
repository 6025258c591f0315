package sync

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type failedEntry struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func writeRunReport(reportDir string, successList []string, failedList []failedEntry) error {
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return err
	}
	if len(successList) > 0 {
		p := filepath.Join(reportDir, ".lastrun.success.json")
		data, err := json.MarshalIndent(successList, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0644); err != nil {
			return err
		}
		slog.Info("report wrote success", "path", p, "days", len(successList))
	}
	if len(failedList) > 0 {
		p := filepath.Join(reportDir, ".lastrun.failed.json")
		data, err := json.MarshalIndent(failedList, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0644); err != nil {
			return err
		}
		slog.Info("report wrote failed", "path", p, "count", len(failedList))
	}
	return nil
}

func joinFailedReasons(failedList []failedEntry) string {
	if len(failedList) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range failedList {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Date)
		b.WriteString(": ")
		b.WriteString(f.Reason)
		if i >= 4 && len(failedList) > 6 {
			b.WriteString(fmt.Sprintf(" (+%d more)", len(failedList)-5))
			break
		}
	}
	return b.String()
}
