package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"hews-sync/internal/app"
	"hews-sync/internal/model"
	"hews-sync/internal/provider"
	"hews-sync/internal/saver"
)

// Run executes one sync cycle: login, fetch every planned day, archive each
// snapshot, write the run report, then atomically replace the published
// document. A non-nil return means the run must exit non-zero; the previous
// published file is left untouched in that case.
func Run(ctx context.Context, cfg *app.Config, dp provider.HealthProvider, ss saver.SnapshotSaver) error {
	now := time.Now().UTC()
	plan := BuildPlan(cfg, now)
	slog.Info("sync plan", "mode", plan.Mode, "days", len(plan.Dates))

	if err := dp.Login(ctx); err != nil {
		return fmt.Errorf("login to %s: %w", dp.GetName(), err)
	}

	doc := model.SyncDocument{
		LastSync: now.Format(time.RFC3339),
		Mode:     plan.Mode,
		History:  []model.HealthSnapshot{},
	}
	if plan.Mode == model.ModeHistorical {
		doc.StartDate = cfg.StartDate
		doc.EndDate = cfg.EndDate
	}

	var successList []string
	var failedList []failedEntry
	defer func() {
		if len(successList) > 0 || len(failedList) > 0 {
			if err := writeRunReport(cfg.ArchiveDir(), successList, failedList); err != nil {
				slog.Warn("could not write run report", "error", err)
			}
		}
	}()

	for i, date := range plan.Dates {
		dateStr := date.Format(dateLayout)
		snap, err := dp.FetchDay(ctx, date)
		if err != nil {
			failedList = append(failedList, failedEntry{Date: dateStr, Reason: err.Error()})
			slog.Error("fetch fail", "date", dateStr, "reason", err)
			if plan.Mode == model.ModeDaily {
				// Daily mode has no partial result worth publishing.
				return fmt.Errorf("fetch %s: %w", dateStr, err)
			}
			continue
		}
		successList = append(successList, dateStr)
		slog.Info("fetch ok", "date", dateStr)

		switch plan.Mode {
		case model.ModeDaily:
			if i == 0 {
				today := snap
				doc.Today = &today
			} else {
				yesterday := snap
				doc.Yesterday = &yesterday
			}
		case model.ModeHistorical:
			doc.History = append(doc.History, snap)
		}
		writeArchive(cfg, ss, snap)
	}

	if plan.Mode == model.ModeHistorical && len(successList) == 0 {
		return fmt.Errorf("all %d days failed: %s", len(plan.Dates), joinFailedReasons(failedList))
	}

	if err := WriteDocumentAtomic(&doc, cfg.OutputPath()); err != nil {
		return err
	}
	slog.Info("sync done", "mode", plan.Mode, "success", len(successList), "failed", len(failedList), "output", cfg.OutputPath())
	return nil
}

// writeArchive persists one per-day archive file. Existing files are never
// rewritten, so the archive keeps the first fetch of each day. Failures are
// logged, not fatal: the published document is the contract, the archive is
// trend retention.
func writeArchive(cfg *app.Config, ss saver.SnapshotSaver, snap model.HealthSnapshot) {
	if !cfg.Archive || ss == nil {
		return
	}
	dir := cfg.ArchiveDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Warn("archive: cannot create folder", "dir", dir, "error", err)
		return
	}
	path := filepath.Join(dir, snap.Date+"."+ss.Extension())
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := ss.Save([]model.HealthSnapshot{snap}, path); err != nil {
		slog.Warn("archive: save failed", "path", path, "error", err)
	} else {
		slog.Info("archive saved", "path", path)
	}
}
