package sync

import (
	"time"

	"hews-sync/internal/app"
	"hews-sync/internal/model"
)

const dateLayout = "2006-01-02"

// Plan is the set of dates one run fetches.
type Plan struct {
	Mode  string
	Dates []time.Time // daily: [today, yesterday]; historical: range ascending
}

// BuildPlan resolves the run's dates: a configured START_DATE/END_DATE range
// means historical mode, otherwise today + yesterday.
func BuildPlan(cfg *app.Config, now time.Time) Plan {
	if !cfg.Historical() {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return Plan{
			Mode:  model.ModeDaily,
			Dates: []time.Time{today, today.AddDate(0, 0, -1)},
		}
	}
	// Range validity is checked at config load.
	start, _ := time.ParseInLocation(dateLayout, cfg.StartDate, time.UTC)
	end, _ := time.ParseInLocation(dateLayout, cfg.EndDate, time.UTC)
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return Plan{Mode: model.ModeHistorical, Dates: dates}
}
