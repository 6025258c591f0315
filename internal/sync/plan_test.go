package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hews-sync/internal/app"
	"hews-sync/internal/model"
)

func TestBuildPlan(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	t.Run("DailyMode", func(t *testing.T) {
		cfg := &app.Config{}
		plan := BuildPlan(cfg, now)
		assert.Equal(t, model.ModeDaily, plan.Mode)
		require.Len(t, plan.Dates, 2)
		assert.Equal(t, "2024-01-15", plan.Dates[0].Format(dateLayout))
		assert.Equal(t, "2024-01-14", plan.Dates[1].Format(dateLayout))
	})

	t.Run("HistoricalMode", func(t *testing.T) {
		cfg := &app.Config{StartDate: "2024-01-10", EndDate: "2024-01-12"}
		plan := BuildPlan(cfg, now)
		assert.Equal(t, model.ModeHistorical, plan.Mode)
		require.Len(t, plan.Dates, 3)
		assert.Equal(t, "2024-01-10", plan.Dates[0].Format(dateLayout))
		assert.Equal(t, "2024-01-12", plan.Dates[2].Format(dateLayout))
	})

	t.Run("SingleDayRange", func(t *testing.T) {
		cfg := &app.Config{StartDate: "2024-01-10", EndDate: "2024-01-10"}
		plan := BuildPlan(cfg, now)
		require.Len(t, plan.Dates, 1)
	})
}
