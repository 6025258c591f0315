package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"hews-sync/internal/model"
)

// CSVSaver lưu archive snapshots dưới dạng CSV. Null metrics become empty cells.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

var csvHeader = []string{
	"date", "source", "fetched_at",
	"hrv", "heart_rate_resting", "heart_rate_avg", "stress_avg", "respiration",
	"sleep_duration", "sleep_deep", "sleep_light", "sleep_rem", "sleep_awake",
	"sleep_score", "sleep_interruptions",
	"steps", "floors", "intensity_minutes", "intensity_minutes_moderate",
	"intensity_minutes_vigorous", "calories", "calories_active",
	"weight", "bmi", "body_fat", "muscle_mass", "visceral_fat", "body_water", "bone_mass",
}

func (CSVSaver) Save(snaps []model.HealthSnapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range snaps {
		if err := w.Write([]string{
			s.Date,
			s.Source,
			s.FetchedAt,
			floatCell(s.HRV),
			intCell(s.HeartRateResting),
			intCell(s.HeartRateAvg),
			intCell(s.StressAvg),
			floatCell(s.Respiration),
			intCell(s.SleepDuration),
			intCell(s.SleepDeep),
			intCell(s.SleepLight),
			intCell(s.SleepRem),
			intCell(s.SleepAwake),
			intCell(s.SleepScore),
			intCell(s.SleepInterruptions),
			intCell(s.Steps),
			intCell(s.Floors),
			intCell(s.IntensityMinutes),
			intCell(s.IntensityMinutesModerate),
			intCell(s.IntensityMinutesVigorous),
			intCell(s.Calories),
			intCell(s.CaloriesActive),
			floatCell(s.Weight),
			floatCell(s.BMI),
			floatCell(s.BodyFat),
			floatCell(s.MuscleMass),
			intCell(s.VisceralFat),
			floatCell(s.BodyWater),
			floatCell(s.BoneMass),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
