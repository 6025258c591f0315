package garmin

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/url"
	"time"

	"hews-sync/internal/model"
)

// FetchDay fetches the aggregate metrics for one calendar date and returns
// the normalized snapshot. Each metric group is tolerated independently: a
// missing or misshapen group logs a warning and leaves its fields null. Only
// a fatal failure of the daily-summary request, or rate limiting anywhere,
// fails the whole day.
func (c *Client) FetchDay(ctx context.Context, date time.Time) (model.HealthSnapshot, error) {
	if !c.loggedIn {
		return model.HealthSnapshot{}, &AuthError{Reason: "not logged in"}
	}
	dateStr := date.Format("2006-01-02")
	snap := model.HealthSnapshot{
		Date:      dateStr,
		Source:    "garmin",
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var summary dailySummary
	err := c.getJSON(ctx, "daily summary",
		c.connectBaseURL+"/usersummary-service/usersummary/daily/"+url.PathEscape(c.displayName),
		map[string]string{"calendarDate": dateStr}, &summary)
	if err != nil {
		if isFatal(err) {
			return model.HealthSnapshot{}, err
		}
		slog.Warn("garmin metric group failed", "group", "stats", "date", dateStr, "error", err)
	} else {
		applySummary(&snap, &summary)
	}

	groups := []struct {
		name  string
		fetch func(context.Context, string, *model.HealthSnapshot) error
	}{
		{"hrv", c.fetchHRV},
		{"stress", c.fetchStress},
		{"sleep", c.fetchSleep},
		{"respiration", c.fetchRespiration},
		{"body", c.fetchBodyComposition},
	}
	for _, g := range groups {
		if err := g.fetch(ctx, dateStr, &snap); err != nil {
			var rl *RateLimitError
			if errors.As(err, &rl) {
				// Backoff is exhausted; every remaining call would hit the
				// same limit, so give up on the day.
				return model.HealthSnapshot{}, err
			}
			slog.Warn("garmin metric group failed", "group", g.name, "date", dateStr, "error", err)
		}
	}
	return snap, nil
}

// isFatal reports whether err cannot be degraded to null fields.
func isFatal(err error) bool {
	var te *TransportError
	var rl *RateLimitError
	var ae *AuthError
	return errors.As(err, &te) || errors.As(err, &rl) || errors.As(err, &ae)
}

func (c *Client) fetchHRV(ctx context.Context, dateStr string, snap *model.HealthSnapshot) error {
	var hrv hrvResponse
	if err := c.getJSON(ctx, "hrv", c.connectBaseURL+"/hrv-service/hrv/"+dateStr, nil, &hrv); err != nil {
		return err
	}
	if s := hrv.HRVSummary; s != nil {
		if s.LastNightAvg != nil {
			snap.HRV = s.LastNightAvg
		} else {
			snap.HRV = s.WeeklyAvg
		}
	}
	return nil
}

func (c *Client) fetchStress(ctx context.Context, dateStr string, snap *model.HealthSnapshot) error {
	var stress stressResponse
	if err := c.getJSON(ctx, "stress", c.connectBaseURL+"/wellness-service/wellness/dailyStress/"+dateStr, nil, &stress); err != nil {
		return err
	}
	if stress.AvgStressLevel != nil && *stress.AvgStressLevel >= 0 {
		snap.StressAvg = stress.AvgStressLevel
	}
	return nil
}

func (c *Client) fetchSleep(ctx context.Context, dateStr string, snap *model.HealthSnapshot) error {
	var sleep sleepResponse
	err := c.getJSON(ctx, "sleep",
		c.connectBaseURL+"/wellness-service/wellness/dailySleepData/"+url.PathEscape(c.displayName),
		map[string]string{"date": dateStr, "nonSleepBufferMinutes": "60"}, &sleep)
	if err != nil {
		return err
	}
	applySleep(snap, sleep.DailySleepDTO)
	return nil
}

func (c *Client) fetchRespiration(ctx context.Context, dateStr string, snap *model.HealthSnapshot) error {
	var r respirationResponse
	if err := c.getJSON(ctx, "respiration", c.connectBaseURL+"/wellness-service/wellness/daily/respiration/"+dateStr, nil, &r); err != nil {
		return err
	}
	if r.AvgWakingRespirationValue != nil {
		snap.Respiration = r.AvgWakingRespirationValue
	} else {
		snap.Respiration = r.AvgSleepRespirationValue
	}
	return nil
}

func (c *Client) fetchBodyComposition(ctx context.Context, dateStr string, snap *model.HealthSnapshot) error {
	var body bodyComposition
	if err := c.getJSON(ctx, "body composition", c.connectBaseURL+"/weight-service/weight/dayview/"+dateStr, nil, &body); err != nil {
		return err
	}
	applyBodyComposition(snap, &body)
	return nil
}

// applySummary maps the daily stats payload onto the snapshot. Weighted
// intensity minutes: vigorous count double.
func applySummary(snap *model.HealthSnapshot, s *dailySummary) {
	snap.Steps = s.TotalSteps
	snap.HeartRateResting = s.RestingHeartRate
	snap.HeartRateAvg = s.AverageHeartRate
	snap.Floors = s.FloorsClimbed
	snap.Calories = roundToInt(s.TotalKilocalories)
	snap.CaloriesActive = roundToInt(s.ActiveKilocalories)

	moderate, vigorous := 0, 0
	if s.ModerateIntensityMinutes != nil {
		moderate = *s.ModerateIntensityMinutes
	}
	if s.VigorousIntensityMinutes != nil {
		vigorous = *s.VigorousIntensityMinutes
	}
	snap.IntensityMinutesModerate = &moderate
	snap.IntensityMinutesVigorous = &vigorous
	total := moderate + vigorous*2
	snap.IntensityMinutes = &total
}

func applySleep(snap *model.HealthSnapshot, s *dailySleepDTO) {
	if s == nil {
		return
	}
	snap.SleepDuration = secondsToMinutes(s.SleepTimeSeconds)
	snap.SleepDeep = secondsToMinutes(s.DeepSleepSeconds)
	snap.SleepLight = secondsToMinutes(s.LightSleepSeconds)
	snap.SleepRem = secondsToMinutes(s.RemSleepSeconds)
	snap.SleepAwake = secondsToMinutes(s.AwakeSleepSeconds)
	snap.SleepInterruptions = s.AwakeCount
	if s.SleepScores != nil && s.SleepScores.Overall != nil {
		snap.SleepScore = s.SleepScores.Overall.Value
	}
}

func applyBodyComposition(snap *model.HealthSnapshot, b *bodyComposition) {
	// No weight means the scale sent nothing for the day.
	if b.Weight == nil {
		return
	}
	snap.Weight = gramsToKg(b.Weight)
	snap.BMI = round1(b.BMI)
	snap.BodyFat = round1(b.BodyFat)
	snap.MuscleMass = gramsToKg(b.MuscleMass)
	snap.VisceralFat = b.VisceralFat
	snap.BodyWater = round1(b.BodyWater)
	snap.BoneMass = gramsToKg(b.BoneMass)
}

func secondsToMinutes(secs *int) *int {
	if secs == nil {
		return nil
	}
	m := *secs / 60
	return &m
}

func roundToInt(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*10) / 10
	return &r
}

func gramsToKg(grams *float64) *float64 {
	if grams == nil {
		return nil
	}
	kg := math.Round(*grams/1000*10) / 10
	return &kg
}
