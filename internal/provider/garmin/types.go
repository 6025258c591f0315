package garmin

// Raw payloads from the Garmin Connect private API. Only the fields we read
// are declared; everything is pointer-typed because the provider freely
// omits keys for days without data.

type socialProfile struct {
	DisplayName string `json:"displayName"`
}

// dailySummary is the usersummary-service daily stats payload.
type dailySummary struct {
	TotalSteps               *int     `json:"totalSteps"`
	RestingHeartRate         *int     `json:"restingHeartRate"`
	AverageHeartRate         *int     `json:"averageHeartRate"`
	FloorsClimbed            *int     `json:"floorsClimbed"`
	TotalKilocalories        *float64 `json:"totalKilocalories"`
	ActiveKilocalories       *float64 `json:"activeKilocalories"`
	ModerateIntensityMinutes *int     `json:"moderateIntensityMinutes"`
	VigorousIntensityMinutes *int     `json:"vigorousIntensityMinutes"`
}

type hrvResponse struct {
	HRVSummary *hrvSummary `json:"hrvSummary"`
}

type hrvSummary struct {
	LastNightAvg *float64 `json:"lastNightAvg"`
	WeeklyAvg    *float64 `json:"weeklyAvg"`
}

type stressResponse struct {
	// Garmin sends -1 when no stress data was recorded.
	AvgStressLevel *int `json:"avgStressLevel"`
}

type sleepResponse struct {
	DailySleepDTO *dailySleepDTO `json:"dailySleepDTO"`
}

type dailySleepDTO struct {
	SleepTimeSeconds  *int         `json:"sleepTimeSeconds"`
	DeepSleepSeconds  *int         `json:"deepSleepSeconds"`
	LightSleepSeconds *int         `json:"lightSleepSeconds"`
	RemSleepSeconds   *int         `json:"remSleepSeconds"`
	AwakeSleepSeconds *int         `json:"awakeSleepSeconds"`
	AwakeCount        *int         `json:"awakeCount"`
	SleepScores       *sleepScores `json:"sleepScores"`
}

type sleepScores struct {
	Overall *sleepScoreValue `json:"overall"`
}

type sleepScoreValue struct {
	Value *int `json:"value"`
}

type respirationResponse struct {
	AvgWakingRespirationValue *float64 `json:"avgWakingRespirationValue"`
	AvgSleepRespirationValue  *float64 `json:"avgSleepRespirationValue"`
}

// bodyComposition is the weight-service dayview payload. Masses arrive in
// grams, percentages in 0-100.
type bodyComposition struct {
	Weight      *float64 `json:"weight"`
	BMI         *float64 `json:"bmi"`
	BodyFat     *float64 `json:"bodyFat"`
	MuscleMass  *float64 `json:"muscleMass"`
	VisceralFat *int     `json:"visceralFat"`
	BodyWater   *float64 `json:"bodyWater"`
	BoneMass    *float64 `json:"boneMass"`
}
