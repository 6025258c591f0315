package model

// HealthSnapshot is the normalized record of one day's health metrics.
// Dùng chung cho provider, saver và serialization (json, parquet).
//
// Field names and types are a published contract: the downstream plugin
// reads the output file over raw HTTP, so renaming or retyping a field is
// a breaking change. Metric fields are pointers so a missing metric
// serializes as null instead of a zero value.
type HealthSnapshot struct {
	Date      string `json:"date" parquet:"date"` // YYYY-MM-DD
	Source    string `json:"source" parquet:"source"`
	FetchedAt string `json:"fetched_at" parquet:"fetched_at"` // RFC3339

	// Vital signs
	HRV              *float64 `json:"hrv" parquet:"hrv,optional"` // ms
	HeartRateResting *int     `json:"heart_rate_resting" parquet:"heart_rate_resting,optional"`
	HeartRateAvg     *int     `json:"heart_rate_avg" parquet:"heart_rate_avg,optional"`
	StressAvg        *int     `json:"stress_avg" parquet:"stress_avg,optional"`
	Respiration      *float64 `json:"respiration" parquet:"respiration,optional"` // breaths/min

	// Sleep (durations in minutes)
	SleepDuration      *int `json:"sleep_duration" parquet:"sleep_duration,optional"`
	SleepDeep          *int `json:"sleep_deep" parquet:"sleep_deep,optional"`
	SleepLight         *int `json:"sleep_light" parquet:"sleep_light,optional"`
	SleepRem           *int `json:"sleep_rem" parquet:"sleep_rem,optional"`
	SleepAwake         *int `json:"sleep_awake" parquet:"sleep_awake,optional"`
	SleepScore         *int `json:"sleep_score" parquet:"sleep_score,optional"`
	SleepInterruptions *int `json:"sleep_interruptions" parquet:"sleep_interruptions,optional"`

	// Activity
	Steps                    *int `json:"steps" parquet:"steps,optional"`
	Floors                   *int `json:"floors" parquet:"floors,optional"`
	IntensityMinutes         *int `json:"intensity_minutes" parquet:"intensity_minutes,optional"`
	IntensityMinutesModerate *int `json:"intensity_minutes_moderate" parquet:"intensity_minutes_moderate,optional"`
	IntensityMinutesVigorous *int `json:"intensity_minutes_vigorous" parquet:"intensity_minutes_vigorous,optional"`
	Calories                 *int `json:"calories" parquet:"calories,optional"`
	CaloriesActive           *int `json:"calories_active" parquet:"calories_active,optional"`

	// Body composition (masses in kg, percentages 0-100)
	Weight      *float64 `json:"weight" parquet:"weight,optional"`
	BMI         *float64 `json:"bmi" parquet:"bmi,optional"`
	BodyFat     *float64 `json:"body_fat" parquet:"body_fat,optional"`
	MuscleMass  *float64 `json:"muscle_mass" parquet:"muscle_mass,optional"`
	VisceralFat *int     `json:"visceral_fat" parquet:"visceral_fat,optional"`
	BodyWater   *float64 `json:"body_water" parquet:"body_water,optional"`
	BoneMass    *float64 `json:"bone_mass" parquet:"bone_mass,optional"`
}
