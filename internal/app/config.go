package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the wire format for all calendar dates.
const dateLayout = "2006-01-02"

// Config holds application configuration from env
type Config struct {
	GarminEmail    string `validate:"required,email"`
	GarminPassword string `validate:"required"`
	StartDate      string // YYYY-MM-DD, historical mode
	EndDate        string // YYYY-MM-DD, historical mode
	DataDir        string
	SaveFormat     string // csv | parquet | json (archive files)
	Archive        bool
	LogLevel       string // debug | info | warn | error
	HTTPTimeoutSec int
}

// ConfigError is a fatal pre-flight configuration problem, reported before
// any network call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

// LoadConfig reads config from environment and validates the credential pair
// and date range up front.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GarminEmail:    os.Getenv("GARMIN_EMAIL"),
		GarminPassword: os.Getenv("GARMIN_PASSWORD"),
		StartDate:      os.Getenv("START_DATE"),
		EndDate:        os.Getenv("END_DATE"),
		DataDir:        getEnv("DATA_DIR", "data"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Archive:        getEnv("ARCHIVE", "true") != "false",
		HTTPTimeoutSec: 60,
	}
	cfg.SaveFormat = getSaveFormat()
	if t := os.Getenv("HTTP_TIMEOUT_SECONDS"); t != "" {
		if v, err := strconv.Atoi(t); err == nil && v > 0 {
			cfg.HTTPTimeoutSec = v
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].StructField() {
			case "GarminEmail":
				if verrs[0].Tag() == "email" {
					return &ConfigError{Reason: "GARMIN_EMAIL is not a valid email address"}
				}
				return &ConfigError{Reason: "GARMIN_EMAIL not set"}
			case "GarminPassword":
				return &ConfigError{Reason: "GARMIN_PASSWORD not set"}
			}
		}
		return &ConfigError{Reason: err.Error()}
	}

	if (c.StartDate == "") != (c.EndDate == "") {
		return &ConfigError{Reason: "START_DATE and END_DATE must be set together"}
	}
	if c.StartDate != "" {
		start, err := time.Parse(dateLayout, c.StartDate)
		if err != nil {
			return &ConfigError{Reason: fmt.Sprintf("START_DATE %q is not YYYY-MM-DD", c.StartDate)}
		}
		end, err := time.Parse(dateLayout, c.EndDate)
		if err != nil {
			return &ConfigError{Reason: fmt.Sprintf("END_DATE %q is not YYYY-MM-DD", c.EndDate)}
		}
		if start.After(end) {
			return &ConfigError{Reason: "START_DATE is after END_DATE"}
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getSaveFormat() string {
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		return v
	}
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}

// Historical reports whether a date range was configured.
func (c *Config) Historical() bool {
	return c.StartDate != ""
}

// OutputPath returns data/health_data.json — the published contract path.
func (c *Config) OutputPath() string {
	return filepath.Join(c.DataDir, "health_data.json")
}

// ArchiveDir returns data/garmin, where per-day archive files live.
func (c *Config) ArchiveDir() string {
	return filepath.Join(c.DataDir, "garmin")
}
