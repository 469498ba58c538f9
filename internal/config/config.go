package config

import (
	"os"
	"strconv"

	"hypotest/domain/ttest"
	"hypotest/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Test   TestConfig
	Report ReportConfig
	Data   DataConfig
	Log    LogConfig
}

// TestConfig holds the defaults applied to every t-test
type TestConfig struct {
	Alpha       float64 `validate:"gt=0,lt=1"`
	Verbose     bool
	Alternative string `validate:"oneof=two-sided less greater"`
}

// ReportConfig holds report rendering settings
type ReportConfig struct {
	Format string `validate:"oneof=text markdown html json"`
}

// DataConfig holds sample ingestion settings
type DataConfig struct {
	Sheet string `validate:"required"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string // ERROR, WARN, INFO or DEBUG; see logging.ParseLevel
}

var validate = validator.New()

// LoadDotEnv loads variables from the given .env files (default ".env") without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "failed to load %s", f)
		}
	}
	return nil
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	defaults := ttest.DefaultConfig()

	config := &Config{
		Test: TestConfig{
			Alpha:       getEnvFloatOrDefault("HYPOTEST_ALPHA", defaults.Alpha),
			Verbose:     getEnvBoolOrDefault("HYPOTEST_VERBOSE", defaults.Verbose),
			Alternative: getEnvOrDefault("HYPOTEST_ALTERNATIVE", string(defaults.Alternative)),
		},
		Report: ReportConfig{
			Format: getEnvOrDefault("HYPOTEST_REPORT_FORMAT", "text"),
		},
		Data: DataConfig{
			Sheet: getEnvOrDefault("HYPOTEST_SHEET", "Sheet1"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("HYPOTEST_LOG_LEVEL", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks every field against its validation tag
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.ConfigInvalid("%v", err)
	}
	return nil
}

// TestDefaults converts the loaded settings into a per-call ttest.Config
func (c *Config) TestDefaults() ttest.Config {
	return ttest.Config{
		Alpha:       c.Test.Alpha,
		Verbose:     c.Test.Verbose,
		Alternative: ttest.Alternative(c.Test.Alternative),
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
