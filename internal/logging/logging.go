// Package logging configures the process-wide zerolog logger for the
// ardudeck tools.
package logging

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "ARDUDECK_LOG_LEVEL"
	EnvLogTimestamp = "ARDUDECK_LOG_TIMESTAMP"
	EnvLogNoColor   = "ARDUDECK_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

func ConfigureRuntime(app string) {
	Configure(ProfileRuntime, app)
}

func ConfigureTests() {
	Configure(ProfileTest, "test")
}

// Configure installs the global logger once; later calls are no-ops so test
// helpers and commands can both call it safely.
func Configure(profile Profile, app string) {
	configureOnce.Do(func() {
		level := zerolog.InfoLevel
		timestamp := true
		if profile == ProfileTest {
			level = zerolog.DebugLevel
			timestamp = false
		}
		applyEnvOverrides(&level, &timestamp)

		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    noColorFromEnv(),
		}
		logger := zerolog.New(output).Level(level).With().Str("app", app).Logger()
		if timestamp {
			logger = logger.With().Timestamp().Logger()
		}
		log.Logger = logger
	})
}

func applyEnvOverrides(level *zerolog.Level, timestamp *bool) {
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			*level = parsed
		}
	}
	if raw := os.Getenv(EnvLogTimestamp); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			*timestamp = parsed
		}
	}
}

func noColorFromEnv() bool {
	raw := os.Getenv(EnvLogNoColor)
	if raw == "" {
		return false
	}
	parsed, err := strconv.ParseBool(raw)
	return err == nil && parsed
}
