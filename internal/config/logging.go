package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidLogLevel is returned when the configured log level is unknown.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ErrInvalidLogFormat is returned when the configured log format is unknown.
var ErrInvalidLogFormat = errors.New("invalid log format")

var (
	validLogLevels  = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	validLogFormats = []string{"json", "text"}
)

// LoggingSettings holds the log level and output format.
type LoggingSettings struct {
	Level  string `env:"LOG_LEVEL,default=INFO"`
	Format string `env:"LOG_FORMAT,default=json"`
}

func (s *LoggingSettings) normalize() {
	s.Level = strings.ToUpper(s.Level)
	s.Format = strings.ToLower(s.Format)
}

// Validate checks the log level and format against their allowed values.
func (s *LoggingSettings) Validate() error {
	if !contains(validLogLevels, s.Level) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidLogLevel, s.Level, validLogLevels)
	}
	if !contains(validLogFormats, s.Format) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidLogFormat, s.Format, validLogFormats)
	}
	return nil
}

// ConfigureLogging applies the logging settings to the global logger.
func ConfigureLogging(settings *Settings) {
	switch settings.Logging.Level {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARNING":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "CRITICAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if settings.Logging.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	log.SetOutput(os.Stdout)
	log.SetReportCaller(true)
}
