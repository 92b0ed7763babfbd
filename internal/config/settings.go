// Package config resolves the application settings from the environment.
// Settings are decoded once at startup, normalized and validated, and treated
// as immutable afterwards.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// DefaultEnvFile is the env file loaded by Load before decoding the environment.
const DefaultEnvFile = ".env"

// ErrInvalidEnvironment is returned when the configured environment is not one
// of the known deployment environments.
var ErrInvalidEnvironment = errors.New("invalid environment")

var validEnvironments = []string{"development", "staging", "production", "testing"}

// Settings is the root of the configuration tree. Every field can be
// overridden through the environment variable named in its tag.
type Settings struct {
	ProjectName          string   `env:"PROJECT_NAME,default=LARP Manager Server"`
	Debug                bool     `env:"DEBUG,default=false"`
	APIV1Prefix          string   `env:"API_V1_PREFIX,default=/api/v1"`
	Environment          string   `env:"ENVIRONMENT,default=development"`
	CORSOrigins          []string `env:"CORS_ORIGINS,default=http://localhost:3000;http://localhost:8080"`
	CORSAllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS,default=true"`
	CORSAllowMethods     []string `env:"CORS_ALLOW_METHODS,default=*"`
	CORSAllowHeaders     []string `env:"CORS_ALLOW_HEADERS,default=*"`

	Database DatabaseSettings
	Security SecuritySettings
	Logging  LoggingSettings
}

// Load resolves the settings from the default env file and the environment.
func Load() (*Settings, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom resolves the settings from the given env file and the environment.
// A missing env file is not an error; the process environment always wins over
// file contents.
func LoadFrom(envFile string) (*Settings, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from ", envFile)
	}

	settings := &Settings{}
	if err := envdecode.Decode(settings); err != nil {
		return nil, fmt.Errorf("decoding settings from environment: %w", err)
	}

	settings.normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// normalize folds case-insensitive values onto their canonical spelling.
func (s *Settings) normalize() {
	s.Environment = strings.ToLower(s.Environment)
	s.Security.normalize()
	s.Logging.normalize()
}

// Validate checks every enumerated setting against its allowed values.
func (s *Settings) Validate() error {
	if !contains(validEnvironments, s.Environment) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidEnvironment, s.Environment, validEnvironments)
	}
	if err := s.Security.Validate(); err != nil {
		return err
	}
	return s.Logging.Validate()
}

// IsDevelopment reports whether the server runs in the development environment.
func (s *Settings) IsDevelopment() bool {
	return s.Environment == "development"
}

// IsProduction reports whether the server runs in the production environment.
func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

// IsTesting reports whether the server runs in the testing environment.
func (s *Settings) IsTesting() bool {
	return s.Environment == "testing"
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
