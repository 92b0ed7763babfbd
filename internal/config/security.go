package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSecretKey is the placeholder signing key shipped with the repository.
// Running with it outside of development is logged loudly at startup.
const DefaultSecretKey = "your-secret-key-here-change-in-production"

// ErrInvalidAlgorithm is returned when the configured signing algorithm is not
// a supported HMAC variant.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

var validAlgorithms = []string{"HS256", "HS384", "HS512"}

// SecuritySettings holds the token signing configuration. Token lifetimes are
// minutes for access tokens and days for refresh tokens.
type SecuritySettings struct {
	SecretKey                string `env:"SECURITY_SECRET_KEY,default=your-secret-key-here-change-in-production"`
	Algorithm                string `env:"SECURITY_ALGORITHM,default=HS256"`
	AccessTokenExpireMinutes int    `env:"SECURITY_ACCESS_TOKEN_EXPIRE_MINUTES,default=30"`
	RefreshTokenExpireDays   int    `env:"SECURITY_REFRESH_TOKEN_EXPIRE_DAYS,default=30"`
}

func (s *SecuritySettings) normalize() {
	s.Algorithm = strings.ToUpper(s.Algorithm)
}

// Validate checks that the signing algorithm is a supported HMAC variant.
func (s *SecuritySettings) Validate() error {
	if !contains(validAlgorithms, s.Algorithm) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidAlgorithm, s.Algorithm, validAlgorithms)
	}
	return nil
}

// UsesDefaultSecret reports whether the placeholder signing key is still in use.
func (s *SecuritySettings) UsesDefaultSecret() bool {
	return s.SecretKey == DefaultSecretKey
}
