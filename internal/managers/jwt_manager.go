package managers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

// JWTMgr defines the interface for JWT management.
// It provides methods for generating and validating tokens and the middleware
// guarding authenticated routes.
type JWTMgr interface {
	GenerateJWT(userId, username string, refresh bool) (string, error)
	GenerateTokenPair(userId, username string) (*schemas.TokenPairDTO, error)
	ValidateJWT(tokenString string) (jwt.Claims, error)
	JWTMiddleware() gin.HandlerFunc
}

// JWTManager handles JWT generation, signing, and validation. Tokens are
// signed with the HMAC variant configured in the security settings.
type JWTManager struct {
	secretKey       []byte
	signingMethod   jwt.SigningMethod
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTManager creates a new JWTManager from the security settings.
func NewJWTManager(settings *config.Settings) (JWTMgr, error) {
	log.Info("Initializing JWT manager")

	method := jwt.GetSigningMethod(settings.Security.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", settings.Security.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC variant", settings.Security.Algorithm)
	}

	if settings.Security.UsesDefaultSecret() {
		if settings.IsProduction() {
			log.Error("Running with the default secret key in production, set SECURITY_SECRET_KEY")
		} else {
			log.Warn("Running with the default secret key")
		}
	}

	return &JWTManager{
		secretKey:       []byte(settings.Security.SecretKey),
		signingMethod:   method,
		accessTokenTTL:  time.Duration(settings.Security.AccessTokenExpireMinutes) * time.Minute,
		refreshTokenTTL: time.Duration(settings.Security.RefreshTokenExpireDays) * 24 * time.Hour,
	}, nil
}

// generateClaims generates the claims for an access or refresh token.
func (jm *JWTManager) generateClaims(userId, username string, refresh bool) jwt.Claims {
	ttl := jm.accessTokenTTL
	if refresh {
		ttl = jm.refreshTokenTTL
	}

	now := time.Now()
	return jwt.MapClaims{
		"iss":      utils.ServiceName,
		"sub":      userId,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
		"refresh":  refresh,
	}
}

// GenerateJWT generates a new signed token for the given user. Refresh tokens
// carry a longer lifetime and are rejected by the middleware.
func (jm *JWTManager) GenerateJWT(userId, username string, refresh bool) (string, error) {
	token := jwt.NewWithClaims(jm.signingMethod, jm.generateClaims(userId, username, refresh))
	return token.SignedString(jm.secretKey)
}

// GenerateTokenPair generates an access and a refresh token for the given user.
func (jm *JWTManager) GenerateTokenPair(userId, username string) (*schemas.TokenPairDTO, error) {
	accessToken, err := jm.GenerateJWT(userId, username, false)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jm.GenerateJWT(userId, username, true)
	if err != nil {
		return nil, err
	}

	return &schemas.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateJWT validates the given JWT and returns the claims if valid.
func (jm *JWTManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Verify the signing method
		if token.Method.Alg() != jm.signingMethod.Alg() {
			return nil, fmt.Errorf("invalid signing method %q", token.Method.Alg())
		}

		return jm.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return token.Claims, nil
}

// JWTMiddleware returns the middleware that guards authenticated routes. It
// expects a bearer access token and stores its claims in the request context.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized,
				errors.New("missing or malformed authorization header"))
			return
		}

		claims, err := jm.ValidateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, err)
			return
		}

		mapClaims, ok := claims.(jwt.MapClaims)
		if !ok {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized,
				errors.New("unexpected claims format"))
			return
		}

		if refresh, _ := mapClaims["refresh"].(bool); refresh {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized,
				errors.New("refresh token cannot be used for authentication"))
			return
		}

		c.Set(utils.ClaimsKey.String(), mapClaims)
		c.Next()
	}
}
