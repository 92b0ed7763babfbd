package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

// RequireAuth is the authentication placeholder guarding routes that ship
// before the account system does. It rejects every request.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.WriteAndLogError(c, schemas.AuthenticationNotImplemented, http.StatusUnauthorized,
			errors.New("authentication requested before the account system exists"))
	}
}

// RequireRole is the authorization placeholder. It rejects every request
// regardless of the requested role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.WriteAndLogError(c, schemas.AuthorizationNotImplemented, http.StatusForbidden,
			errors.New("authorization for role "+role+" requested before roles exist"))
	}
}
