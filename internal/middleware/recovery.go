package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

// Recovery turns handler panics into a 500 response. In debug mode the
// response carries the panic detail; otherwise clients get the generic
// catalog error.
func Recovery(settings *config.Settings) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("panic recovered: %v", recovered)
		utils.LogMessageWithFields(c, "error", err.Error())

		errorDto := &schemas.ErrorDTO{Error: *schemas.InternalServerError}
		if settings.Debug {
			errorDto.Detail = fmt.Sprintf("%v", recovered)
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, errorDto)
	})
}
