// Package middleware contains the gin middleware shared by every route.
package middleware

import (
	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/utils"
)

// InjectTrace assigns every request a fresh trace id, stores it in the request
// context and echoes it in the X-Trace-Id response header.
func InjectTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := utils.GenerateTraceId()
		c.Set(utils.TraceIdKey.String(), traceId)
		c.Header("X-Trace-Id", traceId)
		c.Next()
	}
}
