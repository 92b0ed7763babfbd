package middleware

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"larp-manager-server/internal/utils"
)

// LogRequest logs every inbound request with its trace id and request
// metadata attached.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := log.WithFields(log.Fields{
			"service":   utils.ServiceName,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"clientIp":  c.ClientIP(),
			"userAgent": c.Request.UserAgent(),
		})

		if traceId, ok := c.Value(utils.TraceIdKey.String()).(string); ok {
			entry = entry.WithField("traceId", traceId)
		}

		utils.LogEntry(entry, "info", "Request received: "+c.Request.Method+" "+c.Request.URL.Path)
		c.Next()
	}
}
