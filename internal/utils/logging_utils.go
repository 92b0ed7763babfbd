package utils

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ServiceName identifies this service in logs and health responses.
const ServiceName = "larp-manager-server"

// ServiceVersion is the version reported by the metadata and health endpoints.
const ServiceVersion = "1.0.0"

// GenerateTraceId returns a fresh trace id for an inbound request.
func GenerateTraceId() string {
	return uuid.New().String()
}

// LogEntry logs the message on the given entry at the given level.
func LogEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	case "panic":
		entry.Panic(message)
	default:
		entry.Info(message)
	}
}

// LogMessage logs the message with the service field attached.
func LogMessage(level, message string) {
	entry := log.WithFields(log.Fields{
		"service": ServiceName,
	})

	LogEntry(entry, level, message)
}

// LogMessageWithFields logs the message with the service field and, when the
// context carries one, the trace id of the current request.
func LogMessageWithFields(ctx context.Context, level, message string) {
	entry := log.WithFields(log.Fields{
		"service": ServiceName,
	})

	if traceId, ok := ctx.Value(TraceIdKey.String()).(string); ok {
		entry = entry.WithField("traceId", traceId)
	}

	LogEntry(entry, level, message)
}
