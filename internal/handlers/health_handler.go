// Package handlers contains the request handlers behind the routes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/managers"
	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

// HealthHdl defines the interface for the health and probe endpoints.
type HealthHdl interface {
	HealthCheck(c *gin.Context)
	DatabaseHealthCheck(c *gin.Context)
	ReadinessCheck(c *gin.Context)
	LivenessCheck(c *gin.Context)
}

// HealthHandler serves the health and probe endpoints. The database probes
// delegate to the database manager; liveness never touches the database.
type HealthHandler struct {
	DatabaseManager managers.DatabaseMgr
}

// NewHealthHandler returns a new HealthHandler backed by the given database
// manager.
func NewHealthHandler(databaseManager managers.DatabaseMgr) HealthHdl {
	return &HealthHandler{
		DatabaseManager: databaseManager,
	}
}

// HealthCheck reports the basic service health without probing dependencies.
func (handler *HealthHandler) HealthCheck(c *gin.Context) {
	utils.WriteAndLogResponse(c, &schemas.HealthDTO{
		Status:  schemas.HealthStatusHealthy,
		Service: utils.ServiceName,
		Version: utils.ServiceVersion,
	}, http.StatusOK)
}

// DatabaseHealthCheck probes the database and maps an unhealthy result onto
// 503 so load balancers can act on it.
func (handler *HealthHandler) DatabaseHealthCheck(c *gin.Context) {
	health := handler.DatabaseManager.HealthCheck(c.Request.Context())

	statusCode := http.StatusOK
	if !health.Healthy() {
		statusCode = http.StatusServiceUnavailable
	}

	utils.WriteAndLogResponse(c, &schemas.DatabaseHealthDTO{
		Status:   health.Status,
		Database: health,
	}, statusCode)
}

// ReadinessCheck reports whether the service is ready to accept traffic,
// which requires a healthy database.
func (handler *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := handler.DatabaseManager.HealthCheck(c.Request.Context())

	if !health.Healthy() {
		utils.WriteAndLogResponse(c, &schemas.ReadinessDTO{
			Status:   schemas.StatusNotReady,
			Reason:   "database unhealthy",
			Database: health,
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.ReadinessDTO{
		Status:   schemas.StatusReady,
		Service:  utils.ServiceName,
		Database: health,
	}, http.StatusOK)
}

// LivenessCheck reports that the process is alive. It must stay free of
// database calls so a degraded database does not get the process restarted.
func (handler *HealthHandler) LivenessCheck(c *gin.Context) {
	utils.WriteAndLogResponse(c, &schemas.LivenessDTO{
		Status:  schemas.StatusAlive,
		Service: utils.ServiceName,
	}, http.StatusOK)
}
