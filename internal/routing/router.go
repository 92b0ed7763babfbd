// Package routing wires the middleware chain and the routes of the server.
package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/handlers"
	"larp-manager-server/internal/managers"
	"larp-manager-server/internal/middleware"
	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

// InitRouter builds the gin engine with the common middleware chain and all
// routes registered.
func InitRouter(settings *config.Settings, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) *gin.Engine {
	router := gin.New()

	setupCommonMiddleware(router, settings)
	setupRoutes(router, settings, databaseMgr, jwtMgr)

	return router
}

func setupCommonMiddleware(router *gin.Engine, settings *config.Settings) {
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(settings))
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(corsConfig(settings)))
	router.Use(func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
	})
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func corsConfig(settings *config.Settings) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = settings.CORSOrigins
	corsCfg.AllowCredentials = settings.CORSAllowCredentials
	corsCfg.ExposeHeaders = []string{"Content-Length", "Content-Type", "X-Trace-Id"}
	corsCfg.MaxAge = 12 * time.Hour

	if !isWildcard(settings.CORSAllowMethods) {
		corsCfg.AllowMethods = settings.CORSAllowMethods
	} else {
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}

	if !isWildcard(settings.CORSAllowHeaders) {
		corsCfg.AllowHeaders = settings.CORSAllowHeaders
	} else {
		corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	}

	return corsCfg
}

func isWildcard(values []string) bool {
	return len(values) == 1 && values[0] == "*"
}

func setupRoutes(router *gin.Engine, settings *config.Settings, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) {
	// Service metadata route
	router.GET("/", func(c *gin.Context) {
		metadata := &schemas.MetadataDTO{
			Name:        settings.ProjectName,
			Version:     utils.ServiceVersion,
			Environment: settings.Environment,
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	healthRoutes(router, databaseMgr)

	// Versioned API group; domain routes arrive in a later phase
	apiRouter := router.Group(settings.APIV1Prefix)
	{
		authRouter := apiRouter.Group("/auth")
		authRouter.POST("/login",
			middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.LoginRequest{} }),
			middleware.RequireAuth())
		authRouter.POST("/refresh",
			middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.RefreshTokenRequest{} }),
			middleware.RequireAuth())

		userRouter := apiRouter.Group("/users")
		userRouter.Use(jwtMgr.JWTMiddleware())
		userRouter.GET("/me", middleware.RequireAuth())

		adminRouter := apiRouter.Group("/admin")
		adminRouter.Use(jwtMgr.JWTMiddleware())
		adminRouter.GET("/", middleware.RequireRole("admin"))
	}
}

func healthRoutes(router *gin.Engine, databaseMgr managers.DatabaseMgr) {
	healthHdl := handlers.NewHealthHandler(databaseMgr)

	healthRouter := router.Group("/health")
	healthRouter.GET("", healthHdl.HealthCheck)
	healthRouter.GET("/db", healthHdl.DatabaseHealthCheck)
	healthRouter.GET("/ready", healthHdl.ReadinessCheck)
	healthRouter.GET("/live", healthHdl.LivenessCheck)
}
