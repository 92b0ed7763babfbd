// Package internal wires the server together: settings, logging, the database
// manager, the JWT manager and the router.
package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/managers"
	"larp-manager-server/internal/routing"
)

const (
	listenAddr      = ":8000"
	shutdownTimeout = 10 * time.Second
)

// Init sets up and runs the server. Configuration and database bootstrap
// failures abort startup; a termination signal triggers a graceful shutdown
// that drains requests before the database manager is closed.
func Init() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Error loading settings: ", err)
	}

	config.ConfigureLogging(settings)
	log.Info("Starting ", settings.ProjectName, " in ", settings.Environment, " environment")

	if settings.Debug || settings.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	databaseMgr := managers.NewDatabaseManager(settings)
	if err := databaseMgr.Initialize(ctx); err != nil {
		log.Fatal("Error initializing database manager: ", err)
	}
	defer databaseMgr.Close()

	if err := databaseMgr.CreateSchema(ctx); err != nil {
		log.Fatal("Error creating database schema: ", err)
	}

	jwtMgr, err := managers.NewJWTManager(settings)
	if err != nil {
		log.Fatal("Error initializing JWT manager: ", err)
	}

	router := routing.InitRouter(settings, databaseMgr, jwtMgr)
	log.Info("Initialized router")

	server := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	go func() {
		log.Info("Starting server on ", listenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Error starting server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during server shutdown: ", err)
	}

	log.Info("Server stopped")
}
