package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/qualification/internal/config"
	"github.com/mrlokans/qualification/internal/database"
	http_controllers "github.com/mrlokans/qualification/internal/http"
	"github.com/mrlokans/qualification/internal/logger"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, log *logger.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", "error", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}

	// Stop the database only after in-flight requests are done.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting qualification service", "version", version)

	router, err := NewApp(context.Background(), cfg, log, version)
	if err != nil {
		log.Fatal("Failed to initialize application", "error", err)
	}

	Serve(router, cfg, log, func(ctx context.Context) {
		if err := database.Shutdown(); err != nil {
			log.Error("Error closing database", "error", err)
		}
	})
}

// NewApp initializes the process-wide database and builds the HTTP router
// on top of its models.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger, version string) (*gin.Engine, error) {
	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	err := database.Init(ctx, cfg, log, func() {
		log.Info("Models registered", "driver", cfg.Database.Driver)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.Get()
	plans, err := db.Plans()
	if err != nil {
		return nil, err
	}
	topics, err := db.Topics()
	if err != nil {
		return nil, err
	}
	tasks, err := db.Tasks()
	if err != nil {
		return nil, err
	}
	users, err := db.Users()
	if err != nil {
		return nil, err
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Version: version,
		Health:  db,
		Plans:   plans,
		Topics:  topics,
		Tasks:   tasks,
		Users:   users,
		Logger:  log,
	}), nil
}
