package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"weav-api/core/cache"
	"weav-api/core/config"
	"weav-api/core/constants"
	"weav-api/core/controller"
	"weav-api/core/database"
	"weav-api/core/logger"
	"weav-api/core/middleware"
	"weav-api/core/queue"
	"weav-api/core/storage"
	"weav-api/core/validator"
	"weav-api/modules/auth"
	"weav-api/modules/event"
	"weav-api/modules/friend"
	"weav-api/modules/notification"
	notificationService "weav-api/modules/notification/service"
	"weav-api/modules/notification/task"
	"weav-api/modules/recommend"
	"weav-api/modules/user"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	metricsNamespace = "weav"
	readyTimeout     = 3 * time.Second
)

// Dependencies are the shared clients handed to every module.
// Storage and Queue may be nil.
type Dependencies struct {
	DB      database.IDatabase
	Cache   *cache.RedisCache
	Storage storage.Storage
	Queue   queue.Enqueuer
}

// NewEcho builds the HTTP surface and returns the notification service the worker delivers to.
func NewEcho(cfg *config.Config, deps Dependencies) (*echo.Echo, notificationService.NotificationServiceInterface) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = controller.StrictJSONSerializer{}
	e.Validator = validator.New()
	e.HTTPErrorHandler = controller.HTTPErrorHandler

	metrics := middleware.NewMetrics(metricsNamespace)

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set(constants.ContextRequestID, id)
		},
	}))
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("6M"))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/ready", readyHandler(deps))
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")
	mw := middleware.NewMiddleware(deps.Cache)

	friends := friend.Init(deps.DB, deps.Queue)
	user.Init(api, deps.DB, deps.Cache, deps.Storage, mw, friends)
	event.Init(api, deps.DB, deps.Queue, mw)
	recommend.Init(api, cfg, deps.Cache)
	notifications := notification.Init(api, deps.DB, mw)
	auth.Init(api, deps.DB, deps.Cache, cfg.GoogleAPI, mw)

	return e, notifications
}

// readyHandler reports 503 until postgres and redis both answer a ping.
func readyHandler(deps Dependencies) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
		defer cancel()

		if err := deps.DB.Ping(ctx); err != nil {
			logger.Error("Server:Ready:Database", err)
			return c.JSON(http.StatusServiceUnavailable, &controller.ErrorResponse{Error: "database unavailable"})
		}
		if err := deps.Cache.Ping(ctx); err != nil {
			logger.Error("Server:Ready:Redis", err)
			return c.JSON(http.StatusServiceUnavailable, &controller.ErrorResponse{Error: "redis unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Run loads config, connects postgres and redis, serves HTTP and the delivery
// worker, and blocks until SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.InitRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg.Redis, cfg.Queue)
	defer queueClient.Close()

	var store storage.Storage
	if cfg.Storage.Bucket != "" {
		store = storage.NewS3Storage(cfg.Storage)
	} else {
		logger.Warn("Server:Run:StorageDisabled", "reason", "storage bucket not configured")
	}

	e, notifications := NewEcho(cfg, Dependencies{
		DB:      db,
		Cache:   redisCache,
		Storage: store,
		Queue:   queueClient,
	})

	worker := queue.NewWorker(cfg.Redis, cfg.Queue)
	worker.Handle(task.TypeDeliver, task.NewDeliverHandler(notifications))
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server:Run:Listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Server:Run:ShuttingDown")
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server:Run:Shutdown", err)
		return err
	}

	logger.Info("Server:Run:Stopped")
	return nil
}
