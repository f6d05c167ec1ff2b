package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/jobs"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
	"github.com/BruksfildServices01/barbershop-booking/internal/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// DATABASE
	// ======================================================
	dialect, err := dbx.ParseDialect(cfg.DBDialect)
	if err != nil {
		return err
	}

	sqlDB, err := dbpkg.Open(dialect, cfg.DBUrl, dbpkg.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	gdb, err := dbpkg.NewGorm(sqlDB, dialect)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		return err
	}

	xdb := dbx.New(sqlDB, dialect, dbx.Options{AcquireTimeout: cfg.DBAcquireTimeout})

	// ======================================================
	// NOTIFICATIONS
	// ======================================================
	notificationRepo := infraRepo.NewNotificationSQLRepository(xdb)

	sinks := []notify.Sink{notify.NewStoreSink(notificationRepo)}
	if cfg.TwilioEnabled() {
		sinks = append(sinks, notify.NewTwilioSink(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom))
		log.Info("sms notifications enabled")
	}
	dispatcher := notify.NewDispatcher(log, sinks...)

	var scheduler *jobs.Scheduler
	if cfg.NotificationRetentionDays > 0 {
		retention := jobs.NewRetention(notificationRepo, cfg.NotificationRetentionDays, log)
		if scheduler, err = jobs.Start(cfg.RetentionSchedule, retention); err != nil {
			return err
		}
	}

	// ======================================================
	// CACHE + STORAGE
	// ======================================================
	var catalogCache cache.Cache = cache.Nop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Warn("redis unavailable, catalog cache disabled", slog.Any("err", err))
		} else {
			defer rc.Close()
			catalogCache = rc
		}
	}

	var store storage.Store = storage.NewLocalStore(cfg.UploadDir, cfg.UploadURL)
	if cfg.S3Enabled() {
		store = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}

	var google auth.GoogleVerifier
	if cfg.GoogleClientID != "" {
		google = auth.NewIDTokenVerifier(cfg.GoogleClientID)
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Gorm:      gdb,
		DB:        xdb,
		Publisher: dispatcher,
		Cache:     catalogCache,
		Uploader:  storage.NewUploader(store),
		Google:    google,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server running", slog.String("addr", cfg.Addr()), slog.String("dialect", string(dialect)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	// ======================================================
	// SHUTDOWN
	// ======================================================
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", slog.Any("err", err))
	}
	if scheduler != nil {
		if err := scheduler.Stop(shutdownCtx); err != nil {
			log.Error("cron shutdown", slog.Any("err", err))
		}
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("notification drain", slog.Any("err", err))
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
