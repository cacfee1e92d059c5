// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/handlers"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/repository"
	"go_chess_puzzle_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// sweepInterval はメモリストアの期限切れ挑戦を掃除する間隔
const sweepInterval = time.Minute

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	level, ok := config.ParseLogLevel(cfg.Log.Level)
	if !ok {
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}
	logLevel.Set(level)
	appEnv := os.Getenv("APP_ENV")
	logger := config.NewLogger(os.Stderr, appEnv, logLevel)
	tempLogger.Info("Logger configured", slog.String("APP_ENV", appEnv), slog.String("level", level.String()))
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. Database (GORM)
	db, err := repository.NewDB(cfg.Database.URL, cfg.Database.Driver, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// 2. Attempt store
	var store repository.AttemptStore
	switch cfg.Attempts.Store {
	case config.AttemptStoreRedis:
		rdb, err := repository.NewRedisClient(appCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("Error connecting to redis", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			os.Exit(1)
		}
		defer rdb.Close()
		store = repository.NewRedisAttemptStore(rdb, cfg.Attempts.TTL)
	default:
		mem := repository.NewMemoryAttemptStore(cfg.Attempts.TTL)
		go mem.RunSweeper(appCtx, sweepInterval)
		store = mem
	}
	slog.Info("Attempt store ready", slog.String("store", cfg.Attempts.Store), slog.Duration("ttl", cfg.Attempts.TTL))

	// 3. Dependency Injection
	learnerRepo := repository.NewGormLearnerRepository()
	puzzleRepo := repository.NewGormPuzzleRepository()
	lessonRepo := repository.NewGormLessonRepository()
	historyRepo := repository.NewGormHistoryRepository()
	progressRepo := repository.NewGormLessonProgressRepository()

	learnerService := service.NewLearnerService(db, learnerRepo, cfg)
	puzzleService := service.NewPuzzleService(db, puzzleRepo, lessonRepo, nil, cfg)
	attemptService := service.NewAttemptService(db, service.AttemptServiceDeps{
		Store:        store,
		LearnerRepo:  learnerRepo,
		PuzzleRepo:   puzzleRepo,
		LessonRepo:   lessonRepo,
		HistoryRepo:  historyRepo,
		ProgressRepo: progressRepo,
		Aggregator:   service.NewAggregatorFromConfig(cfg),
	})
	progressService := service.NewProgressService(db, historyRepo, lessonRepo, progressRepo, cfg)

	api := &handlers.API{
		Learners: handlers.NewLearnerHandler(learnerService, logger),
		Puzzles:  handlers.NewPuzzleHandler(puzzleService, logger),
		Attempts: handlers.NewAttemptHandler(attemptService, logger),
		Progress: handlers.NewProgressHandler(progressService, logger),
	}
	healthHandler := handlers.NewHealthHandler(sqlDB, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	auth := middleware.JWTAuthMiddleware(cfg)
	if !cfg.Auth.Enabled {
		slog.Warn("Authentication disabled: using X-Learner-ID header")
		auth = middleware.DevLearnerContextMiddleware
	}
	r.Route("/api/v1", func(r chi.Router) {
		api.Mount(r, auth)
	})
	r.Get("/health", healthHandler.GetHealth)

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	stopApp()

	log.Println("Server exiting")
}
