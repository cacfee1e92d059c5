// cmd/puzzleimport/main.go
//
// YAMLのパズル集をレッスンとしてデータベースへ取り込むコマンドです。
//
//	go run ./cmd/puzzleimport -file configs/puzzlesets/tactics-101.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/repository"
	"go_chess_puzzle_keep/internal/service"
)

func main() {
	configDir := flag.String("config", "configs", "設定ファイルのディレクトリ")
	file := flag.String("file", "", "取り込むパズル集のYAML")
	timeout := flag.Duration("timeout", time.Minute, "取り込み全体のタイムアウト")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadConfig(*configDir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := &config.Cfg

	level, _ := config.ParseLogLevel(cfg.Log.Level)
	logger := config.NewLogger(os.Stderr, os.Getenv("APP_ENV"), level).With("command", "puzzleimport")
	slog.SetDefault(logger)

	if err := run(cfg, logger, *file, *timeout); err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			logger.Error("Import rejected", "code", appErr.Code, "field", appErr.Field, "message", appErr.Message)
		} else {
			logger.Error("Import failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, path string, timeout time.Duration) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open puzzle set: %w", err)
	}
	defer f.Close()

	set, err := service.ParsePuzzleSet(f)
	if err != nil {
		return err
	}

	db, err := repository.NewDB(cfg.Database.URL, cfg.Database.Driver, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = middleware.WithLogger(ctx, logger)

	if err := repository.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	svc := service.NewPuzzleService(db, repository.NewGormPuzzleRepository(), repository.NewGormLessonRepository(), nil, cfg)
	res, err := svc.ImportSet(ctx, set)
	if err != nil {
		return err
	}

	logger.Info("Puzzle set imported",
		"lesson_id", res.LessonID,
		"version", res.PuzzleSetVersion,
		"puzzles", res.PuzzleCount,
		"created", res.Created,
	)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
