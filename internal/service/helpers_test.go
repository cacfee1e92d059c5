package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	startFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	afterE4FEN = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
)

// setupTestDB はテストごとに独立したインメモリDBを作り、マイグレーションします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// インメモリDBは接続が閉じると消えるので1本に固定する
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.HistoryLimit = 50
	cfg.App.PuzzleLimit = 20
	cfg.Rating = config.RatingConfig{
		Initial:     1500,
		KFactor:     32,
		MaxDelta:    28,
		HintFactor:  0.5,
		BeginnerGap: 400,
		Min:         100,
	}
	cfg.Authoring.AuditLines = true
	cfg.Preview.BaseURL = "https://boards.example.com/editor"
	return cfg
}
