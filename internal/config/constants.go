// internal/config/constants.go
package config

import (
	"strings"
	"time"
)

// アプリケーション情報
const (
	AppName    = "ChessPuzzleKeep"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseDriver = "postgres"
	DefaultLogLevel       = "info"
	DefaultAuthEnabled    = true
	DefaultHistoryLimit   = 50
	DefaultPuzzleLimit    = 20

	DefaultInitialRating = 1500
	DefaultKFactor       = 32.0
	DefaultMaxDelta      = 28
	DefaultHintFactor    = 0.5
	DefaultBeginnerGap   = 400
	DefaultMinRating     = 100

	DefaultAttemptStore = AttemptStoreMemory
	DefaultAttemptTTL   = 2 * time.Hour
)

const (
	AttemptStoreMemory = "memory"
	AttemptStoreRedis  = "redis"
)

var envKeyReplacer = strings.NewReplacer(".", "_")
