// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL    string `mapstructure:"url"`
	Driver string `mapstructure:"driver"` // postgres | sqlite
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// RatingConfig はレーティング計算のパラメータ
type RatingConfig struct {
	Initial     int     `mapstructure:"initial"`
	KFactor     float64 `mapstructure:"k_factor"`
	MaxDelta    int     `mapstructure:"max_delta"`
	HintFactor  float64 `mapstructure:"hint_factor"`
	BeginnerGap int     `mapstructure:"beginner_gap"`
	Min         int     `mapstructure:"min"`
}

// AttemptsConfig は挑戦中の状態の保存先
type AttemptsConfig struct {
	Store string        `mapstructure:"store"` // memory | redis
	TTL   time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthoringConfig struct {
	AuditLines bool `mapstructure:"audit_lines"`
}

type PreviewConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type AppConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
	PuzzleLimit  int `mapstructure:"puzzle_limit"`
}

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Auth      AuthConfig      `mapstructure:"auth"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	App       AppConfig       `mapstructure:"app"`
	Rating    RatingConfig    `mapstructure:"rating"`
	Attempts  AttemptsConfig  `mapstructure:"attempts"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Authoring AuthoringConfig `mapstructure:"authoring"`
	Preview   PreviewConfig   `mapstructure:"preview"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 環境変数 (例: APP_DATABASE_URL) でも上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	v.BindEnv("database.url", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := v.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyFallbacks(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Attempt Store: %s", Cfg.Attempts.Store)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// --- デフォルト値の設定 ---
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("app.history_limit", DefaultHistoryLimit)
	v.SetDefault("app.puzzle_limit", DefaultPuzzleLimit)
	v.SetDefault("rating.initial", DefaultInitialRating)
	v.SetDefault("rating.k_factor", DefaultKFactor)
	v.SetDefault("rating.max_delta", DefaultMaxDelta)
	v.SetDefault("rating.hint_factor", DefaultHintFactor)
	v.SetDefault("rating.beginner_gap", DefaultBeginnerGap)
	v.SetDefault("rating.min", DefaultMinRating)
	v.SetDefault("attempts.store", DefaultAttemptStore)
	v.SetDefault("attempts.ttl", DefaultAttemptTTL)
	v.SetDefault("authoring.audit_lines", true)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Learner-ID"})
	v.SetDefault("cors.max_age", 300)
}

// applyFallbacks は不正値をデフォルトに戻します (設定ファイルで 0 などが指定された場合)
func applyFallbacks(c *Config) {
	if c.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		c.Server.Port = DefaultServerPort
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.App.HistoryLimit <= 0 {
		c.App.HistoryLimit = DefaultHistoryLimit
	}
	if c.App.PuzzleLimit <= 0 {
		c.App.PuzzleLimit = DefaultPuzzleLimit
	}
	if c.Rating.KFactor <= 0 {
		log.Println("Rating k_factor not set or invalid, using default")
		c.Rating.KFactor = DefaultKFactor
	}
	if c.Rating.HintFactor <= 0 || c.Rating.HintFactor >= 1 {
		log.Println("Rating hint_factor must be in (0,1), using default")
		c.Rating.HintFactor = DefaultHintFactor
	}
	if c.Rating.MaxDelta <= 0 {
		c.Rating.MaxDelta = DefaultMaxDelta
	}
	if c.Rating.Initial <= 0 {
		c.Rating.Initial = DefaultInitialRating
	}
	if c.Attempts.TTL <= 0 {
		c.Attempts.TTL = DefaultAttemptTTL
	}
	if c.Attempts.Store != AttemptStoreMemory && c.Attempts.Store != AttemptStoreRedis {
		log.Printf("Unknown attempt store %q, using memory", c.Attempts.Store)
		c.Attempts.Store = AttemptStoreMemory
	}
}
