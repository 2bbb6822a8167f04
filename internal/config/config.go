package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config 服務設定，全部來自環境變數
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL" env-required:"true"`
	RedisAddr     string `env:"REDIS_ADDR" env-required:"true"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
	JWTSecret     string `env:"JWT_SECRET" env-required:"true"`

	HTTPAddr    string `env:"HTTP_ADDR" env-default:":8080"`
	WorkerCount int    `env:"WORKER_COUNT" env-default:"1"`

	// SimulatedLatency 登入與註冊前的固定延遲
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY" env-default:"800ms"`
	SessionTTL       time.Duration `env:"SESSION_TTL" env-default:"24h"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogPretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

var readEnv = cleanenv.ReadEnv

// Load 讀取並檢查環境變數
func Load() (*Config, error) {
	var cfg Config
	if err := readEnv(&cfg); err != nil {
		return nil, fmt.Errorf("讀取設定失敗: %w", err)
	}
	if cfg.RedisDB < 0 {
		return nil, fmt.Errorf("無效的 REDIS_DB: %d", cfg.RedisDB)
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	if cfg.SimulatedLatency < 0 {
		return nil, fmt.Errorf("無效的 SIMULATED_LATENCY: %s", cfg.SimulatedLatency)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("無效的 SESSION_TTL: %s", cfg.SessionTTL)
	}
	return &cfg, nil
}
