package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the API server and the worker need. Values come
// from the YAML file first, environment variables override them.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Game struct {
		TotalDays      int     `yaml:"total_days"`
		InitialCapital float64 `yaml:"initial_capital"`
		DefaultPrice   float64 `yaml:"default_price"`
		RandSeed       int64   `yaml:"rand_seed"`
	} `yaml:"game"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Worker struct {
		APIBaseURL   string  `yaml:"api_base_url"`
		SimulateCron string  `yaml:"simulate_cron"`
		AdSpend      float64 `yaml:"ad_spend"`
	} `yaml:"worker"`
}

type CLIConfig struct {
	APIBaseURL string
}

// Load reads the YAML file at path (LEMONADE_CONFIG wins over the
// argument, a missing file is fine), then applies environment overrides.
// A .env file in the working directory is loaded first, if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("LEMONADE_CONFIG")); v != "" {
		path = v
	}
	if path == "" {
		path = "lemonade.yaml"
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if addr := strings.TrimSpace(os.Getenv("PORT")); addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
		cfg.Server.Addr = addr
	}
	if v := strings.TrimSpace(os.Getenv("LEMONADE_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := envInt("LEMONADE_TOTAL_DAYS"); ok {
		cfg.Game.TotalDays = v
	}
	if v, ok := envFloat("LEMONADE_INITIAL_CAPITAL"); ok {
		cfg.Game.InitialCapital = v
	}
	if v, ok := envFloat("LEMONADE_DEFAULT_PRICE"); ok {
		cfg.Game.DefaultPrice = v
	}
	if v, ok := envInt("LEMONADE_RAND_SEED"); ok {
		cfg.Game.RandSeed = int64(v)
	}
	if v := strings.TrimSpace(os.Getenv("LEMONADE_SQLITE_PATH")); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := strings.TrimSpace(os.Getenv("LEMONADE_API_BASE_URL")); v != "" {
		cfg.Worker.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("LEMONADE_SIMULATE_CRON")); v != "" {
		cfg.Worker.SimulateCron = v
	}
	if v, ok := envFloat("LEMONADE_AD_SPEND"); ok {
		cfg.Worker.AdSpend = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Worker.APIBaseURL == "" {
		cfg.Worker.APIBaseURL = "http://localhost:8080"
	}
	cfg.Worker.APIBaseURL = strings.TrimRight(cfg.Worker.APIBaseURL, "/")
	if cfg.Worker.SimulateCron == "" {
		// Every minute, with seconds field.
		cfg.Worker.SimulateCron = "0 * * * * *"
	}

	return cfg, nil
}

func LoadCLIFromEnv() CLIConfig {
	_ = godotenv.Load()
	return CLIConfig{
		APIBaseURL: strings.TrimRight(envDefault("LEMONADE_API_BASE_URL", "http://localhost:8080"), "/"),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(key string) (float64, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
