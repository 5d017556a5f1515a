package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Worker.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("api base = %q", cfg.Worker.APIBaseURL)
	}
	if cfg.Worker.SimulateCron == "" {
		t.Fatalf("simulate cron must default")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemonade.yaml")
	data := []byte(`
server:
  addr: ":9090"
game:
  total_days: 14
  initial_capital: 250.5
  default_price: 1.25
database:
  sqlite_path: "data/results.db"
worker:
  api_base_url: "http://api:9090/"
  ad_spend: 5
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Game.TotalDays != 14 || cfg.Game.InitialCapital != 250.5 || cfg.Game.DefaultPrice != 1.25 {
		t.Fatalf("game section = %+v", cfg.Game)
	}
	if cfg.Database.SQLitePath != "data/results.db" {
		t.Fatalf("sqlite path = %q", cfg.Database.SQLitePath)
	}
	if cfg.Worker.APIBaseURL != "http://api:9090" {
		t.Fatalf("api base = %q, trailing slash must be trimmed", cfg.Worker.APIBaseURL)
	}
	if cfg.Worker.AdSpend != 5 {
		t.Fatalf("ad spend = %v", cfg.Worker.AdSpend)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemonade.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "7000")
	t.Setenv("LEMONADE_TOTAL_DAYS", "30")
	t.Setenv("LEMONADE_INITIAL_CAPITAL", "500")
	t.Setenv("LEMONADE_SQLITE_PATH", "override.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Fatalf("addr = %q, want PORT to win", cfg.Server.Addr)
	}
	if cfg.Game.TotalDays != 30 {
		t.Fatalf("total days = %d", cfg.Game.TotalDays)
	}
	if cfg.Game.InitialCapital != 500 {
		t.Fatalf("capital = %v", cfg.Game.InitialCapital)
	}
	if cfg.Database.SQLitePath != "override.db" {
		t.Fatalf("sqlite path = %q", cfg.Database.SQLitePath)
	}
}

func TestConfigPathEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elsewhere.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":6000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LEMONADE_CONFIG", path)

	cfg, err := Load("ignored.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":6000" {
		t.Fatalf("addr = %q, want config path env to win", cfg.Server.Addr)
	}
}

func TestLoadCLIFromEnv(t *testing.T) {
	t.Setenv("LEMONADE_API_BASE_URL", "http://game:8080/")
	cfg := LoadCLIFromEnv()
	if cfg.APIBaseURL != "http://game:8080" {
		t.Fatalf("api base = %q", cfg.APIBaseURL)
	}
}
