package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if len(cfg.DataSource.Symbols) != 1 || cfg.DataSource.Symbols[0] != "SPX500" {
		t.Errorf("expected default symbol SPX500, got %v", cfg.DataSource.Symbols)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.MaxPoints != 500 {
		t.Errorf("expected server defaults, got %s / %d", cfg.Server.Addr, cfg.Server.MaxPoints)
	}
	if cfg.DataSource.Days != 400 {
		t.Errorf("expected default days 400, got %d", cfg.DataSource.Days)
	}
	if cfg.Indicators.SMAFast != 50 || cfg.Indicators.SMASlow != 200 {
		t.Errorf("expected normalized indicator defaults, got %+v", cfg.Indicators)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
data_source:
  symbols: [NDX100, SPX500]
  days: 250
server:
  addr: ":9090"
indicators:
  sma_fast: 20
  sma_slow: 60
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYMBOLS", "DAX40, FTSE100")
	t.Setenv("FETCH_DAYS", "300")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Env wins over YAML.
	if len(cfg.DataSource.Symbols) != 2 || cfg.DataSource.Symbols[0] != "DAX40" || cfg.DataSource.Symbols[1] != "FTSE100" {
		t.Errorf("expected env symbols, got %v", cfg.DataSource.Symbols)
	}
	if cfg.DataSource.Days != 300 {
		t.Errorf("expected env days 300, got %d", cfg.DataSource.Days)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected YAML addr, got %s", cfg.Server.Addr)
	}
	if cfg.Indicators.SMAFast != 20 || cfg.Indicators.SMASlow != 60 {
		t.Errorf("expected YAML indicator params, got %+v", cfg.Indicators)
	}
	// Unset fields still normalize.
	if cfg.Indicators.RSIPeriod != 14 {
		t.Errorf("expected default rsi_period 14, got %d", cfg.Indicators.RSIPeriod)
	}
}

func TestValidate_RejectsBadParams(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Indicators.SMAFast = 200
	cfg.Indicators.SMASlow = 50
	if err := cfg.Validate(); err == nil {
		t.Error("expected sma_fast >= sma_slow to fail validation")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	cfg.DataSource.Days = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected days < 2 to fail validation")
	}
}
