package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadApplicationConfig(t *testing.T) {
	cfg, err := Load("../../resource/application.yml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "mahjong-score" || cfg.Situation.SeatWind != "2z" || cfg.Situation.RoundWind != "1z" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !cfg.RuleConf.AkaDora || !cfg.RuleConf.OpenTanyao || cfg.BatchConf.Workers != 4 {
		t.Fatalf("unexpected rules or workers %+v %+v", cfg.RuleConf, cfg.BatchConf)
	}
	if cfg.DatabaseConf.MongoConf.Enabled() {
		t.Fatalf("mongo must be disabled without url")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "appName: test\nsituation:\n  seatWind: 3z\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "test" || cfg.Situation.SeatWind != "3z" || cfg.Situation.RoundWind != "1z" {
		t.Fatalf("unexpected situation %+v", cfg.Situation)
	}
	if cfg.TableConf.SuitPatterns != "resource/suits.json" || cfg.CacheConf.MaxCost != 1<<16 || cfg.BatchConf.Workers != 4 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.DatabaseConf.MongoConf.Collection != "score_records" {
		t.Fatalf("unexpected mongo collection %q", cfg.DatabaseConf.MongoConf.Collection)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load(writeConfig(t, "log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogConf.Level != "debug" {
		t.Fatalf("expected env override, got %q", cfg.LogConf.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("missing file must fail")
	}
	if _, err := Load(writeConfig(t, "batch:\n  workers: 0\n")); err == nil {
		t.Fatalf("zero workers must fail")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogConf.Level != "info" || cfg.Situation.SeatWind != "1z" || !cfg.CacheConf.Enabled {
		t.Fatalf("unexpected default config %+v", cfg)
	}
}
