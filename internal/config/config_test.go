package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/matchday/tournament-analytics/internal/domain/standings"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PARSE_WORKERS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.ParseWorkers != 8 {
		t.Fatalf("unexpected ParseWorkers: %d", cfg.ParseWorkers)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.DiscountThreshold != 5000 {
		t.Fatalf("unexpected DiscountThreshold: %v", cfg.DiscountThreshold)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ParseWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PARSE_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive PARSE_WORKERS")
	}

	t.Setenv("PARSE_WORKERS", "many")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric PARSE_WORKERS")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("PARSE_WORKERS", "4")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SERVICE_VERSION", "1.2.3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd || cfg.ParseWorkers != 4 || cfg.ServiceVersion != "1.2.3" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != zapcore.WarnLevel {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `name: home-season
filters:
  team: Alpha
  min_attendance: 1000
  date_from: "2024-01-01"
tie_breakers:
  - points
  - wins
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if profile.Name != "home-season" {
		t.Fatalf("unexpected profile name: %q", profile.Name)
	}

	criteria := profile.Criteria()
	if criteria.Team != "Alpha" || criteria.DateFrom != "2024-01-01" {
		t.Fatalf("unexpected criteria: %+v", criteria)
	}
	if criteria.MinAttendance == nil || *criteria.MinAttendance != 1000 {
		t.Fatalf("min attendance not decoded: %+v", criteria.MinAttendance)
	}

	order, err := profile.TieBreakOrder()
	if err != nil {
		t.Fatalf("TieBreakOrder: %v", err)
	}
	want := []standings.TieBreaker{standings.ByPoints, standings.ByWins}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Fatalf("unexpected tie-break order: %v", order)
	}
}

func TestLoadProfile_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing profile file")
	}

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("tie_breakers:\n  - altitude\n"), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if _, err := profile.TieBreakOrder(); err == nil {
		t.Fatalf("expected error for unknown tie-break criterion")
	}
}
