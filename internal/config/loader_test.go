// internal/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningNumbers(t *testing.T) {
	cfg := DefaultTuning()
	if cfg.Player.Lives != 3 || cfg.Player.Speed != 96.0 {
		t.Errorf("player defaults off: %+v", cfg.Player)
	}
	if cfg.Enemies.BaseCount != 16 || cfg.Enemies.MaxActive != 4 || cfg.Enemies.MaxTotal != 40 {
		t.Errorf("enemy defaults off: %+v", cfg.Enemies)
	}
	if cfg.Enemies.FireDelayMin >= cfg.Enemies.FireDelayMax {
		t.Error("fire delay range must be non-empty")
	}
}

func TestLoadTuningCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := `
player:
  lives: 5
  speed: 120
enemies:
  max_active: 6
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if cfg.Player.Lives != 5 || cfg.Player.Speed != 120 {
		t.Errorf("overrides not applied: %+v", cfg.Player)
	}
	if cfg.Enemies.MaxActive != 6 {
		t.Errorf("MaxActive = %d, want 6", cfg.Enemies.MaxActive)
	}
	// Не упомянутые поля остаются дефолтными.
	if cfg.Player.FireDelay != 0.35 {
		t.Errorf("FireDelay = %v, want default 0.35", cfg.Player.FireDelay)
	}
	if cfg.Enemies.BaseCount != 16 {
		t.Errorf("BaseCount = %d, want default 16", cfg.Enemies.BaseCount)
	}
}

func TestLoadTuningMissingCustomPathFails(t *testing.T) {
	if _, err := LoadTuning("/nonexistent/tuning.yaml"); err == nil {
		t.Fatal("explicit path must fail loudly when missing")
	}
}

func TestLoadTuningBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("broken yaml at an explicit path must fail")
	}
}
