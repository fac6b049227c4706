package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadCoachConfig_Defaults verifies the built-in configuration applies
// when COACH_CONFIG is unset.
func TestLoadCoachConfig_Defaults(t *testing.T) {
	t.Setenv("COACH_CONFIG", "")

	cfg, err := loadCoachConfig()
	if err != nil {
		t.Fatalf("loadCoachConfig: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if len(cfg.Checklist) != 12 {
		t.Errorf("checklist entries = %d, want 12", len(cfg.Checklist))
	}
	if cfg.Checklist[0].Time != "05:30" || cfg.Checklist[0].Label != "Wake" {
		t.Errorf("checklist[0] = %+v, want the wake entry", cfg.Checklist[0])
	}
}

// TestLoadCoachConfig_YAMLOverlay verifies a COACH_CONFIG file overrides the
// defaults, including replacing the checklist wholesale.
func TestLoadCoachConfig_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coach.yaml")
	content := `
addr: ":9090"
checklist:
  - time: "06:00"
    label: "Wake"
    detail: "Water"
  - time: "22:00"
    label: "Sleep"
    detail: "Lights out"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COACH_CONFIG", path)

	cfg, err := loadCoachConfig()
	if err != nil {
		t.Fatalf("loadCoachConfig: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Addr)
	}
	if len(cfg.Checklist) != 2 {
		t.Fatalf("checklist entries = %d, want 2", len(cfg.Checklist))
	}
	if cfg.Checklist[1].Label != "Sleep" {
		t.Errorf("checklist[1] = %+v, want the sleep entry", cfg.Checklist[1])
	}
}

// TestLoadCoachConfig_MissingFileErrors verifies a set-but-unreadable path
// is an error, not a silent fallback to defaults.
func TestLoadCoachConfig_MissingFileErrors(t *testing.T) {
	t.Setenv("COACH_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := loadCoachConfig(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
