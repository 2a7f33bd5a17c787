package monkey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monkey.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "step_quota: 1000\nrecursion_limit: 32\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StepQuota != 1000 || cfg.RecursionLimit != 32 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StepQuota != 0 || cfg.RecursionLimit != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "step_qouta: 10\n"))
	if err == nil || !strings.Contains(err.Error(), "step_qouta") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestLoadConfigRejectsNegativeLimits(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "recursion_limit: -1\n")); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("step_quota: 5"))
	if err != nil || cfg.StepQuota != 5 {
		t.Fatalf("unexpected result: %+v %v", cfg, err)
	}
}
