package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.yaml")
	data := []byte("port: 8080\nscheduler:\n  round_robin:\n    time_quantum: 4\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 || cfg.RoundRobinTimeQuantum != 4 || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.MaxProcesses != 256 || cfg.MaxBurst != 10000 || cfg.HistorySize != 50 || cfg.LogFormat != "console" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadBadQuantumFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.yaml")
	if err := os.WriteFile(path, []byte("scheduler:\n  round_robin:\n    time_quantum: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RoundRobinTimeQuantum != 2 {
		t.Fatalf("quantum = %d, want 2", cfg.RoundRobinTimeQuantum)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CPUSCHED_PORT", "7000")
	path := filepath.Join(t.TempDir(), "sched.yaml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7000 {
		t.Fatalf("port = %d, want 7000", cfg.Port)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestDefaultMatchesLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}
