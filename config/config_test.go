package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `ingest:
  telemetry_path: "feeds/truck_location.json"
planner:
  radius_miles: 25
  max_candidates: 5
oracle:
  model: "llama3-70b-8192"
  temperature: 0.1
metrics:
  prometheus_enabled: true
audit:
  enabled: false
output:
  schedule_path: "out/schedule.txt"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"ingest.telemetry_path", cfg.Ingest.TelemetryPath, "feeds/truck_location.json"},
		{"ingest.history_path default", cfg.Ingest.HistoryPath, "truck.json"},
		{"planner.radius_miles", cfg.Planner.RadiusMiles, 25.0},
		{"planner.max_candidates", cfg.Planner.MaxCandidates, 5},
		{"planner.cooldown default", cfg.Planner.CooldownSeconds, 2.0},
		{"oracle.model", cfg.Oracle.Model, "llama3-70b-8192"},
		{"oracle.base_url default", cfg.Oracle.BaseURL, "https://api.groq.com/openai/v1"},
		{"oracle.temperature", cfg.Oracle.Temperature, 0.1},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_port default", cfg.Metrics.PrometheusPort, ":9090"},
		{"audit.enabled", cfg.Audit.Enabled, false},
		{"output.schedule_path", cfg.Output.SchedulePath, "out/schedule.txt"},
		{"output.prompts_path default", cfg.Output.PromptsPath, "llm_prompts.json"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("oracle:\n  model: base\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HS_ORACLE__MODEL", "override")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Oracle.Model != "override" {
		t.Errorf("env override not applied: %s", cfg.Oracle.Model)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadInvalidPlanner(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("planner:\n  min_jobs: 5\n  max_jobs: 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for inverted job range")
	}
}
