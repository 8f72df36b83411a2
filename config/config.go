// Package config loads the service configuration from a YAML or JSON file
// with optional environment overrides (HS_ prefix, double underscore as the
// section separator, e.g. HS_ORACLE__MODEL).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jmertens/haulsched/core/metrics"
	"github.com/jmertens/haulsched/core/oracle"
	"github.com/jmertens/haulsched/core/plan"
	"github.com/jmertens/haulsched/infra/mqtt"
	"github.com/jmertens/haulsched/ingest"
)

// OutputConfig names the run artifacts.
type OutputConfig struct {
	SchedulePath string `json:"schedule_path"`
	PromptsPath  string `json:"prompts_path"`
}

// SetDefaults applies the default artifact paths.
func (c *OutputConfig) SetDefaults() {
	if c.SchedulePath == "" {
		c.SchedulePath = "truck_schedule_output.txt"
	}
	if c.PromptsPath == "" {
		c.PromptsPath = "llm_prompts.json"
	}
}

type Config struct {
	Ingest  ingest.Config  `json:"ingest"`
	Planner plan.Params    `json:"planner"`
	Oracle  oracle.Config  `json:"oracle"`
	Metrics metrics.Config `json:"metrics"`
	Audit   mqtt.Config    `json:"audit"`
	Output  OutputConfig   `json:"output"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("HS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "hs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Ingest.SetDefaults()
	cfg.Planner.SetDefaults()
	cfg.Oracle.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Audit.SetDefaults()
	cfg.Output.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Oracle.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Audit.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
