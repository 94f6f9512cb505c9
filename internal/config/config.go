package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/labschema/pkg/labschema"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of labschema.yaml.
type ProjectConfig struct {
	// Rules is a rule table file replacing the built-in one.
	// A relative path is resolved against the config file's directory.
	Rules string `yaml:"rules,omitempty"`

	// Sheets limits extraction to the named sheets.
	Sheets []string `yaml:"sheets,omitempty"`

	// Strict makes ERROR diagnostics fail the command.
	Strict bool `yaml:"strict,omitempty"`
}

const ConfigFileName = "labschema.yaml"

// Environment variables that override the config file.
const (
	EnvRules  = "LABSCHEMA_RULES"
	EnvStrict = "LABSCHEMA_STRICT"
)

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, labschema.ErrInvalidConfig)
	}
	if cfg.Rules != "" && !filepath.IsAbs(cfg.Rules) {
		cfg.Rules = filepath.Join(dir, cfg.Rules)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables read through lookup,
// usually os.LookupEnv. A nil cfg is treated as empty.
func ApplyEnv(cfg *ProjectConfig, lookup func(string) (string, bool)) (*ProjectConfig, error) {
	out := ProjectConfig{}
	if cfg != nil {
		out = *cfg
	}

	if v, ok := lookup(EnvRules); ok && v != "" {
		out.Rules = v
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q is not a boolean: %w", EnvStrict, v, labschema.ErrInvalidConfig)
		}
		out.Strict = strict
	}
	return &out, nil
}
