package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/labschema/pkg/labschema"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `rules: custom/rules.yaml
sheets:
  - Objects
  - Vocabularies
strict: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, filepath.Join(dir, "custom", "rules.yaml"), cfg.Rules)
	assert.Equal(t, []string{"Objects", "Vocabularies"}, cfg.Sheets)
	assert.True(t, cfg.Strict)
}

func TestLoad_AbsoluteRulesPath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("rules: "+abs+"\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Rules)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("strict: false\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Rules)
	assert.Empty(t, cfg.Sheets)
	assert.False(t, cfg.Strict)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, labschema.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}

	t.Run("nil config with no env", func(t *testing.T) {
		cfg, err := ApplyEnv(nil, env(nil))
		require.NoError(t, err)
		assert.Equal(t, &ProjectConfig{}, cfg)
	})

	t.Run("env overrides file", func(t *testing.T) {
		base := &ProjectConfig{Rules: "a.yaml", Sheets: []string{"S"}}
		cfg, err := ApplyEnv(base, env(map[string]string{EnvRules: "b.yaml", EnvStrict: "true"}))
		require.NoError(t, err)
		assert.Equal(t, "b.yaml", cfg.Rules)
		assert.True(t, cfg.Strict)
		assert.Equal(t, []string{"S"}, cfg.Sheets)
		assert.Equal(t, "a.yaml", base.Rules, "input must not be modified")
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		cfg, err := ApplyEnv(&ProjectConfig{Strict: true}, env(map[string]string{EnvStrict: ""}))
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
	})

	t.Run("invalid strict value", func(t *testing.T) {
		_, err := ApplyEnv(nil, env(map[string]string{EnvStrict: "sometimes"}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, labschema.ErrInvalidConfig))
	})
}
