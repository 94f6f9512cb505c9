package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/labschema/internal/config"
	"github.com/vvka-141/labschema/internal/extract"
	"github.com/vvka-141/labschema/internal/logging"
	"github.com/vvka-141/labschema/internal/rules"
	"github.com/vvka-141/labschema/internal/workbook"
	"github.com/vvka-141/labschema/pkg/labschema"
)

// runFlags holds the flags shared by commands that read rules or workbooks.
type runFlags struct {
	rules  string
	sheets []string
	strict bool
}

// settings is the effective configuration of one command run.
type settings struct {
	config.ProjectConfig
	verbose bool
}

// loadProjectConfig loads godotenv and the labschema.yaml found in dir.
// Returns nil config if labschema.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveSettings merges labschema.yaml, environment and flags.
// Priority (highest to lowest): flags > environment > labschema.yaml
func resolveSettings(cmd *cobra.Command, dir string, flags runFlags) (*settings, error) {
	projectCfg, err := loadProjectConfig(dir)
	if err != nil {
		return nil, err
	}
	merged, err := config.ApplyEnv(projectCfg, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("rules") {
		merged.Rules = flags.rules
	}
	if cmd.Flags().Changed("sheet") {
		merged.Sheets = flags.sheets
	}
	if cmd.Flags().Changed("strict") {
		merged.Strict = flags.strict
	}

	s := &settings{ProjectConfig: *merged, verbose: getVerboseFlag(cmd)}
	if s.verbose {
		logf(cmd, "[VERBOSE] Rules: %s", describeRules(s.Rules))
		if len(s.Sheets) > 0 {
			logf(cmd, "[VERBOSE] Sheets: %v", s.Sheets)
		}
		logf(cmd, "[VERBOSE] Strict: %v", s.Strict)
	}
	return s, nil
}

func describeRules(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}

// loadRules returns the rule table at path, or the built-in one.
func loadRules(path string) (*rules.Table, error) {
	if path == "" {
		return rules.Default()
	}
	return rules.Load(path)
}

// extractWorkbook loads the workbook at path and runs extraction with the
// effective settings.
func extractWorkbook(cmd *cobra.Command, path string, flags runFlags, logger labschema.Logger) (*labschema.Result, *settings, error) {
	s, err := resolveSettings(cmd, filepath.Dir(path), flags)
	if err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = logging.NewWriterLogger(cmd.ErrOrStderr(), s.verbose)
	}

	table, err := loadRules(s.Rules)
	if err != nil {
		return nil, nil, err
	}

	wb, err := workbook.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if len(s.Sheets) > 0 {
		for _, name := range s.Sheets {
			if _, ok := wb.Sheet(name); !ok {
				return nil, nil, fmt.Errorf("sheet %q not found in %s: %w", name, path, labschema.ErrInvalidConfig)
			}
		}
		wb = wb.Filter(s.Sheets)
	}

	x, err := extract.New(table, logger)
	if err != nil {
		return nil, nil, err
	}
	result, err := x.Run(wb)
	if err != nil {
		return nil, nil, err
	}
	return result, s, nil
}

func logf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
