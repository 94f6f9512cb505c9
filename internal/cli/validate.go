package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/labschema/internal/logging"
	"github.com/vvka-141/labschema/internal/ui"
	"github.com/vvka-141/labschema/pkg/labschema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <workbook>",
	Short: "Check a workbook against the rule table",
	Long: `Validate every block of a workbook and report the problems found.

This command checks:
1. Block structure (category markers, header rows)
2. Field values (codes, booleans, data types, URLs)
3. Cross-field rules (generated code prefixes, vocabulary codes)

The command fails when any ERROR is found. Warnings are reported but do not
fail it.

Examples:
  # Validate a workbook
  labschema validate schema.xlsx

  # Validate with JSON output
  labschema validate schema.xlsx --json`,
	Args:              RequireWorkbook,
	ValidArgsFunction: completeWorkbooks,
	RunE:              runValidate,
}

var (
	validateFlags runFlags
	validateJSON  bool
)

func init() {
	rootCmd.AddCommand(validateCmd)
	addRunFlags(validateCmd, &validateFlags)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	// Diagnostics are part of the report, so only verbose progress is logged.
	var logger labschema.Logger = logging.NewNullLogger()
	if getVerboseFlag(cmd) {
		logger = &verboseOnly{logging.NewWriterLogger(cmd.ErrOrStderr(), true)}
	}

	result, _, err := extractWorkbook(cmd, args[0], validateFlags, logger)
	if err != nil {
		return err
	}

	if validateJSON {
		data, err := json.MarshalIndent(ui.Summarize(result), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		out := cmd.ErrOrStderr()
		ui.Report(out, result, ui.NewStyles(ui.ColorEnabled(out)))
	}

	if result.Diagnostics.HasErrors() {
		return fmt.Errorf("%d error(s) in %s: %w",
			result.Diagnostics.Count(labschema.SeverityError), args[0], labschema.ErrValidationFailed)
	}
	return nil
}

// verboseOnly drops everything but verbose progress messages.
type verboseOnly struct {
	*logging.ConsoleLogger
}

func (verboseOnly) Warn(string, ...interface{})  {}
func (verboseOnly) Error(string, ...interface{}) {}
