package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/labschema/pkg/labschema"
)

var extractCmd = &cobra.Command{
	Use:   "extract <workbook>",
	Short: "Print the normalized schema of a workbook as JSON",
	Long: `Extract every entity block of a workbook and print the result as JSON:

  { "<sheet>": { "<code>": { ...attributes, "properties" | "terms": {...} } } }

Sheet names are lower-cased with runs of other characters replaced by "_".
Within a sheet, codes are ordered so that INSTRUMENT always precedes
INSTRUMENT.SENSOR. Warnings and errors are logged to stderr; with --strict any
error fails the command after the JSON is printed.

Examples:
  # Extract the whole workbook
  labschema extract schema.xlsx

  # Extract two sheets with a custom rule table
  labschema extract schema.xlsx --sheet Objects --sheet Vocabularies --rules rules.yaml

  # Fail on any validation error
  labschema extract schema.xlsx --strict > schema.json`,
	Args:              RequireWorkbook,
	ValidArgsFunction: completeWorkbooks,
	RunE:              runExtract,
}

var extractFlags runFlags

func init() {
	rootCmd.AddCommand(extractCmd)
	addRunFlags(extractCmd, &extractFlags)
}

// addRunFlags registers the flags shared by extract and validate.
func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.rules, "rules", "", "Rule table file (default: built-in rules)")
	cmd.Flags().StringArrayVar(&flags.sheets, "sheet", nil, "Only extract this sheet (repeatable)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when any ERROR diagnostic is found")
	_ = cmd.RegisterFlagCompletionFunc("sheet", completeSheetNames)
}

func runExtract(cmd *cobra.Command, args []string) error {
	result, s, err := extractWorkbook(cmd, args[0], extractFlags, nil)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result.Sheets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if s.Strict && result.Diagnostics.HasErrors() {
		return fmt.Errorf("%d error(s) in %s: %w",
			result.Diagnostics.Count(labschema.SeverityError), args[0], labschema.ErrValidationFailed)
	}
	return nil
}
