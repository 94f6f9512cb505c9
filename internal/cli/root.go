package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labschema",
	Short: "Extract and validate lab metadata schema workbooks",
	Long: `labschema reads a workbook describing a laboratory metadata schema
(entity types, their properties and controlled vocabularies), validates every
field against the rule table and prints the normalized model.

Each entity is a block of rows starting with a category marker such as
OBJECT_TYPE or VOCABULARY_TYPE. Blocks are separated by two empty rows.

Configuration is read from labschema.yaml next to the workbook, then from
LABSCHEMA_RULES and LABSCHEMA_STRICT (a .env file in the working directory is
loaded first), then from command-line flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or rule table
  11 - Workbook could not be read
  12 - Unrecognized block marker
  13 - Validation failed (ERROR diagnostics)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
