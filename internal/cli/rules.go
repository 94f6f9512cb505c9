package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [workbook-dir]",
	Short: "Print the effective rule table as YAML",
	Long: `Print the rule table extraction would use, after applying labschema.yaml
(from the given directory, default "."), LABSCHEMA_RULES and --rules.

The output is a complete rule file: save it, edit it and pass it back with
--rules to customize validation.

Examples:
  # Print the built-in rules
  labschema rules

  # Start a custom rule table
  labschema rules > rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

var rulesFlags runFlags

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVar(&rulesFlags.rules, "rules", "", "Rule table file (default: built-in rules)")
}

func runRules(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	s, err := resolveSettings(cmd, dir, rulesFlags)
	if err != nil {
		return err
	}
	table, err := loadRules(s.Rules)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
