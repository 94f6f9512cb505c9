package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/labschema/internal/workbook"
)

// completeWorkbooks provides shell completion for the workbook argument.
func completeWorkbooks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"xlsx"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeSheetNames provides shell completion for --sheet from the sheets of
// the workbook given as first argument.
func completeSheetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	wb, err := workbook.Open(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, s := range wb.Sheets {
		if strings.HasPrefix(s.Name, toComplete) {
			matches = append(matches, s.Name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
