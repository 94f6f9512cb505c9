package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/labschema/pkg/labschema"
)

func TestRequireWorkbook(t *testing.T) {
	cmd := &cobra.Command{Use: "extract <workbook>"}

	t.Run("missing argument", func(t *testing.T) {
		err := RequireWorkbook(cmd, nil)
		if err == nil {
			t.Fatal("Expected error for missing workbook")
		}
		if !strings.Contains(err.Error(), "schema.xlsx") {
			t.Errorf("Expected example in error, got: %v", err)
		}
		if code := labschema.ExitCodeForError(err); code != labschema.ExitUsageError {
			t.Errorf("Expected exit code %d, got %d", labschema.ExitUsageError, code)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		err := RequireWorkbook(cmd, []string{"a.xlsx", "b.xlsx"})
		if err == nil {
			t.Fatal("Expected error for two workbooks")
		}
		if code := labschema.ExitCodeForError(err); code != labschema.ExitUsageError {
			t.Errorf("Expected exit code %d, got %d", labschema.ExitUsageError, code)
		}
	})

	t.Run("exactly one", func(t *testing.T) {
		if err := RequireWorkbook(cmd, []string{"schema.xlsx"}); err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
	})
}
