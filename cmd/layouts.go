package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Inspect the layout template catalog",
	Long:  `List the grid templates available for a photo count and validate the embedded catalog.`,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates for a photo count",
	Long: `List every template offered for a photo count, curated first and
the generated fallback last.

Example:
  smartalbum layouts list --count 3
  smartalbum layouts list --count 12`,
	RunE: runLayoutsList,
}

var layoutsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the template catalog for consistency issues",
	RunE:  runLayoutsValidate,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsCmd.AddCommand(layoutsValidateCmd)

	layoutsListCmd.Flags().Int("count", 4, "Photo count to list templates for")
}

func runLayoutsList(cmd *cobra.Command, args []string) error {
	count := mustGetInt(cmd, "count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	templates := layout.LayoutsForCount(count)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOLUMNS\tROWS\tAREAS")
	fmt.Fprintln(w, "----\t-------\t----\t-----")
	for _, g := range templates {
		extras := ""
		if len(g.ShapeBounds) > 0 {
			extras = " [shaped]"
		}
		if g.UnsafePan {
			extras += " [unclamped]"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", g.Name, extras, g.Columns, g.Rows, g.Areas)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d template(s) for %d photo(s)\n", len(templates), count)
	return nil
}

func runLayoutsValidate(cmd *cobra.Command, args []string) error {
	warnings := layout.ValidateCatalog()
	if len(warnings) == 0 {
		fmt.Println("Catalog OK: no issues found.")
		return nil
	}

	errorCount := 0
	for _, w := range warnings {
		fmt.Printf("%s: %s\n", strings.ToUpper(w.Severity), w.String())
		if w.Severity == "error" {
			errorCount++
		}
	}

	fmt.Printf("\n%d issue(s), %d error(s)\n", len(warnings), errorCount)
	if errorCount > 0 {
		return fmt.Errorf("catalog has %d error(s)", errorCount)
	}
	return nil
}
