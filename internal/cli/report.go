package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cmplogview/pkg/report"
)

// runReport prints the operand report for the document at path.
func (c *CLI) runReport(cmd *cobra.Command, path string) error {
	doc, err := c.load(cmd.Context(), path)
	if err != nil {
		return err
	}
	opts := c.reportOptions(cmd)
	return c.write(func(w io.Writer) error {
		return report.NewPrinter(w, opts).Print(doc)
	})
}
