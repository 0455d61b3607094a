package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cmplogview/pkg/report"
)

// hexCommand creates the hex command, which dumps differing operands in hex.
func (c *CLI) hexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hex " + pathArg,
		Short: "Dump differing operands as hex",
		Long: `Print every comparison whose operands differ, as zero-padded hex.

Each line shows the entry index and both operands. Wide (128-bit) operand
pairs are marked "(128)".`,
		Args: c.requirePath("hex"),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.write(func(w io.Writer) error {
				return report.NewPrinter(w, report.Options{}).PrintHex(doc)
			})
		},
	}
}
