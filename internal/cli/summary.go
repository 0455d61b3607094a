package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cmplogview/pkg/report"
)

// maxHeaderWidth truncates long headers in the summary table.
const maxHeaderWidth = 48

// summaryCommand creates the summary command, which tabulates per-component counts.
func (c *CLI) summaryCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "summary " + pathArg,
		Short: "Show per-component entry counts",
		Long: `Show a table with one row per comparison site: the recorded hit count
(when the header carries one), the number of log entries, and how many of them
produce a narrow or a wide line in the report.

Sites that produce no report lines are hidden unless --all is given.`,
		Args: c.requirePath("summary"),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sums := report.Summarize(doc)
			return c.write(func(w io.Writer) error {
				return writeSummary(w, sums, all)
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include components with nothing printable")

	return cmd
}

// writeSummary renders sums as a table followed by a totals line.
func writeSummary(w io.Writer, sums []report.ComponentSummary, all bool) error {
	if len(sums) == 0 {
		printWarning(w, "Document has no components")
		return nil
	}

	var shown []report.ComponentSummary
	for _, s := range sums {
		if all || !s.Silent() {
			shown = append(shown, s)
		}
	}

	if len(shown) > 0 {
		rows := make([][]string, 0, len(shown))
		for _, s := range shown {
			hits := "—"
			if s.Hits > 0 {
				hits = strconv.FormatUint(uint64(s.Hits), 10)
			}
			rows = append(rows, []string{
				strconv.Itoa(s.Index),
				truncate(s.Header, maxHeaderWidth),
				hits,
				strconv.Itoa(s.Entries),
				strconv.Itoa(s.Narrow),
				strconv.Itoa(s.Wide),
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(StyleDim).
			Headers("#", "Header", "Hits", "Entries", "Narrow", "Wide").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return styleTableHeader.Padding(0, 1)
				}
				if col >= 4 && row < len(shown) && !shown[row].Silent() {
					return styleCell.Foreground(colorGreen)
				}
				return styleCell
			})

		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	entries, lines := report.Totals(sums)
	printInfo(w, "%s components, %s entries, %s report lines",
		StyleNumber.Render(strconv.Itoa(len(sums))),
		StyleNumber.Render(strconv.Itoa(entries)),
		StyleNumber.Render(strconv.Itoa(lines)))
	if hidden := len(sums) - len(shown); hidden > 0 {
		printDetail(w, "%d components with nothing printable hidden (use --all)", hidden)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
