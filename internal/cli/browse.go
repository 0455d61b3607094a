package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cmplogview/pkg/cmplog"
	"github.com/matzehuels/cmplogview/pkg/report"
)

// browseCommand creates the browse command, an interactive component viewer.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse " + pathArg,
		Short: "Browse components interactively",
		Long: `Open a full-screen list of comparison sites. Press enter to see a site's
report lines, esc to go back, q to quit.`,
		Args: c.requirePath("browse"),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			m := newBrowseModel(doc, report.NewPrinter(nil, c.reportOptions(cmd)))
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// Browse styles
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = StyleValue
	browseDimStyle      = StyleDim
	browseHitStyle      = StyleSuccess
)

// =============================================================================
// browseModel - Interactive component viewer
// =============================================================================

// browseModel is the bubbletea model behind the browse command. It shows the
// component list, or one component's report lines when detail >= 0.
type browseModel struct {
	doc     *cmplog.Document
	printer *report.Printer
	sums    []report.ComponentSummary

	cursor int
	offset int
	height int

	detail int
	lines  []string
	scroll int
}

func newBrowseModel(doc *cmplog.Document, p *report.Printer) browseModel {
	return browseModel{
		doc:     doc,
		printer: p,
		sums:    report.Summarize(doc),
		height:  15,
		detail:  -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.detail >= 0 {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
		m.clampOffset()
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sums)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.sums)-1, 0)
	case "enter":
		if len(m.sums) == 0 {
			return m, nil
		}
		m.detail = m.cursor
		m.lines = m.printer.Lines(&m.doc.Cmps[m.cursor])
		m.scroll = 0
	}
	m.clampOffset()
	return m, nil
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace", "left", "h":
		m.detail = -1
		m.lines = nil
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		if m.scroll < len(m.lines)-m.height {
			m.scroll++
		}
	}
	return m, nil
}

// clampOffset keeps the cursor inside the visible window.
func (m *browseModel) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m browseModel) View() string {
	if m.detail >= 0 {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m browseModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Components"))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	if len(m.sums) == 0 {
		b.WriteString(browseDimStyle.Render("  no components"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.height, len(m.sums))
	for i := m.offset; i < end; i++ {
		s := m.sums[i]
		cursor := "  "
		if i == m.cursor {
			cursor = iconCursor
		}

		counts := fmt.Sprintf("%d entries", s.Entries)
		if !s.Silent() {
			counts += " · " + browseHitStyle.Render(fmt.Sprintf("%d printable", s.Narrow+s.Wide))
		}

		line := cursor + truncate(s.Header, maxHeaderWidth)
		switch {
		case i == m.cursor:
			line = browseSelectedStyle.Render(line)
		case s.Silent():
			line = browseDimStyle.Render(line)
		default:
			line = browseNormalStyle.Render(line)
		}
		b.WriteString(line + "  " + browseDimStyle.Render(counts))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.sums))))
	return b.String()
}

func (m browseModel) viewDetail() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.sums[m.detail].Header))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓ scroll  esc back  q quit"))
	b.WriteString("\n\n")

	if len(m.lines) == 0 {
		b.WriteString(browseDimStyle.Render("  nothing printable"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.scroll+m.height, len(m.lines))
	for _, l := range m.lines[m.scroll:end] {
		b.WriteString("  " + browseNormalStyle.Render(l))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  lines %d-%d of %d", m.scroll+1, end, len(m.lines))))
	return b.String()
}
