// Package report prints CmpLog documents as text.
//
// [Printer.Print] writes the operand report: each component's header on its
// own line, then one line per entry whose narrow operands contain printable
// ASCII and one line, suffixed "(128)", per entry whose wide operands do:
//
//	parse_magic
//	03 - /AB/ - //
//	07 - /GIF8/ - /PNG/   (128)
//
// Entries with nothing printable produce no line. [Printer.PrintHex] writes
// raw operands in hex instead, and [Summarize] counts what Print would show.
package report

import (
	"fmt"
	"io"

	"github.com/holiman/uint256"

	"github.com/matzehuels/cmplogview/pkg/cmplog"
	"github.com/matzehuels/cmplogview/pkg/operand"
)

// Options controls rendering.
type Options struct {
	// Escape writes non-printable bytes as \xNN instead of dropping them.
	// Whether a line is printed at all is still decided by the printable
	// bytes alone, so escaping never adds lines.
	Escape bool
}

// Printer writes reports to an io.Writer.
type Printer struct {
	w      io.Writer
	render operand.Renderer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	render := operand.Printable
	if opts.Escape {
		render = operand.Escaped
	}
	return &Printer{w: w, render: render}
}

// Print writes the operand report for doc. It returns the first write error.
func (p *Printer) Print(doc *cmplog.Document) error {
	for i := range doc.Cmps {
		if err := p.PrintComponent(&doc.Cmps[i]); err != nil {
			return err
		}
	}
	return nil
}

// PrintComponent writes the report for a single component.
func (p *Printer) PrintComponent(c *cmplog.Component) error {
	if _, err := fmt.Fprintln(p.w, c.Header.String()); err != nil {
		return err
	}
	for _, line := range p.Lines(c) {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the entry lines Print writes for c, without the header.
func (p *Printer) Lines(c *cmplog.Component) []string {
	var lines []string
	for i := range c.Log {
		e := &c.Log[i]
		if l, ok := p.pair(&e.V0, &e.V1); ok {
			lines = append(lines, fmt.Sprintf("%02d - %s", i, l))
		}
		if l, ok := p.pair(&e.V0128, &e.V1128); ok {
			lines = append(lines, fmt.Sprintf("%02d - %s   (128)", i, l))
		}
	}
	return lines
}

// pair renders two operands as "/a/ - /b/". ok is false when neither has a
// printable byte.
func (p *Printer) pair(a, b *uint256.Int) (string, bool) {
	pa, pb := operand.Printable(a), operand.Printable(b)
	if pa == "" && pb == "" {
		return "", false
	}
	return "/" + p.render(a) + "/ - /" + p.render(b) + "/", true
}
