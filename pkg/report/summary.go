package report

import (
	"github.com/matzehuels/cmplogview/pkg/cmplog"
	"github.com/matzehuels/cmplogview/pkg/operand"
)

// ComponentSummary counts the lines [Printer.Print] would write for one
// component.
type ComponentSummary struct {
	Index   int
	Header  string
	Hits    uint32 // from the header descriptor; 0 when the header is a label
	Entries int
	Narrow  int // entries with a printable narrow operand
	Wide    int // entries with a printable wide operand
}

// Silent reports whether the component produces no entry lines.
func (s ComponentSummary) Silent() bool {
	return s.Narrow == 0 && s.Wide == 0
}

// Summarize returns one summary per component, in document order.
func Summarize(doc *cmplog.Document) []ComponentSummary {
	out := make([]ComponentSummary, 0, len(doc.Cmps))
	for i := range doc.Cmps {
		c := &doc.Cmps[i]
		s := ComponentSummary{
			Index:   i,
			Header:  c.Header.String(),
			Entries: len(c.Log),
		}
		if f, ok := c.Header.Fields(); ok {
			s.Hits = f.Hits
		}
		for j := range c.Log {
			e := &c.Log[j]
			if operand.Printable(&e.V0) != "" || operand.Printable(&e.V1) != "" {
				s.Narrow++
			}
			if operand.Printable(&e.V0128) != "" || operand.Printable(&e.V1128) != "" {
				s.Wide++
			}
		}
		out = append(out, s)
	}
	return out
}

// Totals sums entries and printed lines over all summaries.
func Totals(sums []ComponentSummary) (entries, lines int) {
	for _, s := range sums {
		entries += s.Entries
		lines += s.Narrow + s.Wide
	}
	return entries, lines
}
