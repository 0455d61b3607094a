package report

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/matzehuels/cmplogview/pkg/cmplog"
)

// PrintHex writes every entry whose operands differ as zero-padded hex:
//
//	parse_magic
//	    003 0x0000000000004241 0x0000000000000000
//	    003 0x0000000000000000 0x0000000000000001   (128)
//
// Equal operands are skipped.
func (p *Printer) PrintHex(doc *cmplog.Document) error {
	for _, c := range doc.Cmps {
		if _, err := fmt.Fprintln(p.w, c.Header.String()); err != nil {
			return err
		}
		for j := range c.Log {
			e := &c.Log[j]
			if !e.V0.Eq(&e.V1) {
				if _, err := fmt.Fprintf(p.w, "    %03d %s %s\n", j, hex(&e.V0), hex(&e.V1)); err != nil {
					return err
				}
			}
			if !e.V0128.Eq(&e.V1128) {
				if _, err := fmt.Fprintf(p.w, "    %03d %s %s   (128)\n", j, hex(&e.V0128), hex(&e.V1128)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// hex formats n as 0x followed by at least 16 uppercase digits.
func hex(n *uint256.Int) string {
	if n.IsUint64() {
		return fmt.Sprintf("0x%016X", n.Uint64())
	}
	return fmt.Sprintf("0x%016X", n.ToBig())
}
