// Package pkg provides the core libraries for cmplogview, an inspector for
// CmpLog comparison traces.
//
// # Overview
//
// A fuzzer's CmpLog instrumentation records the operands of every comparison
// the target executes. When a target checks its input against a magic value,
// that value sits in one of the operands. cmplogview loads such a trace from
// JSON and prints the printable ASCII found in each operand, so the magic
// values read as text.
//
// The pkg directory is organized as:
//
//  1. [cmplog] - Document model and JSON import
//  2. [operand] - Little-endian byte extraction and printable filtering
//  3. [report] - Text report, hex dump and per-component summaries
//  4. [config] - TOML configuration file
//  5. [errors] - Coded errors shared by every package
//  6. [buildinfo] - Version information set at link time
//
// # Data Flow
//
//	CmpLog JSON file
//	       ↓
//	  [cmplog] package (decode + validate)
//	       ↓
//	  [operand] package (bytes + printable filter)
//	       ↓
//	  [report] package (lines)
//	       ↓
//	  stdout
//
// # Quick Start
//
//	doc, err := cmplog.ImportJSON("cmplog.json")
//	if err != nil {
//	    return err
//	}
//	return report.NewPrinter(os.Stdout, report.Options{}).Print(doc)
//
// # Testing
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/operand/...     # Specific package
//
// [cmplog]: https://pkg.go.dev/github.com/matzehuels/cmplogview/pkg/cmplog
// [operand]: https://pkg.go.dev/github.com/matzehuels/cmplogview/pkg/operand
// [report]: https://pkg.go.dev/github.com/matzehuels/cmplogview/pkg/report
// [config]: https://pkg.go.dev/github.com/matzehuels/cmplogview/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/cmplogview/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cmplogview/pkg/buildinfo
package pkg
