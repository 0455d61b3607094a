// Package cmplog loads CmpLog comparison traces stored as JSON.
//
// # Overview
//
// A CmpLog-instrumented target records, for every comparison site it hits,
// the operands of the most recent executions. A recorder dumps that map to
// JSON, and this package reads it back into typed values for reporting.
//
// # JSON Format
//
// The document has one required top-level array:
//
//	{
//	  "cmps": [
//	    {
//	      "header": "parse_magic",
//	      "log": [
//	        {"v0": 16961, "v1": 0, "v0_128": 0, "v1_128": 0}
//	      ]
//	    }
//	  ]
//	}
//
// # Component Fields
//
// Required:
//   - header: label of the comparison site. A string is used as-is. Any
//     other JSON value (recorders emit the unpacked header object, some emit
//     the packed 64-bit word) is kept and labelled by its compact JSON text.
//   - log: array of operand records, oldest first.
//
// # Entry Fields
//
// Required, all non-negative JSON integers up to 2^256-1:
//   - v0, v1: operands of the narrow (up to 64-bit) comparison
//   - v0_128, v1_128: operands of the wide (128-bit) comparison
//
// Unknown keys are ignored everywhere.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	doc, err := cmplog.ImportJSON("cmplog.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Errors carry a code from pkg/errors: FILE_ACCESS when the file cannot be
// opened, PARSE for invalid JSON, SCHEMA for missing or mistyped fields, and
// NEGATIVE_VALUE, INVALID_VALUE or VALUE_OVERFLOW for operands that do not
// fit an unsigned 256-bit integer. Shape errors name the offending field,
// e.g. "cmps[2].log[5].v0_128".
//
// # Headers
//
// The recorder packs each site's descriptor into one 64-bit word. Use
// [UnpackHeader] to split it, or [Header.Fields] to get the fields from
// whichever form the document used.
package cmplog
