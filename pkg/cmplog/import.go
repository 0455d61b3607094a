package cmplog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/holiman/uint256"

	"github.com/matzehuels/cmplogview/pkg/errors"
)

// rawDocument mirrors the JSON layout with every required field nullable so
// that absence can be told apart from zero values.
type rawDocument struct {
	Cmps *[]rawComponent `json:"cmps"`
}

type rawComponent struct {
	Header json.RawMessage `json:"header"`
	Log    *[]rawEntry     `json:"log"`
}

type rawEntry struct {
	V0    json.RawMessage `json:"v0"`
	V1    json.RawMessage `json:"v1"`
	V0128 json.RawMessage `json:"v0_128"`
	V1128 json.RawMessage `json:"v1_128"`
}

// ReadJSON decodes a CmpLog document from r.
//
// The JSON syntax of the whole input is checked before any field, so a
// syntax error anywhere is reported as PARSE. Field errors (missing keys,
// wrong JSON types, negative, fractional or oversized operands) are reported
// with the path of the first offending field. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, err, "read")
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "decode")
		}
		return nil, schemaError(err)
	}
	return raw.convert()
}

// ImportJSON reads the CmpLog document at path.
//
// ImportJSON opens the file read-only, decodes it using [ReadJSON], and
// closes it on every path. A file that cannot be opened is reported as
// FILE_ACCESS; everything else is as for [ReadJSON].
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, err, "cannot read input")
	}
	defer f.Close()
	return ReadJSON(f)
}

// schemaError converts a type mismatch reported by encoding/json into a
// SCHEMA error.
func schemaError(err error) error {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		field := te.Field
		if field == "" {
			field = "document"
		}
		return errors.New(errors.ErrCodeSchema, "%s: expected %s, got JSON %s", field, te.Type, te.Value)
	}
	return errors.Wrap(errors.ErrCodeSchema, err, "decode")
}

func (d rawDocument) convert() (*Document, error) {
	if d.Cmps == nil {
		return nil, errors.New(errors.ErrCodeSchema, "missing %q", "cmps")
	}
	doc := &Document{Cmps: make([]Component, 0, len(*d.Cmps))}
	for i, rc := range *d.Cmps {
		c, err := rc.convert(fmt.Sprintf("cmps[%d]", i))
		if err != nil {
			return nil, err
		}
		doc.Cmps = append(doc.Cmps, c)
	}
	return doc, nil
}

func (rc rawComponent) convert(path string) (Component, error) {
	if isNull(rc.Header) {
		return Component{}, errors.New(errors.ErrCodeSchema, "%s: missing %q", path, "header")
	}
	h, err := parseHeader(rc.Header)
	if err != nil {
		return Component{}, errors.Wrap(errors.ErrCodeSchema, err, "%s.header", path)
	}
	if rc.Log == nil {
		return Component{}, errors.New(errors.ErrCodeSchema, "%s: missing %q", path, "log")
	}

	c := Component{Header: h, Log: make([]Entry, len(*rc.Log))}
	for j, re := range *rc.Log {
		if err := re.convert(fmt.Sprintf("%s.log[%d]", path, j), &c.Log[j]); err != nil {
			return Component{}, err
		}
	}
	return c, nil
}

func (re rawEntry) convert(path string, e *Entry) error {
	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *uint256.Int
	}{
		{"v0", re.V0, &e.V0},
		{"v1", re.V1, &e.V1},
		{"v0_128", re.V0128, &e.V0128},
		{"v1_128", re.V1128, &e.V1128},
	}
	for _, f := range fields {
		if isNull(f.raw) {
			return errors.New(errors.ErrCodeSchema, "%s: missing %q", path, f.name)
		}
		if err := parseOperand(f.raw, f.dst); err != nil {
			return errors.New(errors.GetCode(err), "%s.%s: %s", path, f.name, errors.UserMessage(err))
		}
	}
	return nil
}

// parseOperand decodes a JSON integer literal into dst. The returned errors
// carry their code; the caller adds the field path.
func parseOperand(raw json.RawMessage, dst *uint256.Int) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return errors.New(errors.ErrCodeSchema, "expected integer, got %s", kindOf(raw))
	}
	if bytes.ContainsAny(raw, ".eE") {
		return errors.New(errors.ErrCodeInvalidValue, "%s is not an integer", raw)
	}
	n, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return errors.New(errors.ErrCodeInvalidValue, "%s is not an integer", raw)
	}
	if n.Sign() < 0 {
		return errors.New(errors.ErrCodeNegativeValue, "%s is negative", raw)
	}
	v, overflow := uint256.FromBig(n)
	if overflow {
		return errors.New(errors.ErrCodeValueOverflow, "%s exceeds 256 bits", raw)
	}
	dst.Set(v)
	return nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// kindOf names the JSON type of a raw value for error messages.
func kindOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	}
	return "number"
}
