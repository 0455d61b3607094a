// Package operand turns comparison operands into bytes and printable text.
//
// CmpLog records the two sides of every instrumented comparison as plain
// integers. When a program compares its input against a magic value, that
// value usually appears as ASCII packed into the integer in little-endian
// order. [Printable] recovers those characters:
//
//	v := uint256.NewInt(0x4241)
//	operand.Bytes(v)     // []byte{0x41, 0x42}
//	operand.Printable(v) // "AB"
//
// Operands are unsigned ([uint256.Int]), so negative values cannot reach
// this package; the loader in pkg/cmplog rejects them.
package operand

import (
	"strings"

	"github.com/holiman/uint256"
)

// Printable ASCII bounds, inclusive. Space (32) and DEL (127) are excluded.
const (
	MinPrintable = 33
	MaxPrintable = 126
)

const hexDigits = "0123456789abcdef"

// IsPrintable reports whether b is kept by [Printable].
func IsPrintable(b byte) bool {
	return b >= MinPrintable && b <= MaxPrintable
}

// Bytes returns the minimal little-endian byte sequence of n.
//
// The low byte comes first. Zero yields the single byte 0; any other
// value yields exactly as many bytes as needed, with no high zero padding.
// A nil n is treated as zero.
func Bytes(n *uint256.Int) []byte {
	if n == nil || n.IsZero() {
		return []byte{0}
	}
	// Bytes is big-endian and minimal.
	be := n.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// Printable returns the printable ASCII bytes of n, in little-endian order.
// Every other byte is dropped, so the result may be empty.
func Printable(n *uint256.Int) string {
	bs := Bytes(n)
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		if IsPrintable(b) {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// Escaped is like [Printable] but writes each non-printable byte as \xNN
// instead of dropping it. The result is never empty.
func Escaped(n *uint256.Int) string {
	bs := Bytes(n)
	var sb strings.Builder
	sb.Grow(len(bs) * 4)
	for _, b := range bs {
		if IsPrintable(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteString(`\x`)
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	return sb.String()
}

// Renderer maps an operand to text. [Printable] and [Escaped] are Renderers.
type Renderer func(n *uint256.Int) string
