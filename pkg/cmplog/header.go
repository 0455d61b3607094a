package cmplog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Header identifies a comparison site. It keeps the JSON value the document
// used so that both string labels and recorder descriptors survive loading.
type Header struct {
	raw   json.RawMessage
	label string
}

// NewHeader returns a Header with a plain string label.
func NewHeader(label string) Header {
	raw, _ := json.Marshal(label)
	return Header{raw: raw, label: label}
}

// parseHeader builds a Header from a non-null JSON value.
func parseHeader(raw json.RawMessage) (Header, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Header{}, err
		}
		return Header{raw: raw, label: s}, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Header{}, err
	}
	return Header{raw: json.RawMessage(buf.Bytes()), label: buf.String()}, nil
}

// String returns the label printed for the component: the string itself for
// string headers, the compact JSON text otherwise.
func (h Header) String() string {
	return h.label
}

// Raw returns the header's JSON value.
func (h Header) Raw() json.RawMessage {
	return h.raw
}

// IsLabel reports whether the header is a plain string.
func (h Header) IsLabel() bool {
	return len(h.raw) > 0 && h.raw[0] == '"'
}

// Fields returns the descriptor fields when the header is a packed 64-bit
// word or an unpacked descriptor object. ok is false for string labels and
// any other shape.
func (h Header) Fields() (f HeaderFields, ok bool) {
	if len(h.raw) == 0 {
		return HeaderFields{}, false
	}
	switch c := h.raw[0]; {
	case c >= '0' && c <= '9':
		packed, err := strconv.ParseUint(string(h.raw), 10, 64)
		if err != nil {
			return HeaderFields{}, false
		}
		return UnpackHeader(packed), true
	case c == '{':
		var obj struct {
			Hits      *uint32 `json:"hits"`
			ID        *uint32 `json:"id"`
			Shape     uint8   `json:"shape"`
			Type      uint8   `json:"ty"`
			Attribute uint8   `json:"attribute"`
			Overflow  bool    `json:"overflow"`
		}
		if err := json.Unmarshal(h.raw, &obj); err != nil || obj.Hits == nil || obj.ID == nil {
			return HeaderFields{}, false
		}
		return HeaderFields{
			Hits:      *obj.Hits,
			ID:        *obj.ID,
			Shape:     obj.Shape,
			Type:      obj.Type,
			Attribute: obj.Attribute,
			Overflow:  obj.Overflow,
		}, true
	}
	return HeaderFields{}, false
}

// HeaderFields is the unpacked CmpLog site descriptor.
type HeaderFields struct {
	Hits      uint32 // 24 bits
	ID        uint32 // 24 bits
	Shape     uint8  // 5 bits; operand size in bytes minus one
	Type      uint8  // 2 bits
	Attribute uint8  // 4 bits
	Overflow  bool
}

// Bit widths of the packed descriptor, least significant field first.
const (
	hitsBits      = 24
	idBits        = 24
	shapeBits     = 5
	typeBits      = 2
	attributeBits = 4
)

// UnpackHeader splits a packed descriptor word into its fields.
// Bits above the overflow flag are reserved and ignored.
func UnpackHeader(x uint64) HeaderFields {
	var f HeaderFields
	f.Hits = uint32(x & (1<<hitsBits - 1))
	x >>= hitsBits
	f.ID = uint32(x & (1<<idBits - 1))
	x >>= idBits
	f.Shape = uint8(x & (1<<shapeBits - 1))
	x >>= shapeBits
	f.Type = uint8(x & (1<<typeBits - 1))
	x >>= typeBits
	f.Attribute = uint8(x & (1<<attributeBits - 1))
	x >>= attributeBits
	f.Overflow = x&1 != 0
	return f
}

// Pack is the inverse of [UnpackHeader]. Fields wider than their slot are
// truncated.
func (f HeaderFields) Pack() uint64 {
	var x uint64
	if f.Overflow {
		x = 1
	}
	x = x<<attributeBits | uint64(f.Attribute)&(1<<attributeBits-1)
	x = x<<typeBits | uint64(f.Type)&(1<<typeBits-1)
	x = x<<shapeBits | uint64(f.Shape)&(1<<shapeBits-1)
	x = x<<idBits | uint64(f.ID)&(1<<idBits-1)
	x = x<<hitsBits | uint64(f.Hits)&(1<<hitsBits-1)
	return x
}
