package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/keyidx/endian"
	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
)

const (
	// HeaderSize is the fixed size of a snapshot header in bytes.
	HeaderSize = 24

	// Magic identifies a key snapshot. It is always stored little-endian.
	Magic uint16 = 0x4B49

	// Version is the snapshot layout version written by Marshal.
	Version uint8 = 1

	flagBigEndian uint8 = 0x1
)

// Header is the fixed-size section at the start of every snapshot.
//
// Layout:
//
//	0-1   magic (little-endian)
//	2     version
//	3     flags, bit 0 set when the payload is big-endian
//	4     kind
//	5     compression
//	6-7   reserved
//	8-15  element count
//	16-23 decoded payload size in bytes
//
// Count and RawSize use the payload byte order.
type Header struct {
	Version     uint8
	Flags       uint8
	Kind        format.Kind
	Compression format.CompressionType
	Count       uint64
	RawSize     uint64
}

// BigEndian reports whether the payload and size fields are big-endian.
func (h *Header) BigEndian() bool {
	return h.Flags&flagBigEndian != 0
}

// Engine returns the byte order of the payload.
func (h *Header) Engine() endian.EndianEngine {
	return endian.FromFlag(h.BigEndian())
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.appendTo(make([]byte, 0, HeaderSize))
}

func (h *Header) appendTo(b []byte) []byte {
	engine := h.Engine()

	b = binary.LittleEndian.AppendUint16(b, Magic)
	b = append(b, h.Version, h.Flags, byte(h.Kind), byte(h.Compression), 0, 0)
	b = engine.AppendUint64(b, h.Count)
	b = engine.AppendUint64(b, h.RawSize)

	return b
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrUnsupportedVersion,
//     ErrUnsupportedKind or ErrUnsupportedCompression
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != Magic {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}

	h.Version = data[2]
	h.Flags = data[3]
	h.Kind = format.Kind(data[4])
	h.Compression = format.CompressionType(data[5])

	engine := h.Engine()
	h.Count = engine.Uint64(data[8:16])
	h.RawSize = engine.Uint64(data[16:24])

	return h.validate()
}

func (h *Header) validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	if !h.Kind.Valid() {
		return fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedKind, uint8(h.Kind))
	}

	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedCompression, uint8(h.Compression))
	}

	if h.Count > math.MaxUint32 {
		return fmt.Errorf("%w: %w: count %d", errs.ErrInvalidPayload, errs.ErrTooManyKeys, h.Count)
	}

	if h.RawSize > math.MaxUint32*8 {
		return fmt.Errorf("%w: payload size %d", errs.ErrInvalidPayload, h.RawSize)
	}

	// every object key takes at least one msgpack byte
	if h.Kind == format.KindObject && h.Count > h.RawSize {
		return fmt.Errorf("%w: %d object keys cannot fit in %d bytes", errs.ErrInvalidPayload, h.Count, h.RawSize)
	}

	if width := h.Kind.Width(); width > 0 && h.RawSize != h.Count*uint64(width) {
		return fmt.Errorf("%w: %d %s values need %d bytes, header says %d",
			errs.ErrInvalidPayload, h.Count, h.Kind, h.Count*uint64(width), h.RawSize)
	}

	return nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
