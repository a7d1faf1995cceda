package format

import (
	"fmt"

	"github.com/arloliu/keyidx/errs"
)

type (
	Kind            uint8
	Side            uint8
	CompressionType uint8
)

const (
	KindInvalid   Kind = 0x0
	KindInt8      Kind = 0x1
	KindInt16     Kind = 0x2
	KindInt32     Kind = 0x3
	KindInt64     Kind = 0x4
	KindUint8     Kind = 0x5
	KindUint16    Kind = 0x6
	KindUint32    Kind = 0x7
	KindUint64    Kind = 0x8
	KindFloat32   Kind = 0x9
	KindFloat64   Kind = 0xA
	KindObject    Kind = 0xB // KindObject holds arbitrary comparable values, including tuples.
	KindDatetime  Kind = 0xC // KindDatetime holds UTC nanoseconds since the Unix epoch.
	KindTimedelta Kind = 0xD // KindTimedelta holds nanosecond durations.

	SideLeft  Side = 0x1 // SideLeft selects the first insertion point.
	SideRight Side = 0x2 // SideRight selects the last insertion point.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindObject:
		return "object"
	case KindDatetime:
		return "datetime"
	case KindTimedelta:
		return "timedelta"
	default:
		return "Unknown"
	}
}

// Valid reports whether k names a supported kind.
func (k Kind) Valid() bool {
	return k >= KindInt8 && k <= KindTimedelta
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsNumeric reports whether k is an integer or floating point kind.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// IsTemporal reports whether k is a datetime or timedelta kind.
func (k Kind) IsTemporal() bool {
	return k == KindDatetime || k == KindTimedelta
}

// Width returns the element width in bytes for fixed-width kinds, 0 for objects.
func (k Kind) Width() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64, KindDatetime, KindTimedelta:
		return 8
	default:
		return 0
	}
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "Unknown"
	}
}

// ParseSide parses "left" or "right".
// Any other value returns an error matching errs.ErrInvalidSide.
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidSide, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c names a supported compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
