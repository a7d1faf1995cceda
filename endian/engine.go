// Package endian provides byte order utilities for the key snapshot format.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into one EndianEngine and adds typed helpers that write and read fixed-width
// key values through it.
//
// # Basic Usage
//
// Snapshots are little-endian unless a big-endian engine is requested:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendNumber(engine, buf, int32(-7))
//	v := endian.Number[int32](engine, buf)
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Fixed is the set of fixed-width values a snapshot stores.
type Fixed interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// FromFlag returns the big-endian engine when bigEndian is set, else the
// little-endian one.
func FromFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Width returns the encoded size of T in bytes.
func Width[T Fixed]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// AppendNumber appends the encoding of v to b.
func AppendNumber[T Fixed](engine EndianEngine, b []byte, v T) []byte {
	switch x := any(v).(type) {
	case int8:
		return append(b, byte(x))
	case uint8:
		return append(b, x)
	case int16:
		return engine.AppendUint16(b, uint16(x))
	case uint16:
		return engine.AppendUint16(b, x)
	case int32:
		return engine.AppendUint32(b, uint32(x))
	case uint32:
		return engine.AppendUint32(b, x)
	case float32:
		return engine.AppendUint32(b, math.Float32bits(x))
	case int64:
		return engine.AppendUint64(b, uint64(x))
	case uint64:
		return engine.AppendUint64(b, x)
	case float64:
		return engine.AppendUint64(b, math.Float64bits(x))
	default:
		return b
	}
}

// Number decodes a T from the start of b, which must hold at least Width[T]() bytes.
func Number[T Fixed](engine EndianEngine, b []byte) T {
	var v any
	var zero T
	switch any(zero).(type) {
	case int8:
		v = int8(b[0])
	case uint8:
		v = b[0]
	case int16:
		v = int16(engine.Uint16(b))
	case uint16:
		v = engine.Uint16(b)
	case int32:
		v = int32(engine.Uint32(b))
	case uint32:
		v = engine.Uint32(b)
	case float32:
		v = math.Float32frombits(engine.Uint32(b))
	case int64:
		v = int64(engine.Uint64(b))
	case uint64:
		v = engine.Uint64(b)
	case float64:
		v = math.Float64frombits(engine.Uint64(b))
	}

	return v.(T)
}
