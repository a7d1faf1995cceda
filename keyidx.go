// Package keyidx provides hash and bisection based lookup engines for
// immutable arrays of index keys.
//
// An engine answers where a key lives in its array (a single position, a
// contiguous range or a boolean mask), whether the array is unique or
// monotonic, and how another array aligns to it with exact, forward-fill or
// backward-fill matching.
//
// # Core Features
//
//   - Engines for every fixed-width integer and float type, boxed object keys,
//     datetimes and timedeltas
//   - Lazily built hash index with xxHash64 object hashing and roaring bitmap
//     position lists for duplicates
//   - Binary search instead of hashing for large monotonic arrays
//   - Pad and backfill alignment with an optional fill limit
//   - Snapshots of key arrays with optional Zstd, S2 or LZ4 compression
//   - Conversion from Apache Arrow arrays
//
// # Basic Usage
//
//	e, _ := keyidx.New(keys.Strings("a", "b", "b", "c"))
//	loc, _ := e.GetLoc("b") // engine.Range{Start: 1, Stop: 3}
//
//	data, _ := keyidx.Snapshot(keys.Ints(10, 20, 30))
//	e, _ = keyidx.Load(data)
//	pos, _ := e.GetPadIndexer(keys.Ints(15, 35)) // [0 2]
//
// # Package Structure
//
// This package wraps the engine, codec and keys/arrowkeys packages for the
// most common cases. Use those packages directly for finer control.
package keyidx

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/arloliu/keyidx/codec"
	"github.com/arloliu/keyidx/engine"
	"github.com/arloliu/keyidx/format"
	"github.com/arloliu/keyidx/internal/hash"
	"github.com/arloliu/keyidx/keys"
	"github.com/arloliu/keyidx/keys/arrowkeys"
)

var (
	defaultFixedOptions = []codec.Option{
		codec.WithLittleEndian(),
		codec.WithCompression(format.CompressionS2),
	}
	defaultObjectOptions = []codec.Option{
		codec.WithLittleEndian(),
		codec.WithCompression(format.CompressionZstd),
	}
)

// New creates an engine for arr.
//
// Example:
//
//	e, err := keyidx.New(keys.Ints(1, 2, 3), engine.WithSizeCutoff(1<<20))
func New(arr keys.Array, opts ...engine.Option) (engine.Engine, error) {
	return engine.New(arr, opts...)
}

// FromArrow converts an Arrow array and creates an engine over the result.
// See arrowkeys.FromArrow for the null handling.
func FromArrow(arr arrow.Array, opts ...engine.Option) (engine.Engine, error) {
	converted, err := arrowkeys.FromArrow(arr)
	if err != nil {
		return nil, err
	}

	return engine.New(converted, opts...)
}

// Snapshot encodes arr with the recommended settings: little-endian, S2 for
// fixed-width kinds and Zstd for object keys.
//
// Use codec.Marshal directly to choose other settings.
func Snapshot(arr keys.Array) ([]byte, error) {
	if arr != nil && arr.Kind() == format.KindObject {
		return codec.Marshal(arr, defaultObjectOptions...)
	}

	return codec.Marshal(arr, defaultFixedOptions...)
}

// Load decodes a snapshot and creates an engine over the stored keys.
func Load(data []byte, opts ...engine.Option) (engine.Engine, error) {
	arr, err := codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return engine.New(arr, opts...)
}

// KeyHash returns the 64-bit hash the object engine uses for key.
//
// Keys that compare equal hash equally, across numeric types and for every
// missing value.
func KeyHash(key any) uint64 {
	return hash.Object(key)
}
