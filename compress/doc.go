// Package compress provides the payload codecs used by key snapshots.
//
// A snapshot stores its encoded keys as one payload, optionally compressed
// with one of the algorithms named by format.CompressionType:
//   - None: payload stored as is
//   - Zstd: best ratio, suited to object keys and archived snapshots
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// The decoded size is carried by the snapshot header, so Decompress takes it
// as an argument and rejects payloads that decode to any other length.
//
// Zstd uses the pure Go klauspost/compress implementation by default. Building
// with both cgo and the gozstd tag switches to the valyala/gozstd binding.
//
// All codecs returned by GetCodec are safe for concurrent use.
package compress
