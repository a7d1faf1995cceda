package compress

import "github.com/arloliu/keyidx/format"

// NoOpCompressor stores payloads uncompressed.
//
// Both directions return the input slice itself, so callers must not modify
// data while the result is in use.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Type() format.CompressionType { return format.CompressionNone }

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	return checkSize(c, data, size)
}
