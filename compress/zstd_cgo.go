//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
)

// ZstdCompressor compresses payloads with the cgo zstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

func (c ZstdCompressor) Type() format.CompressionType { return format.CompressionZstd }

func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c, nil, size)
	}

	if err := checkZstdFrame(c, data, size); err != nil {
		return nil, err
	}

	out, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrInvalidPayload, err)
	}

	return checkSize(c, out, size)
}
