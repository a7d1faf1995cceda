package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
)

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Type() format.CompressionType { return format.CompressionS2 }

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress checks the block's declared length against size before decoding.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(c, nil, size)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidPayload, err)
	}
	if n != size {
		return nil, sizeMismatch(c, uint64(n), size)
	}

	out, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidPayload, err)
	}

	return checkSize(c, out, size)
}
