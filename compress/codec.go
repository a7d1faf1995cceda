package compress

import (
	"fmt"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
)

// Compressor compresses a snapshot payload.
//
// The returned slice is owned by the caller. Implementations never modify data.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// size is the decoded length recorded in the snapshot header. A result of any
// other length is reported as an error matching errs.ErrInvalidPayload.
type Decompressor interface {
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both directions for one compression type.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

func checkSize(codec Codec, out []byte, size int) ([]byte, error) {
	if len(out) != size {
		return nil, sizeMismatch(codec, uint64(len(out)), size)
	}

	return out, nil
}

func sizeMismatch(codec Codec, got uint64, size int) error {
	return fmt.Errorf("%w: %s payload decodes to %d bytes, header says %d",
		errs.ErrInvalidPayload, codec.Type(), got, size)
}

// checkRatio rejects a declared size that n compressed bytes cannot expand to
// when one input byte yields at most maxRatio output bytes.
func checkRatio(codec Codec, n int, size int, maxRatio uint64) error {
	if size < 0 || uint64(size) > uint64(n)*maxRatio {
		return fmt.Errorf("%w: %d %s bytes cannot decode to %d bytes",
			errs.ErrInvalidPayload, n, codec.Type(), size)
	}

	return nil
}
