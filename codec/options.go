package codec

import (
	"fmt"

	"github.com/arloliu/keyidx/compress"
	"github.com/arloliu/keyidx/endian"
	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
	"github.com/arloliu/keyidx/internal/options"
)

type config struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

// Option configures Marshal.
type Option = options.Option[*config]

func defaultConfig() *config {
	return &config{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// WithCompression sets the payload compression.
//
// Default: format.CompressionNone
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian writes the payload and size fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithLittleEndian writes the payload and size fields little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}
