package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/keyidx/errs"
)

// zstdMaxRatio bounds the expansion of a zstd frame: the smallest block is a
// 4 byte RLE block, which decodes to at most 128 KiB.
const zstdMaxRatio = 1 << 15

// checkZstdFrame rejects a frame whose declared size cannot match size before
// any output buffer is allocated.
func checkZstdFrame(c Codec, data []byte, size int) error {
	if err := checkRatio(c, len(data), size, zstdMaxRatio); err != nil {
		return err
	}

	var fh zstd.Header
	if err := fh.Decode(data); err != nil {
		return fmt.Errorf("%w: zstd: %w", errs.ErrInvalidPayload, err)
	}
	if fh.HasFCS && fh.FrameContentSize != uint64(size) {
		return sizeMismatch(c, fh.FrameContentSize, size)
	}

	return nil
}
