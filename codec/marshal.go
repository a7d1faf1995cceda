package codec

import (
	"fmt"

	"github.com/arloliu/keyidx/compress"
	"github.com/arloliu/keyidx/endian"
	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
	"github.com/arloliu/keyidx/internal/options"
	"github.com/arloliu/keyidx/internal/pool"
	"github.com/arloliu/keyidx/keys"
)

// Marshal encodes arr as a snapshot.
//
// Numeric and temporal arrays are stored as fixed-width values in the chosen
// byte order. Object arrays are stored as a msgpack stream, one item per key.
//
// Returns:
//   - []byte: header followed by the (optionally compressed) payload
//   - error: ErrInvalidOption for a bad option, ErrUnsupportedKind for an
//     unknown array type or object key type
func Marshal(arr keys.Array, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	if err := encodePayload(buf, cfg.engine, arr); err != nil {
		return nil, err
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", cfg.compression, err)
	}

	h := Header{
		Version:     Version,
		Kind:        arr.Kind(),
		Compression: cfg.compression,
		Count:       uint64(arr.Len()),
		RawSize:     uint64(buf.Len()),
	}
	if endian.IsBigEndian(cfg.engine) {
		h.Flags |= flagBigEndian
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = h.appendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Unmarshal decodes a snapshot produced by Marshal.
//
// Object keys decode with their integers widened to int64 or uint64, missing
// values as keys.NA and nested arrays as keys.Tuple.
func Unmarshal(data []byte) (keys.Array, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data[HeaderSize:], int(h.RawSize))
	if err != nil {
		return nil, err
	}

	return decodePayload(raw, &h)
}

func encodePayload(buf *pool.ByteBuffer, engine endian.EndianEngine, arr keys.Array) error {
	switch a := arr.(type) {
	case *keys.Numeric[int8]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[int16]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[int32]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[int64]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[uint8]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[uint16]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[uint32]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[uint64]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[float32]:
		putNumbers(buf, engine, a.Values())
	case *keys.Numeric[float64]:
		putNumbers(buf, engine, a.Values())
	case *keys.Datetimes:
		putNumbers(buf, engine, a.UnixNano())
	case *keys.Timedeltas:
		putNumbers(buf, engine, a.Nanos())
	case *keys.Objects:
		return encodeObjects(buf, a.Values())
	case nil:
		return fmt.Errorf("%w: nil array", errs.ErrUnsupportedKind)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedKind, arr)
	}

	return nil
}

func putNumbers[T endian.Fixed](buf *pool.ByteBuffer, engine endian.EndianEngine, values []T) {
	region := buf.ExtendOrGrow(len(values) * endian.Width[T]())[:0]
	for _, v := range values {
		region = endian.AppendNumber(engine, region, v)
	}
}

func decodePayload(raw []byte, h *Header) (keys.Array, error) {
	engine := h.Engine()
	n := int(h.Count)

	if h.Kind == format.KindObject {
		values, err := decodeObjects(raw, n)
		if err != nil {
			return nil, err
		}

		return keys.NewObjects(values), nil
	}

	if len(raw) != n*h.Kind.Width() {
		return nil, fmt.Errorf("%w: %d bytes for %d %s values", errs.ErrInvalidPayload, len(raw), n, h.Kind)
	}

	switch h.Kind {
	case format.KindInt8:
		return keys.NewNumeric(getNumbers[int8](raw, engine, n)), nil
	case format.KindInt16:
		return keys.NewNumeric(getNumbers[int16](raw, engine, n)), nil
	case format.KindInt32:
		return keys.NewNumeric(getNumbers[int32](raw, engine, n)), nil
	case format.KindInt64:
		return keys.NewNumeric(getNumbers[int64](raw, engine, n)), nil
	case format.KindUint8:
		return keys.NewNumeric(getNumbers[uint8](raw, engine, n)), nil
	case format.KindUint16:
		return keys.NewNumeric(getNumbers[uint16](raw, engine, n)), nil
	case format.KindUint32:
		return keys.NewNumeric(getNumbers[uint32](raw, engine, n)), nil
	case format.KindUint64:
		return keys.NewNumeric(getNumbers[uint64](raw, engine, n)), nil
	case format.KindFloat32:
		return keys.NewNumeric(getNumbers[float32](raw, engine, n)), nil
	case format.KindFloat64:
		return keys.NewNumeric(getNumbers[float64](raw, engine, n)), nil
	case format.KindDatetime:
		return keys.DatetimesFromUnixNano(getNumbers[int64](raw, engine, n)), nil
	case format.KindTimedelta:
		return keys.TimedeltasFromNanos(getNumbers[int64](raw, engine, n)), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, h.Kind)
	}
}

func getNumbers[T endian.Fixed](raw []byte, engine endian.EndianEngine, n int) []T {
	width := endian.Width[T]()
	values := make([]T, n)
	for i := range values {
		values[i] = endian.Number[T](engine, raw[i*width:])
	}

	return values
}
