package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/arloliu/keyidx/endian"
	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/internal/pool"
	"github.com/arloliu/keyidx/keys"
)

// msgpack extension types for key families msgpack has no native form for.
const (
	extUUID     int8 = 1
	extDuration int8 = 2
	extTime     int8 = 3
)

// extEngine is the byte order of extension bodies, independent of the payload order.
var extEngine = endian.GetBigEndianEngine()

func encodeObjects(buf *pool.ByteBuffer, values []any) error {
	enc := msgpack.NewEncoder(buf)
	for i, v := range values {
		if err := encodeObject(enc, v); err != nil {
			return fmt.Errorf("object key %d: %w", i, err)
		}
	}

	return nil
}

func encodeObject(enc *msgpack.Encoder, v any) error {
	if keys.IsNA(v) {
		return enc.EncodeNil()
	}

	switch x := v.(type) {
	case string:
		return enc.EncodeString(x)
	case bool:
		return enc.EncodeBool(x)
	case int:
		return enc.EncodeInt64(int64(x))
	case int8:
		return enc.EncodeInt64(int64(x))
	case int16:
		return enc.EncodeInt64(int64(x))
	case int32:
		return enc.EncodeInt64(int64(x))
	case int64:
		return enc.EncodeInt64(x)
	case uint:
		return enc.EncodeUint64(uint64(x))
	case uint8:
		return enc.EncodeUint64(uint64(x))
	case uint16:
		return enc.EncodeUint64(uint64(x))
	case uint32:
		return enc.EncodeUint64(uint64(x))
	case uint64:
		return enc.EncodeUint64(x)
	case float32:
		return enc.EncodeFloat32(x)
	case float64:
		return enc.EncodeFloat64(x)
	case uuid.UUID:
		return encodeExt(enc, extUUID, x[:])
	case time.Duration:
		return encodeExt(enc, extDuration, endian.AppendNumber(extEngine, nil, int64(x)))
	case time.Time:
		b, err := x.MarshalBinary()
		if err != nil {
			return err
		}

		return encodeExt(enc, extTime, b)
	case keys.Tuple:
		if err := enc.EncodeArrayLen(len(x)); err != nil {
			return err
		}
		for _, item := range x {
			if err := encodeObject(enc, item); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: object key of type %T", errs.ErrUnsupportedKind, v)
	}
}

func encodeExt(enc *msgpack.Encoder, id int8, data []byte) error {
	if err := enc.EncodeExtHeader(id, len(data)); err != nil {
		return err
	}
	_, err := enc.Writer().Write(data)

	return err
}

func decodeObjects(raw []byte, n int) ([]any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	values := make([]any, 0, min(n, len(raw)))
	for i := range n {
		v, err := decodeObject(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: object key %d: %w", errs.ErrInvalidPayload, i, err)
		}
		values = append(values, v)
	}

	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after %d object keys", errs.ErrInvalidPayload, n)
	}

	return values, nil
}

func decodeObject(dec *msgpack.Decoder) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case c == msgpcode.Nil:
		if err := dec.DecodeNil(); err != nil {
			return nil, err
		}

		return keys.NA, nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		tuple := make(keys.Tuple, n)
		for i := range tuple {
			if tuple[i], err = decodeObject(dec); err != nil {
				return nil, err
			}
		}

		return tuple, nil
	case msgpcode.IsExt(c):
		return decodeExt(dec)
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		return nil, fmt.Errorf("unexpected map code 0x%x", c)
	default:
		return dec.DecodeInterface()
	}
}

func decodeExt(dec *msgpack.Decoder) (any, error) {
	id, n, err := dec.DecodeExtHeader()
	if err != nil {
		return nil, err
	}

	data := make([]byte, n)
	if err := dec.ReadFull(data); err != nil {
		return nil, err
	}

	switch id {
	case extUUID:
		return uuid.FromBytes(data)
	case extDuration:
		if n != 8 {
			return nil, fmt.Errorf("duration extension of %d bytes", n)
		}
		return time.Duration(endian.Number[int64](extEngine, data)), nil
	case extTime:
		var t time.Time
		if err := t.UnmarshalBinary(data); err != nil {
			return nil, err
		}

		return t, nil
	default:
		return nil, fmt.Errorf("unknown extension type %d", id)
	}
}
