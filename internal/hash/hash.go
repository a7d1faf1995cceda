package hash

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/arloliu/keyidx/endian"
	"github.com/arloliu/keyidx/keys"
)

// Type tags keep values of different families apart, so "1" and 1 never share input bytes.
const (
	tagNA byte = iota + 1
	tagInt
	tagUint
	tagFloat
	tagString
	tagBool
	tagTime
	tagDuration
	tagUUID
	tagTuple
	tagOther
)

var digestPool = sync.Pool{
	New: func() any { return xxhash.New() },
}

// Object computes the xxHash64 of a key value.
//
// The hash agrees with keys.Equal: values that are Equal hash identically.
// Every missing value hashes to one canonical bucket, and numbers hash by
// value, so int8(1), uint64(1) and 1.0 collide on purpose.
func Object(v any) uint64 {
	d, _ := digestPool.Get().(*xxhash.Digest)
	d.Reset()
	writeObject(d, v)
	sum := d.Sum64()
	digestPool.Put(d)

	return sum
}

func writeObject(d *xxhash.Digest, v any) {
	le := endian.GetLittleEndianEngine()
	var buf [9]byte

	if keys.IsNA(v) {
		buf[0] = tagNA
		_, _ = d.Write(buf[:1])

		return
	}

	if i, u, signed, ok := keys.Integral(v); ok {
		if signed {
			buf[0] = tagInt
			le.PutUint64(buf[1:], uint64(i))
		} else {
			buf[0] = tagUint
			le.PutUint64(buf[1:], u)
		}
		_, _ = d.Write(buf[:])

		return
	}

	if f, ok := keys.Float(v); ok {
		buf[0] = tagFloat
		le.PutUint64(buf[1:], math.Float64bits(f))
		_, _ = d.Write(buf[:])

		return
	}

	switch x := v.(type) {
	case string:
		buf[0] = tagString
		le.PutUint64(buf[1:], uint64(len(x)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(x)
	case bool:
		buf[0] = tagBool
		if x {
			buf[1] = 1
		}
		_, _ = d.Write(buf[:2])
	case time.Time:
		buf[0] = tagTime
		le.PutUint64(buf[1:], uint64(x.UnixNano()))
		_, _ = d.Write(buf[:])
	case time.Duration:
		buf[0] = tagDuration
		le.PutUint64(buf[1:], uint64(x))
		_, _ = d.Write(buf[:])
	case uuid.UUID:
		buf[0] = tagUUID
		_, _ = d.Write(buf[:1])
		_, _ = d.Write(x[:])
	case keys.Tuple:
		buf[0] = tagTuple
		le.PutUint64(buf[1:], uint64(len(x)))
		_, _ = d.Write(buf[:])
		for _, elem := range x {
			writeObject(d, elem)
		}
	default:
		buf[0] = tagOther
		_, _ = d.Write(buf[:1])
		_, _ = fmt.Fprintf(d, "%T:%v", v, v)
	}
}
