// Package codec reads and writes key array snapshots.
//
// A snapshot is a 24-byte Header followed by one payload holding every key of
// the array. Fixed-width kinds store their values back to back in the byte
// order chosen by WithBigEndian or WithLittleEndian. Object arrays store one
// msgpack item per key: strings, booleans, numbers, tuples (as arrays) and
// missing values (as nil) map to native msgpack types, while uuid.UUID,
// time.Duration and time.Time use extension types 1 to 3.
//
// Example:
//
//	data, err := codec.Marshal(keys.Strings("a", "b"), codec.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	arr, err := codec.Unmarshal(data)
package codec
