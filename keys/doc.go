// Package keys provides the typed key arrays consumed by lookup engines.
//
// An Array is an immutable, fixed-kind sequence of keys. Engines hold a
// reference to the array and never copy or modify it, so callers must not
// mutate the slices they pass to the constructors once an engine exists.
//
// # Array Kinds
//
//   - Numeric[T]: signed and unsigned integers of every width, float32, float64.
//     NaN is the missing value of float arrays.
//   - Objects: arbitrary comparable values such as strings, numbers, time.Time,
//     uuid.UUID and Tuple (a flattened multi-level key). nil, NA and NaN are missing.
//   - Datetimes: UTC nanoseconds since the Unix epoch, NaT is missing.
//   - Timedeltas: nanosecond durations, NaT is missing.
//
// All constructors return pointers, so an Array interface value compares equal
// only to itself. Engine registries rely on that identity.
//
// # Comparison
//
// Equal and Compare define key equality and ordering for object values.
// Numbers compare by value across Go types (int8(1), uint64(1) and 1.0 are the
// same key), missing values are equal to each other but unordered, and values
// from different families (a string and a number) are never equal and unordered.
package keys
