package keys

import (
	"math"
	"time"

	"github.com/arloliu/keyidx/format"
)

// NaT is the missing marker of datetime and timedelta arrays.
const NaT int64 = math.MinInt64

// Datetimes is a key array of instants stored as UTC nanoseconds since the Unix epoch.
type Datetimes struct {
	ns []int64
}

var _ Array = (*Datetimes)(nil)

// NewDatetimes converts values to nanoseconds since the Unix epoch.
// The zero time.Time is stored as NaT.
func NewDatetimes(values []time.Time) *Datetimes {
	ns := make([]int64, len(values))
	for i, v := range values {
		if v.IsZero() {
			ns[i] = NaT
			continue
		}
		ns[i] = v.UnixNano()
	}

	return &Datetimes{ns: ns}
}

// DatetimesFromUnixNano wraps ns without copying it.
func DatetimesFromUnixNano(ns []int64) *Datetimes {
	return &Datetimes{ns: ns}
}

// DateRange returns periods instants starting at start, step apart.
func DateRange(start time.Time, periods int, step time.Duration) *Datetimes {
	ns := make([]int64, periods)
	base := start.UnixNano()
	for i := range ns {
		ns[i] = base + int64(i)*int64(step)
	}

	return &Datetimes{ns: ns}
}

func (a *Datetimes) Kind() format.Kind { return format.KindDatetime }

func (a *Datetimes) Len() int { return len(a.ns) }

func (a *Datetimes) Value(i int) any {
	if a.ns[i] == NaT {
		return NA
	}

	return time.Unix(0, a.ns[i]).UTC()
}

// UnixNano returns the backing slice. It must not be modified.
func (a *Datetimes) UnixNano() []int64 { return a.ns }

// Insert returns a new array with ns inserted before position i.
func (a *Datetimes) Insert(i int, ns int64) *Datetimes {
	return &Datetimes{ns: insertAt(a.ns, i, ns)}
}

// Timedeltas is a key array of nanosecond durations.
type Timedeltas struct {
	ns []int64
}

var _ Array = (*Timedeltas)(nil)

// NewTimedeltas converts values to nanoseconds.
func NewTimedeltas(values []time.Duration) *Timedeltas {
	ns := make([]int64, len(values))
	for i, v := range values {
		ns[i] = int64(v)
	}

	return &Timedeltas{ns: ns}
}

// TimedeltasFromNanos wraps ns without copying it.
func TimedeltasFromNanos(ns []int64) *Timedeltas {
	return &Timedeltas{ns: ns}
}

// TimedeltaRange returns periods durations starting at start, step apart.
func TimedeltaRange(start time.Duration, periods int, step time.Duration) *Timedeltas {
	ns := make([]int64, periods)
	for i := range ns {
		ns[i] = int64(start) + int64(i)*int64(step)
	}

	return &Timedeltas{ns: ns}
}

func (a *Timedeltas) Kind() format.Kind { return format.KindTimedelta }

func (a *Timedeltas) Len() int { return len(a.ns) }

func (a *Timedeltas) Value(i int) any {
	if a.ns[i] == NaT {
		return NA
	}

	return time.Duration(a.ns[i])
}

// Nanos returns the backing slice. It must not be modified.
func (a *Timedeltas) Nanos() []int64 { return a.ns }

// Insert returns a new array with ns inserted before position i.
func (a *Timedeltas) Insert(i int, ns int64) *Timedeltas {
	return &Timedeltas{ns: insertAt(a.ns, i, ns)}
}

func insertAt(src []int64, i int, v int64) []int64 {
	out := make([]int64, 0, len(src)+1)
	out = append(out, src[:i]...)
	out = append(out, v)

	return append(out, src[i:]...)
}
