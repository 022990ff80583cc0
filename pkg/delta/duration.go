package delta

import (
	"time"

	"github.com/coolbeans/eones/pkg/date"
)

// Duration is a fixed-length displacement collapsed to a single elapsed-time
// quantity. The per-field breakdown of the constructor arguments is retained
// for introspection and inversion, but application is pure addition of
// absolute time: adding 24 hours across a DST transition may change the
// displayed hour.
type Duration struct {
	elapsed time.Duration
	input   map[string]int
}

// NewDuration creates a duration displacement from its component fields.
// Zero-valued fields are dropped from the input echo.
func NewDuration(weeks, days, hours, minutes, seconds int) Duration {
	input := map[string]int{}
	for key, v := range map[string]int{
		"weeks": weeks, "days": days, "hours": hours,
		"minutes": minutes, "seconds": seconds,
	} {
		if v != 0 {
			input[key] = v
		}
	}
	elapsed := time.Duration(weeks*7+days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	return Duration{elapsed: elapsed, input: input}
}

// Apply shifts the date by the elapsed quantity.
func (u Duration) Apply(d date.Date) date.Date {
	return d.Shift(u.elapsed)
}

// Elapsed returns the collapsed magnitude.
func (u Duration) Elapsed() time.Duration { return u.elapsed }

// Input returns the non-zero constructor fields.
func (u Duration) Input() map[string]int {
	out := make(map[string]int, len(u.input))
	for k, v := range u.input {
		out[k] = v
	}
	return out
}

// Breakdown normalizes the elapsed quantity into days, hours, minutes and
// seconds.
func (u Duration) Breakdown() (days, hours, minutes, seconds int) {
	total := int(u.elapsed / time.Second)
	days, total = total/86400, total%86400
	hours, total = total/3600, total%3600
	minutes, seconds = total/60, total%60
	return days, hours, minutes, seconds
}

// Invert returns the displacement with negated fields.
func (u Duration) Invert() Duration {
	return NewDuration(-u.input["weeks"], -u.input["days"], -u.input["hours"],
		-u.input["minutes"], -u.input["seconds"])
}

// Scale multiplies every field by a scalar.
func (u Duration) Scale(factor int) Duration {
	return NewDuration(u.input["weeks"]*factor, u.input["days"]*factor,
		u.input["hours"]*factor, u.input["minutes"]*factor, u.input["seconds"]*factor)
}

// IsZero reports whether the displacement is empty.
func (u Duration) IsZero() bool {
	return u.elapsed == 0
}

// Equal compares the collapsed magnitudes.
func (u Duration) Equal(other Duration) bool {
	return u.elapsed == other.elapsed
}
