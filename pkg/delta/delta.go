package delta

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/coolbeans/eones/pkg/date"
)

// ErrInvalidField indicates an unrecognized field name or a value that is
// not a true integer.
var ErrInvalidField = errors.New("invalid delta field")

// ErrInvalidISO indicates text that does not match the ISO-8601 duration
// grammar.
var ErrInvalidISO = errors.New("invalid ISO-8601 duration")

// Components are the constructor fields of a compound delta.
type Components struct {
	Years, Months                        int
	Weeks, Days, Hours, Minutes, Seconds int
}

// Delta composes a calendar displacement with a duration displacement.
// Application order is fixed: calendar first, duration second.
type Delta struct {
	cal Calendar
	dur Duration
}

// New creates a compound delta.
func New(c Components) Delta {
	return Delta{
		cal: NewCalendar(c.Years, c.Months),
		dur: NewDuration(c.Weeks, c.Days, c.Hours, c.Minutes, c.Seconds),
	}
}

var fieldNames = map[string]bool{
	"years": true, "months": true, "weeks": true, "days": true,
	"hours": true, "minutes": true, "seconds": true,
}

// FromMap creates a compound delta from a loose field map, the shape deltas
// arrive in from decoded input. Unknown keys are rejected, and values must
// be true integers: booleans and floating-point values fail even when they
// would convert cleanly.
func FromMap(fields map[string]any) (Delta, error) {
	var c Components
	for key, raw := range fields {
		if !fieldNames[key] {
			return Delta{}, fmt.Errorf("%w: unknown field %q", ErrInvalidField, key)
		}

		var v int
		switch n := raw.(type) {
		case bool:
			return Delta{}, fmt.Errorf("%w: %q must be an integer, got bool", ErrInvalidField, key)
		case int:
			v = n
		case int32:
			v = int(n)
		case int64:
			v = int(n)
		default:
			return Delta{}, fmt.Errorf("%w: %q must be an integer, got %T", ErrInvalidField, key, raw)
		}

		switch key {
		case "years":
			c.Years = v
		case "months":
			c.Months = v
		case "weeks":
			c.Weeks = v
		case "days":
			c.Days = v
		case "hours":
			c.Hours = v
		case "minutes":
			c.Minutes = v
		case "seconds":
			c.Seconds = v
		}
	}
	return New(c), nil
}

// Calendar returns the calendar part.
func (d Delta) Calendar() Calendar { return d.cal }

// Duration returns the duration part.
func (d Delta) Duration() Duration { return d.dur }

// Apply shifts the date by the calendar part, then by the duration part.
// The order matters: the two applications do not commute.
func (d Delta) Apply(dv date.Date) date.Date {
	return d.dur.Apply(d.cal.Apply(dv))
}

// ApplyCalendar applies only the calendar part.
func (d Delta) ApplyCalendar(dv date.Date) date.Date {
	return d.cal.Apply(dv)
}

// ApplyDuration applies only the duration part.
func (d Delta) ApplyDuration(dv date.Date) date.Date {
	return d.dur.Apply(dv)
}

// ApplyPartial applies the selected parts, calendar before duration.
func (d Delta) ApplyPartial(dv date.Date, applyCalendar, applyDuration bool) date.Date {
	out := dv
	if applyCalendar {
		out = d.cal.Apply(out)
	}
	if applyDuration {
		out = d.dur.Apply(out)
	}
	return out
}

// Invert returns the delta with reversed direction. Inversion round-trips
// exactly for pure durations; a clamped calendar application is not
// bijective (Jan 31 +1mo -1mo lands on Feb's last day, then Feb 28, not back
// on Jan 31).
func (d Delta) Invert() Delta {
	return Delta{cal: d.cal.Invert(), dur: d.dur.Invert()}
}

// Scale multiplies both parts by a scalar.
func (d Delta) Scale(factor int) Delta {
	return Delta{cal: d.cal.Scale(factor), dur: d.dur.Scale(factor)}
}

// IsZero reports whether both parts are empty.
func (d Delta) IsZero() bool {
	return d.cal.IsZero() && d.dur.IsZero()
}

// Equal compares both parts.
func (d Delta) Equal(other Delta) bool {
	return d.cal.Equal(other.cal) && d.dur.Equal(other.dur)
}

// String renders compact tokens like "1y 2mo 3d 4h 5m 6s", omitting zero
// components; a fully-zero delta renders as "0s".
func (d Delta) String() string {
	var parts []string
	if y := d.cal.Years(); y != 0 {
		parts = append(parts, fmt.Sprintf("%dy", y))
	}
	if m := d.cal.Months(); m != 0 {
		parts = append(parts, fmt.Sprintf("%dmo", m))
	}
	days, hours, minutes, seconds := d.dur.Breakdown()
	if days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds != 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// ISO serializes the delta in ISO-8601 duration form,
// P[nY][nM][nD][T[nH][nM][nS]]. The canonical form of a zero delta is "P0D".
func (d Delta) ISO() string {
	var sb strings.Builder
	sb.WriteByte('P')
	if y := d.cal.Years(); y != 0 {
		fmt.Fprintf(&sb, "%dY", y)
	}
	if m := d.cal.Months(); m != 0 {
		fmt.Fprintf(&sb, "%dM", m)
	}
	days, hours, minutes, seconds := d.dur.Breakdown()
	if days != 0 {
		fmt.Fprintf(&sb, "%dD", days)
	}
	if hours != 0 || minutes != 0 || seconds != 0 {
		sb.WriteByte('T')
		if hours != 0 {
			fmt.Fprintf(&sb, "%dH", hours)
		}
		if minutes != 0 {
			fmt.Fprintf(&sb, "%dM", minutes)
		}
		if seconds != 0 {
			fmt.Fprintf(&sb, "%dS", seconds)
		}
	}
	if sb.Len() == 1 {
		sb.WriteString("0D")
	}
	return sb.String()
}

var isoDurationRe = regexp.MustCompile(
	`^P(?:(-?\d+)Y)?(?:(-?\d+)M)?(?:(-?\d+)W)?(?:(-?\d+)D)?` +
		`(?:T(?:(-?\d+)H)?(?:(-?\d+)M)?(?:(-?\d+)S)?)?$`)

// FromISO parses an ISO-8601 duration, including the week designator.
func FromISO(text string) (Delta, error) {
	m := isoDurationRe.FindStringSubmatch(text)
	if m == nil || text == "P" || strings.HasSuffix(text, "T") {
		return Delta{}, fmt.Errorf("%w: %q", ErrInvalidISO, text)
	}

	num := func(group string) int {
		if group == "" {
			return 0
		}
		n, _ := strconv.Atoi(group)
		return n
	}
	return New(Components{
		Years:   num(m[1]),
		Months:  num(m[2]),
		Weeks:   num(m[3]),
		Days:    num(m[4]),
		Hours:   num(m[5]),
		Minutes: num(m[6]),
		Seconds: num(m[7]),
	}), nil
}
