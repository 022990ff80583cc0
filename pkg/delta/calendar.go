// Package delta models displacements over dates: calendar-aware shifts in
// whole years and months, fixed-length duration shifts, and the compound of
// the two. Calendar shifts clamp the day of month, so Jan 31 plus one month
// is the last day of February, never an invalid date.
package delta

import (
	"fmt"
	"strings"

	"github.com/coolbeans/eones/pkg/date"
)

// Calendar is a whole-months/years displacement. The pair is normalized with
// floor-division semantics, so a total of -1 month is stored as years=-1,
// months=11; the original inputs are retained for inversion and scaling.
type Calendar struct {
	years, months     int
	inYears, inMonths int
}

// NewCalendar creates a normalized calendar displacement.
func NewCalendar(years, months int) Calendar {
	total := years*12 + months
	return Calendar{
		years:    floorDiv(total, 12),
		months:   floorMod(total, 12),
		inYears:  years,
		inMonths: months,
	}
}

// Years returns the normalized year component.
func (c Calendar) Years() int { return c.years }

// Months returns the normalized month component, in [0, 11].
func (c Calendar) Months() int { return c.months }

// Input returns the unnormalized constructor arguments.
func (c Calendar) Input() (years, months int) { return c.inYears, c.inMonths }

// Apply shifts the date by the displacement. The (year, month) pair is moved
// on an absolute month index and the day is clamped to the target month's
// length; time-of-day fields and the zone are untouched.
func (c Calendar) Apply(d date.Date) date.Date {
	total := d.Year()*12 + d.Month() - 1 + c.years*12 + c.months
	year := floorDiv(total, 12)
	month := floorMod(total, 12) + 1
	day := d.Day()
	if last := date.DaysInMonth(year, month); day > last {
		day = last
	}
	return d.Replace(map[string]int{"year": year, "month": month, "day": day})
}

// Invert returns the displacement with reversed direction.
func (c Calendar) Invert() Calendar {
	return NewCalendar(-c.inYears, -c.inMonths)
}

// Scale multiplies the displacement by a scalar.
func (c Calendar) Scale(factor int) Calendar {
	return NewCalendar(c.inYears*factor, c.inMonths*factor)
}

// IsZero reports whether the displacement is empty.
func (c Calendar) IsZero() bool {
	return c.years == 0 && c.months == 0
}

// Equal compares normalized displacements.
func (c Calendar) Equal(other Calendar) bool {
	return c.years == other.years && c.months == other.months
}

// ISO serializes the displacement as an ISO-8601 calendar duration, "P0M"
// when empty.
func (c Calendar) ISO() string {
	var sb strings.Builder
	sb.WriteByte('P')
	if c.years != 0 {
		fmt.Fprintf(&sb, "%dY", c.years)
	}
	if c.months != 0 {
		fmt.Fprintf(&sb, "%dM", c.months)
	}
	if sb.Len() == 1 {
		sb.WriteString("0M")
	}
	return sb.String()
}

// floorDiv divides rounding toward negative infinity, matching the
// normalization convention for negative totals.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
