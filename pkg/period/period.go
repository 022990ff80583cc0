// Package period computes the boundary instants of calendar windows: day,
// week, month, quarter, year, and custom delta-defined spans around a date.
package period

import (
	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/delta"
)

// Span is an inclusive window on the timeline. Start never exceeds End.
type Span struct {
	Start date.Date
	End   date.Date
}

// Contains reports whether d falls within the span, boundaries included.
func (s Span) Contains(d date.Date) bool {
	return d.IsBetween(s.Start, s.End, true)
}

// Day returns midnight through 23:59:59.999999 of d's calendar day.
func Day(d date.Date) Span {
	return Span{Start: d.StartOfDay(), End: d.EndOfDay()}
}

// Week returns the 7-day window containing d, anchored at firstDayOfWeek
// (ISO numbering, Monday=0). The anchor day opens at midnight and the sixth
// following day closes the window.
func Week(d date.Date, firstDayOfWeek int) Span {
	back := (d.Weekday() - firstDayOfWeek + 7) % 7
	start := d.Replace(map[string]int{
		"day": d.Day() - back, "hour": 0, "minute": 0, "second": 0, "microsecond": 0,
	})
	end := start.Replace(map[string]int{"day": start.Day() + 6}).EndOfDay()
	return Span{Start: start, End: end}
}

// Month returns the first through the last day of d's month, leap-year
// aware, with full-day bounds.
func Month(d date.Date) Span {
	return Span{Start: d.StartOfMonth(), End: d.EndOfMonth()}
}

// Quarter returns the three-month window containing d with full-day bounds.
func Quarter(d date.Date) Span {
	startMonth := (d.Month()-1)/3*3 + 1
	start := d.Replace(map[string]int{
		"month": startMonth, "day": 1,
		"hour": 0, "minute": 0, "second": 0, "microsecond": 0,
	})
	end := d.Replace(map[string]int{"month": startMonth + 2, "day": 1}).EndOfMonth()
	return Span{Start: start, End: end}
}

// Year returns January 1st through December 31st of d's year.
func Year(d date.Date) Span {
	return Span{Start: d.StartOfYear(), End: d.EndOfYear()}
}

// Custom applies each delta to d independently and returns the ordered pair.
// A reversed pair is swapped silently rather than rejected.
func Custom(d date.Date, startDelta, endDelta delta.Delta) Span {
	start := startDelta.Apply(d)
	end := endDelta.Apply(d)
	if start.After(end) {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}
