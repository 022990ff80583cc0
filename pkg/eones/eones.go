// Package eones is the high-level entry point of the library. An Eones value
// wraps a parsed date together with the parser that produced it, so follow-up
// comparisons can accept raw strings, maps or time.Time values directly.
package eones

import (
	"fmt"
	"time"

	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/delta"
	"github.com/coolbeans/eones/pkg/humanize"
	"github.com/coolbeans/eones/pkg/parser"
	"github.com/coolbeans/eones/pkg/period"
)

// Eones is a mutable date handle. The zero value is not usable; construct
// with New.
type Eones struct {
	p *parser.Parser
	d date.Date
}

// New parses value in the given zone. A nil value means the current time.
// A non-nil formats list replaces the built-in layouts entirely.
func New(value any, zoneID string, formats []string) (*Eones, error) {
	opts := parser.DefaultOptions()
	if zoneID != "" {
		opts.Zone = zoneID
	}
	opts.Formats = formats

	p, err := parser.New(opts)
	if err != nil {
		return nil, err
	}
	d, err := p.Parse(value)
	if err != nil {
		return nil, err
	}
	return &Eones{p: p, d: d}, nil
}

// Date returns the wrapped date value.
func (e *Eones) Date() date.Date { return e.d }

// Zone returns the zone identifier the handle parses into.
func (e *Eones) Zone() string { return e.p.Zone() }

// Add shifts the date by the given fields (years, months, weeks, days,
// hours, minutes, seconds). Calendar parts apply before duration parts.
func (e *Eones) Add(fields map[string]any) error {
	dl, err := delta.FromMap(fields)
	if err != nil {
		return err
	}
	e.d = dl.Apply(e.d)
	return nil
}

// AddDelta shifts the date by a prebuilt delta.
func (e *Eones) AddDelta(dl delta.Delta) {
	e.d = dl.Apply(e.d)
}

// Replace sets individual date fields in place, keeping the rest.
func (e *Eones) Replace(fields map[string]int) {
	e.d = e.d.Replace(fields)
}

// Format renders the date with a Go layout string.
func (e *Eones) Format(layout string) string {
	return e.d.Format(layout)
}

// ISO renders the date in ISO-8601 form.
func (e *Eones) ISO() string { return e.d.ISO() }

// Difference returns the whole-unit distance from other to this date.
// Supported units are days, weeks, months and years.
func (e *Eones) Difference(other any, unit string) (int, error) {
	o, err := e.p.Parse(other)
	if err != nil {
		return 0, err
	}
	return e.d.Diff(o, unit)
}

// DiffForHumans describes the date relative to other in the given locale.
// A nil other compares against the current time.
func (e *Eones) DiffForHumans(other any, locale string) (string, error) {
	if other == nil {
		return humanize.DiffForHumans(e.d, nil, locale)
	}
	o, err := e.p.Parse(other)
	if err != nil {
		return "", err
	}
	return humanize.DiffForHumans(e.d, &o, locale)
}

// IsBetween reports whether the date lies between start and end.
func (e *Eones) IsBetween(start, end any, inclusive bool) (bool, error) {
	s, err := e.p.Parse(start)
	if err != nil {
		return false, err
	}
	en, err := e.p.Parse(end)
	if err != nil {
		return false, err
	}
	return e.d.IsBetween(s, en, inclusive), nil
}

// IsSameWeek reports whether other falls in the same ISO week.
func (e *Eones) IsSameWeek(other any) (bool, error) {
	o, err := e.p.Parse(other)
	if err != nil {
		return false, err
	}
	return e.d.IsSameWeek(o), nil
}

// IsWithin reports whether other falls in the same year, and the same month
// when checkMonth is set.
func (e *Eones) IsWithin(other any, checkMonth bool) (bool, error) {
	o, err := e.p.Parse(other)
	if err != nil {
		return false, err
	}
	return e.d.IsWithin(o, checkMonth), nil
}

// NextWeekday returns the next occurrence of a weekday (0 = Monday),
// always strictly in the future.
func (e *Eones) NextWeekday(target int) date.Date {
	return e.d.NextWeekday(target)
}

// Range returns the period containing the date for the given mode: day,
// week, month, quarter or year.
func (e *Eones) Range(mode string) (period.Span, error) {
	switch mode {
	case "day":
		return period.Day(e.d), nil
	case "week":
		return period.Week(e.d, 0), nil
	case "month":
		return period.Month(e.d), nil
	case "quarter":
		return period.Quarter(e.d), nil
	case "year":
		return period.Year(e.d), nil
	}
	return period.Span{}, fmt.Errorf("%w: unknown range mode %q", date.ErrUnsupportedUnit, mode)
}

// ParseDate parses value in the given zone and returns the date directly.
func ParseDate(value any, zoneID string, formats []string) (date.Date, error) {
	e, err := New(value, zoneID, formats)
	if err != nil {
		return date.Date{}, err
	}
	return e.Date(), nil
}

// FormatDate renders a date with a Go layout string.
func FormatDate(d date.Date, layout string) string {
	return d.Format(layout)
}

// AddDays returns d moved by a number of calendar days.
func AddDays(d date.Date, days int) date.Date {
	return d.Replace(map[string]int{"day": d.Day() + days})
}

// DateDiffDays returns the whole-day distance between a and b.
func DateDiffDays(a, b date.Date) (int, error) {
	return b.Diff(a, "days")
}

// DateRange lists the calendar days from start through end inclusive.
func DateRange(start, end date.Date) []date.Date {
	if end.Before(start) {
		start, end = end, start
	}
	var out []date.Date
	for cur := start; !cur.After(end); cur = AddDays(cur, 1) {
		out = append(out, cur)
	}
	return out
}

// ToTimestamp returns the epoch seconds of a date.
func ToTimestamp(d date.Date) int64 {
	return d.Unix()
}

// FromTimestamp builds a date from epoch seconds in the given zone.
func FromTimestamp(seconds int64, zoneID string) (date.Date, error) {
	return date.FromUnix(seconds, zoneID)
}

// Now returns the current time in the given zone.
func Now(zoneID string) (date.Date, error) {
	return date.Now(zoneID)
}

// FromTime wraps a location-aware time.Time without reinterpreting it.
func FromTime(t time.Time) date.Date {
	return date.FromTime(t)
}
