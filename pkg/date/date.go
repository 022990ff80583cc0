// Package date provides an immutable, timezone-aware date value.
//
// A Date wraps an absolute instant together with the identity of the zone it
// is displayed in. Every operation returns a new Date; nothing mutates in
// place. Construction never produces a value without a zone: inputs that lack
// one are disambiguated by an explicit NaivePolicy.
package date

import (
	"errors"
	"fmt"
	"time"

	"github.com/coolbeans/eones/pkg/zone"
)

// ErrNaiveDatetime indicates a zone-less instant was supplied where the
// active policy requires rejection.
var ErrNaiveDatetime = errors.New("naive datetime received")

// ErrUnsupportedUnit indicates a unit string outside the supported set for
// truncate, round, floor, ceil or diff.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// NaivePolicy controls how an instant without timezone information is
// disambiguated during construction.
type NaivePolicy int

const (
	// NaiveRaise rejects naive instants with ErrNaiveDatetime. Default.
	NaiveRaise NaivePolicy = iota
	// NaiveUTC interprets the wall-clock fields as UTC.
	NaiveUTC
	// NaiveLocal interprets the wall-clock fields in the process-local zone.
	NaiveLocal
)

// Date is an immutable instant with an associated timezone identity.
// Equality and ordering are defined on the absolute instant, not on the
// displayed wall-clock fields.
type Date struct {
	t    time.Time
	zone string
}

// New creates a Date from an aware instant, converted into the given zone.
// The wall-clock fields may shift; the absolute instant is preserved. An
// empty zone defaults to UTC.
func New(t time.Time, zoneID string) (Date, error) {
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return Date{}, err
	}
	return inLocation(t, loc), nil
}

// FromNaive creates a Date from the wall-clock fields of t, which carry no
// timezone of their own. The policy decides which zone those fields belong
// to; the result is then converted into zoneID.
func FromNaive(t time.Time, zoneID string, policy NaivePolicy) (Date, error) {
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return Date{}, err
	}

	var src *time.Location
	switch policy {
	case NaiveRaise:
		return Date{}, fmt.Errorf("%w: construction requires an explicit policy", ErrNaiveDatetime)
	case NaiveUTC:
		src = time.UTC
	case NaiveLocal:
		src = time.Local
	default:
		return Date{}, fmt.Errorf("invalid naive policy %d", policy)
	}

	aware := time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), src)
	return inLocation(aware, loc), nil
}

// Now returns the current instant in the given zone.
func Now(zoneID string) (Date, error) {
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return Date{}, err
	}
	return inLocation(time.Now(), loc), nil
}

// FromTime creates a Date from an already timezone-aware instant, keeping
// the instant's own zone as the display zone.
func FromTime(t time.Time) Date {
	return inLocation(t, t.Location())
}

func inLocation(t time.Time, loc *time.Location) Date {
	local := t.In(loc)
	return Date{t: local, zone: zoneName(local)}
}

func zoneName(t time.Time) string {
	if name := t.Location().String(); name != "" && name != "Local" {
		return name
	}
	_, offset := t.Zone()
	if offset == 0 {
		return zone.UTCName
	}
	return zone.OffsetName(offset)
}

// Year returns the calendar year in the display zone.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month (1–12) in the display zone.
func (d Date) Month() int { return int(d.t.Month()) }

// Day returns the day of month in the display zone.
func (d Date) Day() int { return d.t.Day() }

// Hour returns the hour in the display zone.
func (d Date) Hour() int { return d.t.Hour() }

// Minute returns the minute.
func (d Date) Minute() int { return d.t.Minute() }

// Second returns the second.
func (d Date) Second() int { return d.t.Second() }

// Microsecond returns the sub-second component in microseconds.
func (d Date) Microsecond() int { return d.t.Nanosecond() / 1000 }

// ZoneName returns the zone identity: an IANA name, "UTC", or a fixed
// offset like "+05:30".
func (d Date) ZoneName() string { return d.zone }

// Weekday returns the ISO weekday, Monday=0 through Sunday=6.
func (d Date) Weekday() int {
	return (int(d.t.Weekday()) + 6) % 7
}

// Time returns the underlying instant in the display zone.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the uninitialized Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Format renders the date with a Go reference layout.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

// Shift adds a raw elapsed-time quantity. No calendar semantics: shifting by
// 24 hours across a DST transition changes the displayed hour.
func (d Date) Shift(dur time.Duration) Date {
	return Date{t: d.t.Add(dur), zone: d.zone}
}

// Sub returns the elapsed time from other to d.
func (d Date) Sub(other Date) time.Duration {
	return d.t.Sub(other.t)
}

// DaysUntil returns the signed whole-day count from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// AsUTC reprojects the instant into UTC.
func (d Date) AsUTC() Date {
	return inLocation(d.t, time.UTC)
}

// AsZone reprojects the instant into another zone.
func (d Date) AsZone(zoneID string) (Date, error) {
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return Date{}, err
	}
	return inLocation(d.t, loc), nil
}

// Replace returns a Date with the given calendar fields overwritten.
// Recognized keys are year, month, day, hour, minute, second and
// microsecond; unrecognized keys are silently ignored. Out-of-range values
// normalize the way time.Date does.
func (d Date) Replace(fields map[string]int) Date {
	year, month, day := d.Year(), d.Month(), d.Day()
	hour, minute, sec := d.Hour(), d.Minute(), d.Second()
	nsec := d.t.Nanosecond()

	for key, v := range fields {
		switch key {
		case "year":
			year = v
		case "month":
			month = v
		case "day":
			day = v
		case "hour":
			hour = v
		case "minute":
			minute = v
		case "second":
			sec = v
		case "microsecond":
			nsec = v * 1000
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, d.t.Location())
	return Date{t: t, zone: d.zone}
}

func (d Date) String() string {
	return d.ISO()
}

// at rebuilds the date from explicit fields in the same display zone.
func (d Date) at(year, month, day, hour, min, sec, nsec int) Date {
	t := time.Date(year, time.Month(month), day, hour, min, sec, nsec, d.t.Location())
	return Date{t: t, zone: d.zone}
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in a Gregorian month.
func DaysInMonth(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return monthDays[month]
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
