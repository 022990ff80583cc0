package date

import (
	"fmt"
	"time"
)

// lastMicro is the sub-second component of the final instant of a unit.
const lastMicro = 999999 * 1000 // nanoseconds

// Truncate zeroes every field finer than the unit. Supported units are
// "second", "minute", "hour" and "day".
func (d Date) Truncate(unit string) (Date, error) {
	switch unit {
	case "second":
		return d.at(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), 0), nil
	case "minute":
		return d.at(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), 0, 0), nil
	case "hour":
		return d.at(d.Year(), d.Month(), d.Day(), d.Hour(), 0, 0, 0), nil
	case "day":
		return d.at(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0), nil
	}
	return Date{}, fmt.Errorf("%w: %s (use second, minute, hour or day)", ErrUnsupportedUnit, unit)
}

// Round truncates to the unit, advancing by one unit first when the next
// finer field is at or past its midpoint. Supported units are "second",
// "minute", "hour" and "day".
func (d Date) Round(unit string) (Date, error) {
	t := d
	switch unit {
	case "second":
		if d.Microsecond() >= 500000 {
			t = d.Shift(time.Second)
		}
	case "minute":
		if d.Second() >= 30 {
			t = d.Shift(time.Minute)
		}
	case "hour":
		if d.Minute() >= 30 {
			t = d.Shift(time.Hour)
		}
	case "day":
		if d.Hour() >= 12 {
			t = d.Shift(24 * time.Hour)
		}
	default:
		return Date{}, fmt.Errorf("%w: %s (use second, minute, hour or day)", ErrUnsupportedUnit, unit)
	}
	return t.Truncate(unit)
}

// Floor moves to the first instant of the unit. "week" floors to Monday
// 00:00 of the current ISO week. Supported units are year, month, week, day,
// hour, minute and second.
func (d Date) Floor(unit string) (Date, error) {
	switch unit {
	case "year":
		return d.at(d.Year(), 1, 1, 0, 0, 0, 0), nil
	case "month":
		return d.at(d.Year(), d.Month(), 1, 0, 0, 0, 0), nil
	case "week":
		// day arithmetic through time.Date, so DST transitions cannot
		// displace the wall-clock day
		return d.at(d.Year(), d.Month(), d.Day()-d.Weekday(), 0, 0, 0, 0), nil
	case "day", "hour", "minute", "second":
		return d.Truncate(unit)
	}
	return Date{}, fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
}

// Ceil moves to the last representable instant of the unit, with microsecond
// granularity (e.g. Dec 31 23:59:59.999999 for "year").
func (d Date) Ceil(unit string) (Date, error) {
	switch unit {
	case "year":
		return d.at(d.Year(), 12, 31, 23, 59, 59, lastMicro), nil
	case "month":
		last := DaysInMonth(d.Year(), d.Month())
		return d.at(d.Year(), d.Month(), last, 23, 59, 59, lastMicro), nil
	case "week":
		start, err := d.Floor("week")
		if err != nil {
			return Date{}, err
		}
		return start.at(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, lastMicro), nil
	case "day":
		return d.at(d.Year(), d.Month(), d.Day(), 23, 59, 59, lastMicro), nil
	case "hour":
		return d.at(d.Year(), d.Month(), d.Day(), d.Hour(), 59, 59, lastMicro), nil
	case "minute":
		return d.at(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), 59, lastMicro), nil
	case "second":
		return d.at(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), lastMicro), nil
	}
	return Date{}, fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
}

// StartOfDay returns midnight of the same calendar day.
func (d Date) StartOfDay() Date {
	return d.at(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0)
}

// EndOfDay returns the last microsecond of the same calendar day, computed
// as the next midnight minus one microsecond.
func (d Date) EndOfDay() Date {
	return d.at(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0).Shift(-time.Microsecond)
}

// StartOfMonth returns midnight of the first day of the month.
func (d Date) StartOfMonth() Date {
	return d.at(d.Year(), d.Month(), 1, 0, 0, 0, 0)
}

// EndOfMonth returns the last microsecond of the month, computed as the
// first instant of the next month minus one microsecond.
func (d Date) EndOfMonth() Date {
	year, month := d.Year(), d.Month()+1
	if month > 12 {
		year, month = year+1, 1
	}
	return d.at(year, month, 1, 0, 0, 0, 0).Shift(-time.Microsecond)
}

// StartOfYear returns midnight of January 1st.
func (d Date) StartOfYear() Date {
	return d.at(d.Year(), 1, 1, 0, 0, 0, 0)
}

// EndOfYear returns the last microsecond of the year.
func (d Date) EndOfYear() Date {
	return d.at(d.Year()+1, 1, 1, 0, 0, 0, 0).Shift(-time.Microsecond)
}
