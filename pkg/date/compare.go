package date

import (
	"fmt"
	"time"
)

// Equal reports whether both values denote the same absolute instant. Two
// dates in different zones representing the same instant are equal.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// IsBefore is an alias for Before.
func (d Date) IsBefore(other Date) bool { return d.Before(other) }

// IsAfter is an alias for After.
func (d Date) IsAfter(other Date) bool { return d.After(other) }

// IsSameDay reports whether both instants fall on the same calendar day when
// viewed in d's zone.
func (d Date) IsSameDay(other Date) bool {
	o := other.t.In(d.t.Location())
	return d.Year() == o.Year() && d.t.Month() == o.Month() && d.Day() == o.Day()
}

// IsWithin reports whether both dates share the same year, and the same
// month when checkMonth is set.
func (d Date) IsWithin(other Date, checkMonth bool) bool {
	if d.Year() != other.Year() {
		return false
	}
	return !checkMonth || d.Month() == other.Month()
}

// IsBetween reports whether d lies between start and end on the absolute
// timeline. Boundaries count when inclusive is set.
func (d Date) IsBetween(start, end Date, inclusive bool) bool {
	if inclusive {
		return !d.Before(start) && !d.After(end)
	}
	return d.After(start) && d.Before(end)
}

// IsSameWeek reports whether both dates share the same ISO (year, week)
// pair.
func (d Date) IsSameWeek(other Date) bool {
	y1, w1 := d.t.ISOWeek()
	y2, w2 := other.t.ISOWeek()
	return y1 == y2 && w1 == w2
}

// IsLeapYear reports whether the displayed year is a Gregorian leap year.
func (d Date) IsLeapYear() bool {
	return isLeap(d.Year())
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	return d.Weekday() >= 5
}

// IsWeekendFrom reports whether the date falls on the last two days of a
// week anchored at firstDayOfWeek (ISO numbering, Monday=0). With the
// default Monday anchor this is Saturday and Sunday.
func (d Date) IsWeekendFrom(firstDayOfWeek int) bool {
	return (d.Weekday()-firstDayOfWeek+7)%7 >= 5
}

// IsMonday reports whether the date falls on a Monday.
func (d Date) IsMonday() bool { return d.Weekday() == 0 }

// IsTuesday reports whether the date falls on a Tuesday.
func (d Date) IsTuesday() bool { return d.Weekday() == 1 }

// IsWednesday reports whether the date falls on a Wednesday.
func (d Date) IsWednesday() bool { return d.Weekday() == 2 }

// IsThursday reports whether the date falls on a Thursday.
func (d Date) IsThursday() bool { return d.Weekday() == 3 }

// IsFriday reports whether the date falls on a Friday.
func (d Date) IsFriday() bool { return d.Weekday() == 4 }

// IsSaturday reports whether the date falls on a Saturday.
func (d Date) IsSaturday() bool { return d.Weekday() == 5 }

// IsSunday reports whether the date falls on a Sunday.
func (d Date) IsSunday() bool { return d.Weekday() == 6 }

// Diff returns the non-negative difference between two dates in the given
// unit: "days", "weeks", "months" or "years". Days and weeks are exact
// elapsed-time quantities; months and years count fully elapsed calendar
// units, so Jan 31 to Feb 28 is zero months.
func (d Date) Diff(other Date, unit string) (int, error) {
	earlier, later := d, other
	if later.Before(earlier) {
		earlier, later = later, earlier
	}

	switch unit {
	case "days":
		return int(later.t.Sub(earlier.t) / (24 * time.Hour)), nil
	case "weeks":
		return int(later.t.Sub(earlier.t)/(24*time.Hour)) / 7, nil
	case "months":
		months := 12*(later.Year()-earlier.Year()) + later.Month() - earlier.Month()
		if later.Day() < earlier.Day() {
			months--
		}
		return months, nil
	case "years":
		years := later.Year() - earlier.Year()
		if later.Month() < earlier.Month() ||
			(later.Month() == earlier.Month() && later.Day() < earlier.Day()) {
			years--
		}
		return years, nil
	}
	return 0, fmt.Errorf("%w: %s (use days, weeks, months or years)", ErrUnsupportedUnit, unit)
}

// NextWeekday returns the next date falling on the target weekday (ISO,
// Monday=0). When the date already falls on the target weekday the result is
// a full week ahead, never the same day.
func (d Date) NextWeekday(target int) Date {
	ahead := (target - d.Weekday() + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return d.at(d.Year(), d.Month(), d.Day()+ahead, d.Hour(), d.Minute(), d.Second(), d.t.Nanosecond())
}

// PreviousWeekday returns the previous date falling on the target weekday
// (ISO, Monday=0), a full week back when the weekdays already match.
func (d Date) PreviousWeekday(target int) Date {
	behind := (d.Weekday() - target + 7) % 7
	if behind == 0 {
		behind = 7
	}
	return d.at(d.Year(), d.Month(), d.Day()-behind, d.Hour(), d.Minute(), d.Second(), d.t.Nanosecond())
}
