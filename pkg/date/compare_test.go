package date

import (
	"errors"
	"testing"
)

func TestEqualAcrossZones(t *testing.T) {
	utc := mustDate(t, "2025-06-15T12:00:00Z", "UTC")
	madrid, err := utc.AsZone("Europe/Madrid")
	if err != nil {
		t.Fatalf("AsZone() error = %v", err)
	}

	if !utc.Equal(madrid) {
		t.Error("same instant in different zones should be equal")
	}
	if utc.Before(madrid) || utc.After(madrid) {
		t.Error("same instant should be neither before nor after itself")
	}
}

func TestBeforeAfter(t *testing.T) {
	a := mustDate(t, "2025-06-15T12:00:00Z", "UTC")
	b := mustDate(t, "2025-06-15T12:00:01Z", "UTC")

	if !a.Before(b) {
		t.Error("a should be before b")
	}
	if !b.After(a) {
		t.Error("b should be after a")
	}
	if a.After(b) || b.Before(a) {
		t.Error("ordering should be antisymmetric")
	}
}

func TestIsSameDayDependsOnZone(t *testing.T) {
	// 23:30 UTC on June 15 is already June 16 in Madrid
	d := mustDate(t, "2025-06-15T23:30:00Z", "UTC")
	other := mustDate(t, "2025-06-16T01:30:00+02:00", "UTC")

	if !d.IsSameDay(other) {
		t.Error("same instant viewed from the UTC calendar day should match")
	}

	madrid, err := d.AsZone("Europe/Madrid")
	if err != nil {
		t.Fatalf("AsZone() error = %v", err)
	}
	june15 := mustDate(t, "2025-06-15T10:00:00Z", "UTC")
	if madrid.IsSameDay(june15) {
		t.Error("23:30 UTC is June 16 in Madrid, not the same day as June 15")
	}
}

func TestIsBetween(t *testing.T) {
	start := mustDate(t, "2025-06-10T00:00:00Z", "UTC")
	end := mustDate(t, "2025-06-20T00:00:00Z", "UTC")
	mid := mustDate(t, "2025-06-15T00:00:00Z", "UTC")

	if !mid.IsBetween(start, end, false) {
		t.Error("mid should be strictly between")
	}
	if start.IsBetween(start, end, false) {
		t.Error("boundary should be excluded when not inclusive")
	}
	if !start.IsBetween(start, end, true) {
		t.Error("boundary should be included when inclusive")
	}
	if !end.IsBetween(start, end, true) {
		t.Error("end boundary should be included when inclusive")
	}
}

func TestIsWithin(t *testing.T) {
	d := mustDate(t, "2025-06-15", "UTC")

	sameMonth := mustDate(t, "2025-06-01", "UTC")
	otherMonth := mustDate(t, "2025-07-01", "UTC")
	otherYear := mustDate(t, "2024-06-15", "UTC")

	if !d.IsWithin(sameMonth, true) {
		t.Error("same year and month should match with checkMonth")
	}
	if d.IsWithin(otherMonth, true) {
		t.Error("different month should not match with checkMonth")
	}
	if !d.IsWithin(otherMonth, false) {
		t.Error("same year should match without checkMonth")
	}
	if d.IsWithin(otherYear, false) {
		t.Error("different year should never match")
	}
}

func TestIsSameWeek(t *testing.T) {
	monday := mustDate(t, "2025-06-16", "UTC")
	sunday := mustDate(t, "2025-06-22", "UTC")
	previousSunday := mustDate(t, "2025-06-15", "UTC")

	if !monday.IsSameWeek(sunday) {
		t.Error("Monday and the following Sunday share an ISO week")
	}
	if monday.IsSameWeek(previousSunday) {
		t.Error("Sunday before the Monday is the previous ISO week")
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		iso  string
		want bool
	}{
		{"2024-01-01", true},
		{"2025-01-01", false},
		{"2000-01-01", true},
		{"1900-01-01", false},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.iso, "UTC")
		if got := d.IsLeapYear(); got != tt.want {
			t.Errorf("IsLeapYear(%s) = %v, want %v", tt.iso, got, tt.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := mustDate(t, "2025-06-21", "UTC")
	sunday := mustDate(t, "2025-06-22", "UTC")
	monday := mustDate(t, "2025-06-16", "UTC")

	if !saturday.IsWeekend() || !sunday.IsWeekend() {
		t.Error("Saturday and Sunday should be weekend")
	}
	if monday.IsWeekend() {
		t.Error("Monday should not be weekend")
	}

	// a Sunday-anchored week makes Friday and Saturday its last two days
	friday := mustDate(t, "2025-06-20", "UTC")
	if !friday.IsWeekendFrom(6) {
		t.Error("Friday should be weekend with Sunday anchor")
	}
	if sunday.IsWeekendFrom(6) {
		t.Error("Sunday is the first day of a Sunday-anchored week")
	}
}

func TestWeekdayPredicates(t *testing.T) {
	d := mustDate(t, "2025-06-18", "UTC") // Wednesday

	if !d.IsWednesday() {
		t.Error("IsWednesday() should be true")
	}
	if d.IsMonday() || d.IsTuesday() || d.IsThursday() || d.IsFriday() ||
		d.IsSaturday() || d.IsSunday() {
		t.Error("only one weekday predicate should hold")
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		unit string
		want int
	}{
		{"whole days", "2025-06-01", "2025-06-15", "days", 14},
		{"partial day ignored", "2025-06-01T12:00:00Z", "2025-06-02T11:59:59Z", "days", 0},
		{"weeks", "2025-06-01", "2025-06-22", "weeks", 3},
		{"full month", "2025-01-15", "2025-02-15", "months", 1},
		{"month not yet complete", "2025-01-31", "2025-02-28", "months", 0},
		{"across year", "2024-11-15", "2025-02-15", "months", 3},
		{"years", "2020-06-15", "2025-06-15", "years", 5},
		{"year not yet complete", "2020-06-15", "2025-06-14", "years", 4},
	}
	for _, tt := range tests {
		a := mustDate(t, tt.a, "UTC")
		b := mustDate(t, tt.b, "UTC")

		got, err := a.Diff(b, tt.unit)
		if err != nil {
			t.Fatalf("%s: Diff() error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: Diff() = %d, want %d", tt.name, got, tt.want)
		}

		// symmetric regardless of argument order
		rev, err := b.Diff(a, tt.unit)
		if err != nil {
			t.Fatalf("%s: reverse Diff() error = %v", tt.name, err)
		}
		if rev != got {
			t.Errorf("%s: Diff() not symmetric: %d vs %d", tt.name, got, rev)
		}
	}
}

func TestDiffUnsupportedUnit(t *testing.T) {
	a := mustDate(t, "2025-06-01", "UTC")
	b := mustDate(t, "2025-06-15", "UTC")
	if _, err := a.Diff(b, "hours"); !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("Diff(hours) error = %v, want ErrUnsupportedUnit", err)
	}
}

func TestNextWeekday(t *testing.T) {
	sunday := mustDate(t, "2025-06-15T10:30:00Z", "UTC")

	// target later in the week
	wednesday := sunday.NextWeekday(2)
	if wednesday.ISO() != "2025-06-18T10:30:00Z" {
		t.Errorf("NextWeekday(2) = %s, want 2025-06-18T10:30:00Z", wednesday.ISO())
	}

	// same weekday jumps a full week, never today
	nextSunday := sunday.NextWeekday(6)
	if nextSunday.ISO() != "2025-06-22T10:30:00Z" {
		t.Errorf("NextWeekday(6) = %s, want 2025-06-22T10:30:00Z", nextSunday.ISO())
	}
}

func TestPreviousWeekday(t *testing.T) {
	sunday := mustDate(t, "2025-06-15T10:30:00Z", "UTC")

	friday := sunday.PreviousWeekday(4)
	if friday.ISO() != "2025-06-13T10:30:00Z" {
		t.Errorf("PreviousWeekday(4) = %s, want 2025-06-13T10:30:00Z", friday.ISO())
	}

	lastSunday := sunday.PreviousWeekday(6)
	if lastSunday.ISO() != "2025-06-08T10:30:00Z" {
		t.Errorf("PreviousWeekday(6) = %s, want 2025-06-08T10:30:00Z", lastSunday.ISO())
	}
}
