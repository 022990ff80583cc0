package sqlfield

import (
	"testing"
	"time"

	"github.com/coolbeans/eones/pkg/date"
)

func mustDate(t *testing.T, iso, zoneID string) date.Date {
	t.Helper()
	d, err := date.FromISO(iso, zoneID)
	if err != nil {
		t.Fatalf("FromISO(%q, %q) error = %v", iso, zoneID, err)
	}
	return d
}

func TestValueEmitsUTC(t *testing.T) {
	d := mustDate(t, "2025-06-15T14:00:00", "Europe/Madrid")

	v, err := New(d).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	ts, ok := v.(time.Time)
	if !ok {
		t.Fatalf("Value() = %T, want time.Time", v)
	}
	if ts.Location() != time.UTC {
		t.Errorf("Value() location = %v, want UTC", ts.Location())
	}
	if ts.Hour() != 12 {
		t.Errorf("Value() hour = %d, want 12 (14:00 Madrid)", ts.Hour())
	}
}

func TestValueNull(t *testing.T) {
	var f DateTime

	v, err := f.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != nil {
		t.Errorf("Value() = %v, want nil for invalid field", v)
	}
}

func TestScanTime(t *testing.T) {
	var f DateTime
	instant := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if err := f.Scan(instant); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !f.Valid {
		t.Fatal("Valid should be set after Scan")
	}
	if !f.Date.Time().Equal(instant) {
		t.Error("Scan() changed the instant")
	}
	if f.Date.ZoneName() != "UTC" {
		t.Errorf("ZoneName() = %q, want UTC", f.Date.ZoneName())
	}
}

func TestScanWithDisplayZone(t *testing.T) {
	f := DateTime{Zone: "Europe/Madrid"}

	if err := f.Scan(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if f.Date.ZoneName() != "Europe/Madrid" {
		t.Errorf("ZoneName() = %q, want Europe/Madrid", f.Date.ZoneName())
	}
	if f.Date.Hour() != 14 {
		t.Errorf("Hour() = %d, want 14", f.Date.Hour())
	}
}

func TestScanText(t *testing.T) {
	var f DateTime

	if err := f.Scan("2025-06-15T12:00:00Z"); err != nil {
		t.Fatalf("Scan(string) error = %v", err)
	}
	if f.Date.Hour() != 12 {
		t.Errorf("Hour() = %d, want 12", f.Date.Hour())
	}

	var g DateTime
	if err := g.Scan([]byte("2025-06-15T12:00:00Z")); err != nil {
		t.Fatalf("Scan([]byte) error = %v", err)
	}
	if !g.Date.Equal(f.Date) {
		t.Error("string and []byte scans should agree")
	}
}

func TestScanNaiveTextIsStoredUTC(t *testing.T) {
	// string-returning drivers hand back the UTC instant without an
	// offset; the display zone must not reinterpret the wall clock
	f := DateTime{Zone: "Europe/Madrid"}

	if err := f.Scan("2025-06-15 12:00:00"); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got := f.Date.Time().UTC().Hour(); got != 12 {
		t.Errorf("UTC hour = %d, want 12", got)
	}
	if f.Date.ZoneName() != "Europe/Madrid" {
		t.Errorf("ZoneName() = %q, want Europe/Madrid", f.Date.ZoneName())
	}
	if f.Date.Hour() != 14 {
		t.Errorf("display hour = %d, want 14", f.Date.Hour())
	}
}

func TestNaiveTextRoundTrip(t *testing.T) {
	original := mustDate(t, "2025-06-15T14:30:45", "Europe/Madrid")

	// simulate a driver that renders the stored UTC value as bare text
	v, err := New(original).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	text := v.(time.Time).Format("2006-01-02 15:04:05")

	restored := DateTime{Zone: "Europe/Madrid"}
	if err := restored.Scan(text); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !restored.Date.Equal(original) {
		t.Errorf("round trip changed the instant: %s vs %s", restored.Date, original)
	}
}

func TestScanTextWithOffsetProjectsIntoZone(t *testing.T) {
	f := DateTime{Zone: "UTC"}

	if err := f.Scan("2025-06-15T14:00:00+02:00"); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if f.Date.ZoneName() != "UTC" {
		t.Errorf("ZoneName() = %q, want UTC", f.Date.ZoneName())
	}
	if f.Date.Hour() != 12 {
		t.Errorf("Hour() = %d, want 12", f.Date.Hour())
	}
}

func TestScanEpochSeconds(t *testing.T) {
	var f DateTime

	if err := f.Scan(int64(1750000000)); err != nil {
		t.Fatalf("Scan(int64) error = %v", err)
	}
	if got := f.Date.Unix(); got != 1750000000 {
		t.Errorf("Unix() = %d, want 1750000000", got)
	}
}

func TestScanNil(t *testing.T) {
	f := DateTime{Date: mustDate(t, "2025-06-15", "UTC"), Valid: true}

	if err := f.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if f.Valid {
		t.Error("Valid should be cleared after scanning nil")
	}
}

func TestScanUnsupportedType(t *testing.T) {
	var f DateTime
	if err := f.Scan(3.14); err == nil {
		t.Error("Scan(float64) should return error")
	}
}

func TestRoundTrip(t *testing.T) {
	original := mustDate(t, "2025-06-15T14:30:45.123456", "Europe/Madrid")

	v, err := New(original).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	restored := DateTime{Zone: "Europe/Madrid"}
	if err := restored.Scan(v); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !restored.Date.Equal(original) {
		t.Errorf("round trip changed the instant: %s vs %s", restored.Date, original)
	}
	if restored.Date.Hour() != 14 {
		t.Errorf("Hour() = %d, want 14", restored.Date.Hour())
	}
}
