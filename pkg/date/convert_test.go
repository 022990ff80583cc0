package date

import (
	"encoding/json"
	"testing"
)

func TestISORendering(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		// trailing zeros of the fraction are trimmed, all-zero drops it
		{"2025-06-15T13:45:30.123456Z", "2025-06-15T13:45:30.123456Z"},
		{"2025-06-15T13:45:30.120000Z", "2025-06-15T13:45:30.12Z"},
		{"2025-06-15T13:45:30.000000Z", "2025-06-15T13:45:30Z"},
		{"2025-06-15T13:45:30+02:00", "2025-06-15T13:45:30+02:00"},
	}
	for _, tt := range tests {
		d := mustDate(t, tt.iso, "UTC")
		if got := d.ISO(); got != tt.want {
			t.Errorf("ISO(%s) = %s, want %s", tt.iso, got, tt.want)
		}
	}
}

func TestISORoundTrip(t *testing.T) {
	d := mustDate(t, "2025-06-15T13:45:30.123456Z", "UTC")

	back, err := FromISO(d.ISO(), "UTC")
	if err != nil {
		t.Fatalf("FromISO() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed the instant: %s vs %s", back, d)
	}
}

func TestFromISOPreservesOffset(t *testing.T) {
	d, err := FromISO("2025-06-15T10:00:00+05:30", "UTC")
	if err != nil {
		t.Fatalf("FromISO() error = %v", err)
	}
	if d.ZoneName() != "+05:30" {
		t.Errorf("ZoneName() = %q, want +05:30", d.ZoneName())
	}
	if d.Hour() != 10 {
		t.Errorf("Hour() = %d, want 10 (wall clock kept)", d.Hour())
	}
	if d.AsUTC().Hour() != 4 || d.AsUTC().Minute() != 30 {
		t.Errorf("instant = %s, want 04:30 UTC", d.AsUTC())
	}
}

func TestFromISONaiveUsesZone(t *testing.T) {
	d, err := FromISO("2025-06-15T10:00:00", "Europe/Madrid")
	if err != nil {
		t.Fatalf("FromISO() error = %v", err)
	}
	if d.ZoneName() != "Europe/Madrid" {
		t.Errorf("ZoneName() = %q, want Europe/Madrid", d.ZoneName())
	}
	if d.AsUTC().Hour() != 8 {
		t.Errorf("UTC hour = %d, want 8", d.AsUTC().Hour())
	}
}

func TestFromISOInvalid(t *testing.T) {
	invalid := []string{"", "not a date", "15/06/2025", "2025-13-45T99:00:00Z"}
	for _, s := range invalid {
		if _, err := FromISO(s, "UTC"); err == nil {
			t.Errorf("FromISO(%q) should return error", s)
		}
	}
}

func TestUnixRoundTrip(t *testing.T) {
	d := mustDate(t, "2025-06-15T13:45:30Z", "UTC")

	back, err := FromUnix(d.Unix(), "UTC")
	if err != nil {
		t.Fatalf("FromUnix() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("unix round trip changed the instant: %s vs %s", back, d)
	}

	madrid, err := FromUnix(d.Unix(), "Europe/Madrid")
	if err != nil {
		t.Fatalf("FromUnix(Madrid) error = %v", err)
	}
	if !madrid.Equal(d) {
		t.Error("zone choice should not change the instant")
	}
	if madrid.Hour() != 15 {
		t.Errorf("Hour() = %d, want 15", madrid.Hour())
	}
}

func TestToMap(t *testing.T) {
	d := mustDate(t, "2025-06-15T13:45:30.123456Z", "UTC")

	m := d.ToMap()
	if m["year"] != 2025 || m["month"] != 6 || m["day"] != 15 {
		t.Errorf("date fields = %v", m)
	}
	if m["hour"] != 13 || m["minute"] != 45 || m["second"] != 30 {
		t.Errorf("clock fields = %v", m)
	}
	if m["microsecond"] != 123456 {
		t.Errorf("microsecond = %v, want 123456", m["microsecond"])
	}
	if m["timezone"] != "UTC" {
		t.Errorf("timezone = %v, want UTC", m["timezone"])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := mustDate(t, "2025-06-15T13:45:30.123456Z", "UTC")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-06-15T13:45:30.123456Z"` {
		t.Errorf("Marshal() = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("JSON round trip changed the instant: %s vs %s", back, d)
	}
}
