package date

import (
	"fmt"
	"strings"
	"time"

	"github.com/coolbeans/eones/pkg/zone"
)

// isoLayout renders up to microsecond precision with trailing zeros trimmed
// and "Z" for UTC.
const isoLayout = "2006-01-02T15:04:05.999999Z07:00"

// Layouts an ISO-8601 timestamp with an explicit offset may take. "Z07:00"
// also matches the literal Z suffix; the second form accepts offsets without
// a colon.
var isoOffsetLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
}

// Layouts an ISO-8601 timestamp without offset information may take.
var isoNaiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ISO renders the date as an ISO-8601 / RFC 3339 string in its display zone.
func (d Date) ISO() string {
	return d.t.Format(isoLayout)
}

// Unix returns the instant as seconds since the epoch.
func (d Date) Unix() int64 {
	return d.t.Unix()
}

// FromISO parses a strict ISO-8601 timestamp. An explicit offset in the text
// is preserved as the display zone even when it differs from zoneID; text
// without offset information is interpreted in zoneID.
func FromISO(text, zoneID string) (Date, error) {
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return Date{}, err
	}

	for _, layout := range isoOffsetLayouts {
		t, perr := time.Parse(layout, text)
		if perr != nil {
			continue
		}
		_, offset := t.Zone()
		return inLocation(t, zone.FixedOffset(offset)), nil
	}
	for _, layout := range isoNaiveLayouts {
		t, perr := time.ParseInLocation(layout, text, loc)
		if perr != nil {
			continue
		}
		return inLocation(t, loc), nil
	}
	return Date{}, fmt.Errorf("invalid ISO-8601 timestamp: %q", text)
}

// FromUnix creates a Date from seconds since the epoch, displayed in the
// given zone.
func FromUnix(seconds int64, zoneID string) (Date, error) {
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return Date{}, err
	}
	return inLocation(time.Unix(seconds, 0), loc), nil
}

// ToMap returns the calendar components plus the zone identity, mirroring
// the shape accepted by the parser's field-map input.
func (d Date) ToMap() map[string]any {
	return map[string]any{
		"year":        d.Year(),
		"month":       d.Month(),
		"day":         d.Day(),
		"hour":        d.Hour(),
		"minute":      d.Minute(),
		"second":      d.Second(),
		"microsecond": d.Microsecond(),
		"timezone":    d.zone,
	}
}

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISO()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text without offset
// information is interpreted as UTC.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := FromISO(string(text), zone.UTCName)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the date as a quoted ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.ISO() + `"`), nil
}

// UnmarshalJSON parses a quoted ISO string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	return d.UnmarshalText([]byte(s))
}
