// Package sqlfield adapts date values to database/sql. Values are stored as
// UTC timestamps and rehydrated into a configured display zone, so the
// column round-trips regardless of the session timezone.
package sqlfield

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/zone"
)

// DateTime is a nullable date column. Zone is the display zone applied on
// Scan; empty means UTC.
type DateTime struct {
	Date  date.Date
	Zone  string
	Valid bool
}

// New wraps a date value for storage.
func New(d date.Date) DateTime {
	return DateTime{Date: d, Zone: d.ZoneName(), Valid: true}
}

// Value implements driver.Valuer, emitting the instant as a UTC timestamp.
func (f DateTime) Value() (driver.Value, error) {
	if !f.Valid {
		return nil, nil
	}
	return f.Date.Time().UTC(), nil
}

// Scan implements sql.Scanner. Accepted source types are time.Time, ISO
// text (string or []byte), epoch seconds (int64) and nil. Text without an
// explicit offset is read as the stored UTC instant.
func (f *DateTime) Scan(src any) error {
	zoneID := f.Zone
	if zoneID == "" {
		zoneID = zone.UTCName
	}

	switch v := src.(type) {
	case nil:
		*f = DateTime{Zone: f.Zone}
		return nil
	case time.Time:
		d, err := date.New(v, zoneID)
		if err != nil {
			return err
		}
		*f = DateTime{Date: d, Zone: f.Zone, Valid: true}
		return nil
	case string:
		return f.scanText(v, zoneID)
	case []byte:
		return f.scanText(string(v), zoneID)
	case int64:
		d, err := date.FromUnix(v, zoneID)
		if err != nil {
			return err
		}
		*f = DateTime{Date: d, Zone: f.Zone, Valid: true}
		return nil
	}
	return fmt.Errorf("sqlfield: cannot scan %T into DateTime", src)
}

func (f *DateTime) scanText(text, zoneID string) error {
	// offset-less text from string-returning drivers is the UTC instant
	// Value stored; attach UTC first, then surface in the display zone
	d, err := date.FromISO(text, zone.UTCName)
	if err != nil {
		return err
	}
	d, err = d.AsZone(zoneID)
	if err != nil {
		return err
	}
	*f = DateTime{Date: d, Zone: f.Zone, Valid: true}
	return nil
}
