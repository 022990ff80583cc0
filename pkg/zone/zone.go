// Package zone resolves timezone identifiers against the platform IANA
// database and constructs fixed-offset zones for parsed offsets.
package zone

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidTimezone indicates a zone identifier that the platform timezone
// database cannot resolve.
var ErrInvalidTimezone = errors.New("invalid timezone")

// UTCName is the identifier of the default zone.
const UTCName = "UTC"

var (
	cacheMu sync.RWMutex
	cache   = map[string]*time.Location{}
)

// Resolve returns the location for a zone identifier. An empty identifier
// resolves to UTC. Results are cached process-wide; the cache is append-only
// and locations are immutable, so concurrent use is safe.
func Resolve(id string) (*time.Location, error) {
	if id == "" || id == UTCName {
		return time.UTC, nil
	}
	if id == "Local" {
		return time.Local, nil
	}

	cacheMu.RLock()
	loc, ok := cache[id]
	cacheMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, id)
	}

	cacheMu.Lock()
	cache[id] = loc
	cacheMu.Unlock()

	return loc, nil
}

// FixedOffset returns a fixed-offset location for the given offset east of
// UTC. A zero offset is UTC itself. The location is named by its offset so
// the zone identity survives round trips through formatting.
func FixedOffset(seconds int) *time.Location {
	if seconds == 0 {
		return time.UTC
	}
	return time.FixedZone(OffsetName(seconds), seconds)
}

// OffsetName formats an offset east of UTC as ±HH:MM.
func OffsetName(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
