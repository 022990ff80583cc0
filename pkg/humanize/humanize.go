// Package humanize renders the distance between two dates as a phrase like
// "3 days ago" or "in 2 weeks".
package humanize

import (
	"fmt"

	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/locales"
)

// Fixed per-unit second counts. Year, month and week are approximations
// (365-day year, 30-day month), not calendar-exact; they only bucket the
// rendered amount.
var units = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// DiffForHumans describes d relative to other in the given locale. A nil
// other compares against the current time in d's zone. Sub-second distances
// render as the locale's "just now" phrase.
func DiffForHumans(d date.Date, other *date.Date, locale string) (string, error) {
	msgs := locales.Get(locale)

	var ref date.Date
	if other != nil {
		ref = *other
	} else {
		now, err := date.Now(d.ZoneName())
		if err != nil {
			return "", err
		}
		ref = now
	}

	diff := d.Sub(ref)
	future := diff > 0
	seconds := int64(diff.Seconds())
	if seconds < 0 {
		seconds = -seconds
	}

	for _, u := range units {
		if seconds < u.seconds {
			continue
		}
		count := int(seconds / u.seconds)
		label := msgs.Units[u.name].Label(count)
		if future {
			return fmt.Sprintf("%s %d %s", msgs.Future, count, label), nil
		}
		if msgs.PrefixPast {
			return fmt.Sprintf("%s %d %s", msgs.Past, count, label), nil
		}
		return fmt.Sprintf("%d %s %s", count, label, msgs.Past), nil
	}
	return msgs.JustNow, nil
}
