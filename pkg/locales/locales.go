// Package locales holds the message tables used for human-readable time
// differences. Unknown locale codes fall back to English.
package locales

// Unit is the singular/plural label pair for a time unit.
type Unit struct {
	Singular string
	Plural   string
}

// Label picks the singular or plural form for a count.
func (u Unit) Label(count int) string {
	if count == 1 {
		return u.Singular
	}
	return u.Plural
}

// Messages is the lookup table for one locale.
type Messages struct {
	Code    string
	Past    string
	Future  string
	JustNow string
	// PrefixPast marks locales that place the past marker before the
	// amount ("hace 3 días") rather than after ("3 days ago").
	PrefixPast bool
	Units      map[string]Unit
}

// DefaultLocale is the fallback locale code.
const DefaultLocale = "en"

var tables = map[string]Messages{
	"en": {
		Code:    "en",
		Past:    "ago",
		Future:  "in",
		JustNow: "just now",
		Units: map[string]Unit{
			"year":   {"year", "years"},
			"month":  {"month", "months"},
			"week":   {"week", "weeks"},
			"day":    {"day", "days"},
			"hour":   {"hour", "hours"},
			"minute": {"minute", "minutes"},
			"second": {"second", "seconds"},
		},
	},
	"es": {
		Code:       "es",
		Past:       "hace",
		Future:     "en",
		JustNow:    "ahora mismo",
		PrefixPast: true,
		Units: map[string]Unit{
			"year":   {"año", "años"},
			"month":  {"mes", "meses"},
			"week":   {"semana", "semanas"},
			"day":    {"día", "días"},
			"hour":   {"hora", "horas"},
			"minute": {"minuto", "minutos"},
			"second": {"segundo", "segundos"},
		},
	},
}

// Get returns the message table for a locale code, falling back to English
// when the code is unknown.
func Get(code string) Messages {
	if m, ok := tables[code]; ok {
		return m
	}
	return tables[DefaultLocale]
}
