package parser

import (
	"strings"
	"time"
)

// DefaultFormats is the ordered default layout list. Day-first numeric
// layouts come before their month-first twins, which are only consulted
// through the DayFirst option.
var DefaultFormats = []string{
	"2006-01-02",                       // 2025-06-15
	"02/01/2006",                       // 15/06/2025
	"2006/01/02",                       // 2025/06/15
	"02-01-2006",                       // 15-06-2025
	"02.01.2006",                       // 15.06.2025
	"2006-01-02 15:04:05",              // 2025-06-15 13:45:00
	"02/01/2006 15:04:05",              // 15/06/2025 13:45:00
	"02/01/2006 15:04",                 // 15/06/2025 13:45
	"2006-01-02T15:04:05",              // 2025-06-15T13:45:00
	"2006-01-02T15:04",                 // 2025-06-15T13:45
	"2006-01-02 15:04",                 // 2025-06-15 13:45
	"02 Jan 2006",                      // 15 Jun 2025
	"02 January 2006",                  // 15 June 2025
	"20060102",                         // 20250615
	"02012006",                         // 15062025
	"2006-01-02T15:04:05.999999",       // 2025-06-15T13:45:00.000000
	"2006-01-02T15:04:05.999999Z07:00", // 2025-06-15T13:45:00.000000Z
	"2006-01-02T15:04:05Z0700",         // 2025-06-15T13:45:00+0000
	time.ANSIC,                         // Sun Jun 15 13:45:00 2025
}

// swapDayMonth converts a day-first numeric layout into its month-first
// twin by exchanging the "02" (day) and "01" (month) tokens. Time tokens
// ("15", "04", "05") are unaffected.
func swapDayMonth(layout string) string {
	const marker = "\x00\x00"
	s := strings.Replace(layout, "02", marker, 1)
	s = strings.Replace(s, "01", "02", 1)
	return strings.Replace(s, marker, "01", 1)
}

// ambiguous reports whether a layout is numeric-only with the day token
// before the month token, the shape the DayFirst and YearFirst flags
// disambiguate.
func ambiguous(layout string) bool {
	day := strings.Index(layout, "02")
	month := strings.Index(layout, "01")
	if day < 0 || month < 0 || day > month {
		return false
	}
	return !strings.Contains(layout, "Jan") && !strings.Contains(layout, "January")
}

// orderFormats produces the effective candidate list. With dayFirst unset,
// month-first twins of the ambiguous layouts are tried before the full
// list; with yearFirst set, year-leading layouts move to the front.
func orderFormats(formats []string, dayFirst, yearFirst bool) []string {
	var ordered []string
	if !dayFirst {
		for _, layout := range formats {
			if ambiguous(layout) {
				ordered = append(ordered, swapDayMonth(layout))
			}
		}
	}
	if yearFirst {
		for _, layout := range formats {
			if strings.HasPrefix(layout, "2006") {
				ordered = append(ordered, layout)
			}
		}
	}
	return append(ordered, formats...)
}

// hasOffset reports whether a layout captures explicit offset or zone
// information.
func hasOffset(layout string) bool {
	return strings.Contains(layout, "Z07") || strings.Contains(layout, "-07") ||
		strings.Contains(layout, "MST")
}
