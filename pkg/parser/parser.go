// Package parser converts heterogeneous input — text, field maps, raw
// instants or ready-made dates — into date values. Text goes through an
// ISO-8601 fast path first, then an ordered list of candidate layouts.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/zone"
)

// ErrInvalidFormat indicates text that matched none of the configured
// layouts.
var ErrInvalidFormat = errors.New("date string does not match expected formats")

// ErrInvalidFieldKey indicates a field map containing an unrecognized key.
var ErrInvalidFieldKey = errors.New("invalid date field key")

// ErrUnsupportedInput indicates a value of a kind the parser cannot accept.
var ErrUnsupportedInput = errors.New("unsupported input type")

// Options configure a Parser. The zero Zone means UTC and nil Formats means
// DefaultFormats. DayFirst resolves ambiguous numeric dates as day/month
// (the default); clear it for US-style month/day. YearFirst prefers
// year-leading layouts for ambiguous input.
type Options struct {
	Zone      string
	Formats   []string
	DayFirst  bool
	YearFirst bool
}

// DefaultOptions returns the default configuration: UTC, the default layout
// list, day-first.
func DefaultOptions() Options {
	return Options{Zone: zone.UTCName, DayFirst: true}
}

// Parser converts input into date values in a configured target zone.
type Parser struct {
	loc     *time.Location
	zoneID  string
	formats []string
}

// New creates a Parser. Fails when the zone cannot be resolved.
func New(opts Options) (*Parser, error) {
	zoneID := opts.Zone
	if zoneID == "" {
		zoneID = zone.UTCName
	}
	loc, err := zone.Resolve(zoneID)
	if err != nil {
		return nil, err
	}

	formats := opts.Formats
	if formats == nil {
		formats = DefaultFormats
	}
	return &Parser{
		loc:     loc,
		zoneID:  zoneID,
		formats: orderFormats(formats, opts.DayFirst, opts.YearFirst),
	}, nil
}

// defaultParser is built once and shared: the default configuration is
// immutable after construction, so no further synchronization is needed.
var defaultParser = sync.OnceValue(func() *Parser {
	p, err := New(DefaultOptions())
	if err != nil {
		panic(err) // UTC always resolves
	}
	return p
})

// Default returns the shared parser for the default configuration.
func Default() *Parser {
	return defaultParser()
}

// Zone returns the parser's target zone identifier.
func (p *Parser) Zone() string { return p.zoneID }

// Parse converts any supported input into a date value: nil yields the
// current time, a time.Time is adopted as-is, a date.Date passes through
// unchanged, a map[string]int is treated as calendar fields and a string is
// matched against the configured layouts.
func (p *Parser) Parse(value any) (date.Date, error) {
	switch v := value.(type) {
	case nil:
		return date.Now(p.zoneID)
	case time.Time:
		return date.New(v, p.zoneID)
	case date.Date:
		return v, nil
	case map[string]int:
		return p.ParseMap(v)
	case string:
		return p.ParseString(v)
	}
	return date.Date{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, value)
}

var fieldKeys = map[string]bool{
	"year": true, "month": true, "day": true, "hour": true,
	"minute": true, "second": true, "microsecond": true,
}

// ParseMap builds a date from partial calendar fields. Omitted year, month
// and day default to today's values in the parser zone; omitted clock fields
// default to zero. Unrecognized keys are rejected.
func (p *Parser) ParseMap(fields map[string]int) (date.Date, error) {
	for key := range fields {
		if !fieldKeys[key] {
			return date.Date{}, fmt.Errorf("%w: %q", ErrInvalidFieldKey, key)
		}
	}

	now := time.Now().In(p.loc)
	pick := func(key string, fallback int) int {
		if v, ok := fields[key]; ok {
			return v
		}
		return fallback
	}
	// calendar fields default to today, clock fields to midnight
	year := pick("year", now.Year())
	month := pick("month", int(now.Month()))
	day := pick("day", now.Day())
	hour := pick("hour", 0)
	minute := pick("minute", 0)
	second := pick("second", 0)
	micro := pick("microsecond", 0)

	t := time.Date(year, time.Month(month), day, hour, minute, second, micro*1000, p.loc)
	return date.FromTime(t), nil
}

var isoShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ].+)?$`)

// ParseString matches text against the ISO fast path, then the configured
// layouts in order; the first match wins. An explicit offset in the text is
// preserved on the result even when it differs from the parser zone; text
// without one is interpreted in the parser zone.
func (p *Parser) ParseString(s string) (date.Date, error) {
	if isoShape.MatchString(s) {
		if d, err := date.FromISO(s, p.zoneID); err == nil {
			return d, nil
		}
	}

	for _, layout := range p.formats {
		t, err := time.ParseInLocation(layout, s, p.loc)
		if err != nil {
			continue
		}
		if hasOffset(layout) {
			_, offset := t.Zone()
			return date.FromTime(t.In(zone.FixedOffset(offset))), nil
		}
		return date.FromTime(t), nil
	}
	return date.Date{}, fmt.Errorf("%w: %q (tried %d layouts)", ErrInvalidFormat, s, len(p.formats))
}
