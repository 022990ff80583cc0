// Package holiday provides a simple holiday-list calendar for business-day
// queries. Calendars are loaded from YAML files and can be watched for
// changes and reloaded live.
package holiday

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/zone"
)

// dayKey is the calendar-day granularity used for lookups.
const dayKey = "2006-01-02"

// Entry is one holiday in a calendar file.
type Entry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// calendarFile is the YAML shape of a holiday calendar.
type calendarFile struct {
	Timezone string  `yaml:"timezone"`
	Holidays []Entry `yaml:"holidays"`
}

// Calendar is a set of holiday dates. Lookups are keyed by calendar day in
// the date's own display zone. Safe for concurrent use.
type Calendar struct {
	mu     sync.RWMutex
	zoneID string
	path   string
	days   map[string]string

	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onReload func(count int)
}

// NewCalendar creates an empty calendar.
func NewCalendar(zoneID string) *Calendar {
	if zoneID == "" {
		zoneID = zone.UTCName
	}
	return &Calendar{zoneID: zoneID, days: make(map[string]string)}
}

// Load reads a calendar from a YAML file.
func Load(path string) (*Calendar, error) {
	c := NewCalendar("")
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile replaces the calendar contents with the entries of a YAML file.
func (c *Calendar) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading calendar file: %w", err)
	}

	var file calendarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing calendar YAML: %w", err)
	}

	zoneID := file.Timezone
	if zoneID == "" {
		zoneID = zone.UTCName
	}
	if _, err := zone.Resolve(zoneID); err != nil {
		return err
	}

	days := make(map[string]string, len(file.Holidays))
	for i, entry := range file.Holidays {
		if entry.Date == "" {
			return fmt.Errorf("holiday %d: date is required", i)
		}
		d, err := date.FromISO(entry.Date, zoneID)
		if err != nil {
			return fmt.Errorf("holiday %d: %w", i, err)
		}
		days[d.Format(dayKey)] = entry.Name
	}

	c.mu.Lock()
	c.zoneID = zoneID
	c.path = path
	c.days = days
	c.mu.Unlock()

	return nil
}

// Add marks a single day as a holiday.
func (c *Calendar) Add(d date.Date, name string) {
	c.mu.Lock()
	c.days[d.Format(dayKey)] = name
	c.mu.Unlock()
}

// Zone returns the calendar's zone identifier.
func (c *Calendar) Zone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zoneID
}

// Count returns the number of holidays.
func (c *Calendar) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.days)
}

// IsHoliday reports whether d's calendar day is in the holiday set.
func (c *Calendar) IsHoliday(d date.Date) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.days[d.Format(dayKey)]
	return ok
}

// Name returns the holiday name for d's calendar day, if any.
func (c *Calendar) Name(d date.Date) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.days[d.Format(dayKey)]
	return name, ok
}

// IsBusinessDay reports whether d is neither a weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(d date.Date) bool {
	return !d.IsWeekend() && !c.IsHoliday(d)
}

// NextBusinessDay returns the first business day strictly after d.
func (c *Calendar) NextBusinessDay(d date.Date) date.Date {
	cur := d
	for {
		cur = cur.Replace(map[string]int{"day": cur.Day() + 1})
		if c.IsBusinessDay(cur) {
			return cur
		}
	}
}

// NextBusinessDays returns the n business days following d.
func (c *Calendar) NextBusinessDays(d date.Date, n int) []date.Date {
	out := make([]date.Date, 0, n)
	cur := d
	for len(out) < n {
		cur = c.NextBusinessDay(cur)
		out = append(out, cur)
	}
	return out
}

// SetOnReload sets a callback invoked after a successful watched reload
// with the new holiday count.
func (c *Calendar) SetOnReload(fn func(count int)) {
	c.mu.Lock()
	c.onReload = fn
	c.mu.Unlock()
}

// Watch starts watching the calendar file for changes and reloads it on
// write, create or rename events.
func (c *Calendar) Watch() error {
	c.mu.RLock()
	path := c.path
	c.mu.RUnlock()
	if path == "" {
		return fmt.Errorf("no calendar file configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	c.watcher = watcher
	c.stopChan = make(chan struct{})

	go c.watchLoop(path)

	if err := watcher.Add(path); err != nil {
		c.watcher.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}
	return nil
}

// watchLoop handles file system events.
func (c *Calendar) watchLoop(path string) {
	for {
		select {
		case <-c.stopChan:
			return

		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write,
				event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				c.reload(path)
			}

		case _, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			// keep watching; a failed reload leaves the previous set intact
		}
	}
}

func (c *Calendar) reload(path string) {
	if err := c.LoadFile(path); err != nil {
		return
	}
	c.mu.RLock()
	fn := c.onReload
	count := len(c.days)
	c.mu.RUnlock()
	if fn != nil {
		fn(count)
	}
}

// StopWatch stops watching the calendar file.
func (c *Calendar) StopWatch() {
	if c.stopChan != nil {
		close(c.stopChan)
	}
	if c.watcher != nil {
		c.watcher.Close()
	}
}
