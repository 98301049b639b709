package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDateTime is a timestamp rendered in campus time.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var campusLocation *time.Location

func init() {
	var err error
	campusLocation, err = time.LoadLocation("America/New_York")
	if err != nil {
		campusLocation = time.FixedZone("EST", -5*60*60)
	}
}

// SetLocation switches the campus time zone. Call it once at startup.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load location %q: %w", name, err)
	}
	campusLocation = loc
	return nil
}

func Location() *time.Location {
	return campusLocation
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

// StartOfDay is campus midnight of the day t falls on.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(campusLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, campusLocation)
}

// FormatClock renders seconds as m:ss, the way quiz timers are displayed.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, campusLocation)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(campusLocation).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	if ldt.IsZero() {
		return nil, nil
	}
	return ldt.Time, nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		ldt.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ldt.Time = v
		return nil
	case []byte:
		return ldt.parse(string(v))
	case string:
		return ldt.parse(v)
	default:
		return fmt.Errorf("cannot scan type %T into LocalDateTime", value)
	}
}

func (ldt *LocalDateTime) parse(s string) error {
	for _, l := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999-07", layout} {
		if t, err := time.ParseInLocation(l, s, campusLocation); err == nil {
			ldt.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as LocalDateTime", s)
}
