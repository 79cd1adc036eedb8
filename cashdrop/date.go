package cashdrop

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// DATE - Business calendar day
// =============================================================================

const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day. The zero value is "no date".
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

// DateOf returns the calendar day of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc != nil {
		t = t.In(loc)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) IsZero() bool               { return d.Time.IsZero() }
func (d Date) String() string             { return d.Time.Format(DateLayout) }
func (d Date) AddDays(n int) Date         { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) Equal(other Date) bool      { return d.String() == other.String() }
func (d Date) Before(other Date) bool     { return d.String() < other.String() }
func (d Date) After(other Date) bool      { return d.String() > other.String() }
func (d Date) Between(from, to Date) bool { return !d.Before(from) && !d.After(to) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// BUSINESS CALENDAR - "today" in the store's timezone
// =============================================================================

// Calendar resolves the business day for an instant. Now defaults to
// time.Now; tests pin it.
type Calendar struct {
	Location *time.Location
	Now      func() time.Time
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{Location: loc, Now: time.Now}
}

func (c *Calendar) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today is the current business day.
func (c *Calendar) Today() Date { return DateOf(c.now(), c.Location) }

// CheckDropDate enforces that drops are only recorded for today or
// yesterday in the business timezone.
func (c *Calendar) CheckDropDate(d Date) error {
	if d.IsZero() {
		return invalid("date", "is required")
	}
	today := c.Today()
	if d.Equal(today) || d.Equal(today.AddDays(-1)) {
		return nil
	}
	return invalid("date", "cash drops can only be recorded for %s or %s, got %s",
		today, today.AddDays(-1), d)
}
