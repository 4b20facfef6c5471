package garagebook

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayDateFormat is the format invoice dates are stored and shown in.
const DisplayDateFormat = "02/01/2006"

// DateOrder states how an ambiguous slash date (both components <= 12) is read.
// The shop's paperwork is UK-style, so DayFirst is the default everywhere, but
// the choice is explicit and can be overridden per run.
type DateOrder int

const (
	DayFirst DateOrder = iota
	MonthFirst
)

func (o DateOrder) String() string {
	switch o {
	case DayFirst:
		return "day-first"
	case MonthFirst:
		return "month-first"
	default:
		return "unknown"
	}
}

// ParseDateOrder parses a date order flag value.
func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(s) {
	case "day-first", "dmy", "uk":
		return DayFirst, nil
	case "month-first", "mdy", "us":
		return MonthFirst, nil
	default:
		return DayFirst, fmt.Errorf("unknown date order %q (want day-first or month-first)", s)
	}
}

// Date represents a calendar date with day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String formats the date in the display format, e.g. "05/01/2024".
func (d Date) String() string { return d.time().Format(DisplayDateFormat) }

// MonthKey returns the year+month grouping key, e.g. "2024-01".
func (d Date) MonthKey() string { return fmt.Sprintf("%04d-%02d", d.y, int(d.m)) }

// MonthName returns the human month label, e.g. "January 2024".
func (d Date) MonthName() string { return fmt.Sprintf("%s %d", d.m, d.y) }

// ParseDisplayDate parses an invoice date string.
//
// Slash dates are read day-first or month-first per order, except that a
// component larger than 12 settles the question on its own, whatever the
// order says. ISO dates (2024-01-05) are accepted as a fallback. Anything
// else is an error; callers decide whether that excludes the invoice.
func ParseDisplayDate(s string, order DateOrder) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}

	if parts := strings.Split(s, "/"); len(parts) == 3 {
		p1, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		p2, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return Date{}, fmt.Errorf("invalid date %q: not numeric", s)
		}

		day, month := p1, p2
		switch {
		case p1 > 12:
			// settled: day first
		case p2 > 12:
			day, month = p2, p1
		case order == MonthFirst:
			day, month = p2, p1
		}

		if month < 1 || month > 12 || day < 1 || day > 31 || year <= 1900 {
			return Date{}, fmt.Errorf("invalid date %q", s)
		}
		d := NewDate(year, time.Month(month), day)
		// reject normalized overflows like 31/02/2024
		if d.Day() != day || d.Month() != time.Month(month) {
			return Date{}, fmt.Errorf("invalid date %q: no such day", s)
		}
		return d, nil
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return NewDate(t.Date()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q: want %q", s, DisplayDateFormat)
}
