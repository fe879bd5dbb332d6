package trakt

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

const (
	// DateLayout is the wire form of calendar dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the wire form of instants: UTC offset and exactly three fractional digits.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

// NewDate returns the Date for year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate decodes s in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Format(DateLayout)), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s, err := unquote(b)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Timestamp is an instant with millisecond precision.
type Timestamp struct {
	time.Time
}

// ParseTimestamp decodes s in TimestampLayout. Inputs with more or fewer than
// three fractional digits are rejected so that encoding reproduces s.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	if t.Format(TimestampLayout) != s {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: not in canonical form", s)
	}
	return Timestamp{t}, nil
}

func (ts Timestamp) String() string { return ts.Format(TimestampLayout) }

func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.Format(TimestampLayout)), nil
}

func (ts *Timestamp) UnmarshalText(b []byte) error {
	parsed, err := ParseTimestamp(string(b))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.Format(TimestampLayout))), nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s, err := unquote(b)
	if err != nil {
		return err
	}
	return ts.UnmarshalText([]byte(s))
}

func unquote(b []byte) (string, error) {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return "", fmt.Errorf("expected JSON string, got %s", b)
	}
	return strconv.Unquote(string(b))
}
