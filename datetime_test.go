package trakt

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestDateRoundTrip(t *testing.T) {
	for _, in := range []string{`"2024-01-01"`, `"1994-09-23"`, `"2000-02-29"`} {
		var d Date
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("unexpected error for %s: %v", in, err)
		}
		out, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != in {
			t.Errorf("expected %s, got %s", in, out)
		}
	}
}

func TestDateRejectsTimestamp(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-01-01T00:00:00.000Z"`), &d); err == nil {
		t.Error("expected error decoding a timestamp as a date")
	}
	if err := json.Unmarshal([]byte(`20240101`), &d); err == nil {
		t.Error("expected error decoding a number as a date")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, in := range []string{
		`"2024-01-01T00:00:00.000Z"`,
		`"2014-09-01T09:10:11.000Z"`,
		`"2023-06-15T21:30:45.123+02:00"`,
	} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("unexpected error for %s: %v", in, err)
		}
		out, err := json.Marshal(ts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != in {
			t.Errorf("expected %s, got %s", in, out)
		}
	}
}

func TestTimestampRejectsWrongPrecision(t *testing.T) {
	for _, in := range []string{
		`"2024-01-01"`,
		`"2024-01-01T00:00:00Z"`,
		`"2024-01-01T00:00:00.1Z"`,
		`"2024-01-01T00:00:00.123456Z"`,
	} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestTimestampNull(t *testing.T) {
	ts := Timestamp{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Year() != 2020 {
		t.Error("expected null to leave the value unchanged")
	}
}

func TestNewDate(t *testing.T) {
	if got := NewDate(2024, time.March, 5).String(); got != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got %s", got)
	}
}
