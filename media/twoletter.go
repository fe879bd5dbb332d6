package media

import (
	"bytes"
	"fmt"
	"strconv"
)

// TwoLetter is an ISO 3166-1 country or ISO 639-1 language code.
// It is stored and encoded in lower case.
type TwoLetter [2]byte

// Country is a two letter country code.
type Country = TwoLetter

// Language is a two letter language code.
type Language = TwoLetter

// ParseTwoLetter validates s and lower-cases it.
func ParseTwoLetter(s string) (TwoLetter, error) {
	if len(s) != 2 {
		return TwoLetter{}, fmt.Errorf("two letter code %q: expected 2 letters, got %d bytes", s, len(s))
	}
	var t TwoLetter
	for i := 0; i < 2; i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return TwoLetter{}, fmt.Errorf("two letter code %q: not an ASCII letter", s)
		}
		t[i] = c
	}
	return t, nil
}

// MustTwoLetter is like ParseTwoLetter but panics on error.
func MustTwoLetter(s string) TwoLetter {
	t, err := ParseTwoLetter(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TwoLetter) IsZero() bool { return t == TwoLetter{} }

func (t TwoLetter) String() string {
	if t.IsZero() {
		return ""
	}
	return string(t[:])
}

// MarshalText returns the code; the zero value encodes as empty.
func (t TwoLetter) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TwoLetter) UnmarshalText(b []byte) error {
	parsed, err := ParseTwoLetter(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TwoLetter) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.String())), nil
}

func (t *TwoLetter) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("two letter code: expected string, got %s", b)
	}
	return t.UnmarshalText([]byte(s))
}
