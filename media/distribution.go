package media

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Distribution counts the votes for each rating from 1 to 10; index 0 holds rating 1.
type Distribution [10]uint32

// MarshalJSON encodes d as the API does, an object keyed "1" to "10".
func (d Distribution) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, n := range d {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `"%d":%d`, i+1, n)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON accepts the object form or an array of up to ten counts.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("distribution: empty input")
	}
	var out Distribution
	switch data[0] {
	case '[':
		var counts []uint32
		if err := json.Unmarshal(data, &counts); err != nil {
			return fmt.Errorf("distribution: %w", err)
		}
		if len(counts) > len(out) {
			return fmt.Errorf("distribution: %d entries, want at most 10", len(counts))
		}
		copy(out[:], counts)
	case '{':
		var m map[string]uint32
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("distribution: %w", err)
		}
		for k, v := range m {
			n, err := strconv.Atoi(k)
			if err != nil || n < 1 || n > 10 {
				return fmt.Errorf("distribution: unknown rating %q", k)
			}
			out[n-1] = v
		}
	case 'n':
		if bytes.Equal(data, []byte("null")) {
			return nil
		}
		fallthrough
	default:
		return fmt.Errorf("distribution: unexpected %s", data)
	}
	*d = out
	return nil
}

// Total returns the number of votes.
func (d Distribution) Total() uint64 {
	var total uint64
	for _, n := range d {
		total += uint64(n)
	}
	return total
}
