// Package flagset encodes bit sets as comma-separated name lists.
package flagset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Names maps bit i to Names[i]. Order is the encoding order.
type Names []string

// Format joins the names of the set bits in declaration order.
// Bits without a name are ignored.
func (n Names) Format(set uint64) string {
	if set == 0 {
		return ""
	}
	parts := make([]string, 0, bits.OnesCount64(set))
	for i, name := range n {
		if set&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}

// Parse is the inverse of Format. The empty string is the empty set.
// Unknown or empty tokens are errors; duplicates are accepted.
func (n Names) Parse(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	var set uint64
	for _, tok := range strings.Split(s, ",") {
		bit := n.index(tok)
		if bit < 0 {
			return 0, fmt.Errorf("unknown flag %q", tok)
		}
		set |= 1 << uint(bit)
	}
	return set, nil
}

// Mask returns the set with every named bit.
func (n Names) Mask() uint64 {
	return 1<<uint(len(n)) - 1
}

func (n Names) index(tok string) int {
	for i, name := range n {
		if name == tok {
			return i
		}
	}
	return -1
}
