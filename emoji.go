package trakt

import (
	"errors"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/rivo/uniseg"
)

// EmojiString is user-authored text such as comments and list descriptions.
// Its length and truncation operate on grapheme clusters, so a flag or a
// skin-toned emoji counts as one character.
type EmojiString string

// Len returns the number of grapheme clusters in s.
func (s EmojiString) Len() int {
	return uniseg.GraphemeClusterCount(string(s))
}

// Graphemes returns the grapheme clusters of s in order.
func (s EmojiString) Graphemes() []string {
	var out []string
	g := uniseg.NewGraphemes(string(s))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Truncate returns the first n grapheme clusters of s.
func (s EmojiString) Truncate(n int) EmojiString {
	if n <= 0 {
		return ""
	}
	str := string(s)
	end, count := 0, 0
	state := -1
	var cluster string
	for len(str) > 0 && count < n {
		cluster, str, _, state = uniseg.FirstGraphemeClusterInString(str, state)
		end += len(cluster)
		count++
	}
	return s[:end]
}

// Words returns the number of Unicode words in s.
func (s EmojiString) Words() int {
	return CountWords(string(s))
}

func (s EmojiString) String() string { return string(s) }

// UnmarshalJSON rejects strings whose escapes or raw bytes are not valid UTF-8
// instead of substituting U+FFFD.
func (s *EmojiString) UnmarshalJSON(b []byte) error {
	if !utf8.Valid(b) {
		return errors.New("emoji string: invalid UTF-8")
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if !utf8.ValidString(str) {
		return errors.New("emoji string: invalid UTF-8")
	}
	*s = EmojiString(str)
	return nil
}
