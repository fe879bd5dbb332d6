// Package urltmpl parses endpoint URL templates such as "/movies/{id}/releases/{country}"
// and expands them into escaped request paths.
//
// The template language has a single construct: a {name} placeholder. There are no
// defaults, operators or nested braces.
package urltmpl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingParam is returned by Expand when a placeholder has no value.
var ErrMissingParam = errors.New("missing path parameter")

// SyntaxError describes a malformed template.
type SyntaxError struct {
	Template string
	Offset   int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid endpoint %q at offset %d: %s", e.Template, e.Offset, e.Msg)
}

// part is either a literal run of the template or a placeholder.
type part struct {
	literal string
	param   string
}

// Template is a parsed URL template. It is immutable and safe for concurrent use.
type Template struct {
	raw    string
	parts  []part
	params []string
}

// Parse parses a template.
func Parse(template string) (*Template, error) {
	t := &Template{raw: template}
	seen := make(map[string]bool)

	var lit strings.Builder
	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '{':
			end := -1
			for j := i + 1; j < len(template); j++ {
				if template[j] == '{' {
					return nil, &SyntaxError{template, j, "nested '{' in placeholder"}
				}
				if template[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, &SyntaxError{template, i, "unterminated placeholder"}
			}
			name := template[i+1 : end]
			if name == "" {
				return nil, &SyntaxError{template, i, "empty placeholder name"}
			}
			if seen[name] {
				return nil, &SyntaxError{template, i, fmt.Sprintf("duplicate placeholder %q", name)}
			}
			seen[name] = true
			if lit.Len() > 0 {
				t.parts = append(t.parts, part{literal: lit.String()})
				lit.Reset()
			}
			t.parts = append(t.parts, part{param: name})
			t.params = append(t.params, name)
			i = end
		case '}':
			return nil, &SyntaxError{template, i, "unmatched '}'"}
		default:
			lit.WriteByte(c)
		}
	}
	if lit.Len() > 0 {
		t.parts = append(t.parts, part{literal: lit.String()})
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the raw template.
func (t *Template) String() string { return t.raw }

// Params returns the placeholder names in template order.
func (t *Template) Params() []string {
	return append([]string(nil), t.params...)
}

// Expand substitutes every placeholder with the escaped form of its value.
// Values are raw (unescaped) strings.
func (t *Template) Expand(values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(t.raw) + 16)
	for _, p := range t.parts {
		if p.param == "" {
			b.WriteString(p.literal)
			continue
		}
		v, ok := values[p.param]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, p.param)
		}
		b.WriteString(EscapeSegment(v))
	}
	return b.String(), nil
}

// Match is the inverse of Expand. It returns the unescaped placeholder values of path,
// or false if path does not fit the template.
func (t *Template) Match(path string) (map[string]string, bool) {
	values := make(map[string]string, len(t.params))
	rest := path
	for i, p := range t.parts {
		if p.param == "" {
			if !strings.HasPrefix(rest, p.literal) {
				return nil, false
			}
			rest = rest[len(p.literal):]
			continue
		}
		// A placeholder runs up to the next literal, or to the end of the segment.
		end := strings.IndexByte(rest, '/')
		if i+1 < len(t.parts) {
			next := t.parts[i+1].literal
			end = strings.Index(rest, next)
		}
		if end < 0 {
			end = len(rest)
		}
		raw, err := url.PathUnescape(rest[:end])
		if err != nil {
			return nil, false
		}
		values[p.param] = raw
		rest = rest[end:]
	}
	if rest != "" {
		return nil, false
	}
	return values, true
}

// EscapeSegment percent-encodes s for use inside a single path segment.
//
// The set matches what the API accepts in path segments: controls, non-ASCII bytes and
// the characters ` "#%/<>?`{}` are escaped. Commas are kept so that flag lists such as
// "movie,show" stay readable.
func EscapeSegment(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	const hex = "0123456789ABCDEF"
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			buf = append(buf, '%', hex[c>>4], hex[c&15])
		} else {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

func shouldEscape(c byte) bool {
	if c < 0x20 || c >= 0x7f {
		return true
	}
	switch c {
	case ' ', '"', '#', '%', '/', '<', '>', '?', '`', '{', '}':
		return true
	}
	return false
}

// Pair is a single query parameter.
type Pair struct {
	Key   string
	Value string
}

// Build joins base, the expanded template and the query pairs into an absolute URL.
// Pairs are emitted in the given order.
func Build(base string, t *Template, path map[string]string, query []Pair) (string, error) {
	p, err := t.Expand(path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(p)
	for i, q := range query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Value))
	}
	return b.String(), nil
}
