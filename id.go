package trakt

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// IDKind names the namespace of an ID.
type IDKind uint8

const (
	KindTrakt IDKind = iota + 1
	KindSlug
	KindIMDB
	KindTMDB
	KindTVDB
)

var idKindNames = [...]string{
	KindTrakt: "trakt",
	KindSlug:  "slug",
	KindIMDB:  "imdb",
	KindTMDB:  "tmdb",
	KindTVDB:  "tvdb",
}

func (k IDKind) String() string {
	if k == 0 || int(k) >= len(idKindNames) {
		return "unknown"
	}
	return idKindNames[k]
}

// MarshalText encodes k as its lower case name, the form used in lookup paths.
func (k IDKind) MarshalText() ([]byte, error) {
	if k == 0 || int(k) >= len(idKindNames) {
		return nil, fmt.Errorf("invalid id kind %d", k)
	}
	return []byte(idKindNames[k]), nil
}

func (k *IDKind) UnmarshalText(b []byte) error {
	kind, ok := parseIDKind(string(b))
	if !ok {
		return fmt.Errorf("unknown id kind %q", b)
	}
	*k = kind
	return nil
}

func parseIDKind(s string) (IDKind, bool) {
	for i, name := range idKindNames {
		if i != 0 && name == s {
			return IDKind(i), true
		}
	}
	return 0, false
}

// ID identifies a catalogue entity in exactly one namespace.
// The zero ID is invalid in paths and request bodies.
type ID struct {
	kind IDKind
	num  uint64
	str  string
}

func TraktID(id uint64) ID { return ID{kind: KindTrakt, num: id} }
func SlugID(slug string) ID { return ID{kind: KindSlug, str: slug} }
func IMDBID(id string) ID   { return ID{kind: KindIMDB, str: id} }
func TMDBID(id uint64) ID   { return ID{kind: KindTMDB, num: id} }
func TVDBID(id uint64) ID   { return ID{kind: KindTVDB, num: id} }

// ParseID classifies a path value: all digits is a Trakt id, "tt" followed by
// digits is an IMDB id, anything else is a slug.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, errors.New("empty id")
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return TraktID(n), nil
	}
	if rest, ok := strings.CutPrefix(s, "tt"); ok && rest != "" && isDigits(rest) {
		return IMDBID(s), nil
	}
	return SlugID(s), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (id ID) Kind() IDKind { return id.kind }

func (id ID) IsZero() bool { return id.kind == 0 }

// String returns the raw value, as used in a URL path.
func (id ID) String() string {
	switch id.kind {
	case KindTrakt, KindTMDB, KindTVDB:
		return strconv.FormatUint(id.num, 10)
	default:
		return id.str
	}
}

// Number returns the numeric value of a Trakt, TMDB or TVDB id.
func (id ID) Number() (uint64, bool) {
	switch id.kind {
	case KindTrakt, KindTMDB, KindTVDB:
		return id.num, true
	}
	return 0, false
}

// MarshalText returns the path form. A zero ID yields an empty value so the
// path builder reports the placeholder as missing.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, nil
	}
	if id.kind != KindTrakt && id.kind != KindTMDB && id.kind != KindTVDB && id.str == "" {
		return nil, fmt.Errorf("empty %s id", id.kind)
	}
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes id as a single-key object such as {"imdb":"tt0111161"}.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return nil, errors.New("cannot encode zero id")
	}
	var b bytes.Buffer
	b.WriteString(`{"`)
	b.WriteString(id.kind.String())
	b.WriteString(`":`)
	switch id.kind {
	case KindTrakt, KindTMDB, KindTVDB:
		b.WriteString(strconv.FormatUint(id.num, 10))
	default:
		v, err := json.Marshal(id.str)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	if len(m) != 1 {
		return fmt.Errorf("decode id: expected exactly one key, got %d", len(m))
	}
	for key, raw := range m {
		kind, ok := parseIDKind(key)
		if !ok {
			return fmt.Errorf("decode id: unknown kind %q", key)
		}
		parsed := ID{kind: kind}
		var err error
		switch kind {
		case KindTrakt, KindTMDB, KindTVDB:
			err = json.Unmarshal(raw, &parsed.num)
		default:
			err = json.Unmarshal(raw, &parsed.str)
		}
		if err != nil {
			return fmt.Errorf("decode %s id: %w", kind, err)
		}
		*id = parsed
	}
	return nil
}

// IDs returns the IDs object with only id's namespace set.
func (id ID) IDs() IDs {
	var ids IDs
	switch id.kind {
	case KindTrakt:
		ids.Trakt = id.num
	case KindSlug:
		ids.Slug = id.str
	case KindIMDB:
		ids.IMDB = id.str
	case KindTMDB:
		ids.TMDB = id.num
	case KindTVDB:
		ids.TVDB = id.num
	}
	return ids
}

// IDs is the identifier object the API attaches to every catalogue entity.
type IDs struct {
	Trakt uint64 `json:"trakt,omitempty"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  uint64 `json:"tmdb,omitempty"`
	TVDB  uint64 `json:"tvdb,omitempty"`
}

// Preferred returns the most specific id present, in the order
// trakt, slug, imdb, tmdb, tvdb. It reports false when ids is empty.
func (ids IDs) Preferred() (ID, bool) {
	switch {
	case ids.Trakt != 0:
		return TraktID(ids.Trakt), true
	case ids.Slug != "":
		return SlugID(ids.Slug), true
	case ids.IMDB != "":
		return IMDBID(ids.IMDB), true
	case ids.TMDB != 0:
		return TMDBID(ids.TMDB), true
	case ids.TVDB != 0:
		return TVDBID(ids.TVDB), true
	}
	return ID{}, false
}
