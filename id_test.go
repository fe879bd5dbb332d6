package trakt

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestIDJSONRoundTrip(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{TraktID(1), `{"trakt":1}`},
		{SlugID("the-shawshank-redemption-1994"), `{"slug":"the-shawshank-redemption-1994"}`},
		{IMDBID("tt0111161"), `{"imdb":"tt0111161"}`},
		{TMDBID(278), `{"tmdb":278}`},
		{TVDBID(81189), `{"tvdb":81189}`},
	}
	for _, tt := range tests {
		t.Run(tt.id.Kind().String(), func(t *testing.T) {
			b, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
			var got ID
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.id {
				t.Errorf("expected %#v, got %#v", tt.id, got)
			}
		})
	}
}

func TestIDUnmarshalJSONErrors(t *testing.T) {
	for _, in := range []string{`{}`, `{"trakt":1,"slug":"x"}`, `{"tvrage":1}`, `{"trakt":"1"}`, `[1]`} {
		var id ID
		if err := json.Unmarshal([]byte(in), &id); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestIDMarshalJSONZero(t *testing.T) {
	if _, err := json.Marshal(ID{}); err == nil {
		t.Error("expected error encoding zero id")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{"12601", TraktID(12601)},
		{"tt0111161", IMDBID("tt0111161")},
		{"tron-legacy-2010", SlugID("tron-legacy-2010")},
		{"tt", SlugID("tt")},
		{"ttx1", SlugID("ttx1")},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseID(""); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestIDText(t *testing.T) {
	for _, id := range []ID{TraktID(1), SlugID("tron"), IMDBID("tt0111161")} {
		b, err := id.MarshalText()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got ID
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != id {
			t.Errorf("expected %#v, got %#v", id, got)
		}
	}
	if b, err := (ID{}).MarshalText(); err != nil || len(b) != 0 {
		t.Errorf("expected empty text for zero id, got %q, %v", b, err)
	}
}

func TestIDsPreferred(t *testing.T) {
	ids := IDs{Slug: "tron", IMDB: "tt1104001", TMDB: 20526}
	id, ok := ids.Preferred()
	if !ok || id != SlugID("tron") {
		t.Errorf("expected slug id, got %#v, %v", id, ok)
	}
	if _, ok := (IDs{}).Preferred(); ok {
		t.Error("expected no preferred id for empty IDs")
	}
	if got := TMDBID(20526).IDs(); got != (IDs{TMDB: 20526}) {
		t.Errorf("unexpected IDs %+v", got)
	}
}

func TestIDKindText(t *testing.T) {
	var k IDKind
	if err := k.UnmarshalText([]byte("imdb")); err != nil || k != KindIMDB {
		t.Errorf("expected imdb, got %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("tvrage")); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := IDKind(0).MarshalText(); err == nil {
		t.Error("expected error for zero kind")
	}
}
