package media

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/internal/required"
)

func TestTwoLetter(t *testing.T) {
	c, err := ParseTwoLetter("US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.String() != "us" {
		t.Errorf("expected lower case code, got %q", c)
	}
	for _, bad := range []string{"", "u", "usa", "u1", "ü"} {
		if _, err := ParseTwoLetter(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}

	var s Studio
	if err := json.Unmarshal([]byte(`{"name":"Castle Rock","country":"US","ids":{"trakt":1}}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Country != MustTwoLetter("us") {
		t.Errorf("unexpected country %q", s.Country)
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"country":"us"`) {
		t.Errorf("expected lower case country, got %s", out)
	}
	if err := json.Unmarshal([]byte(`{"country":"USA"}`), &s); err == nil {
		t.Error("expected error for three letter country")
	}
}

func TestDistribution(t *testing.T) {
	var fromMap, fromArray Distribution
	if err := json.Unmarshal([]byte(`{"1":1,"2":0,"3":2,"4":0,"5":0,"6":0,"7":0,"8":0,"9":0,"10":7}`), &fromMap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(`[1,0,2,0,0,0,0,0,0,7]`), &fromArray); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromMap != fromArray {
		t.Errorf("expected equal distributions, got %v and %v", fromMap, fromArray)
	}
	if fromMap[9] != 7 || fromMap.Total() != 10 {
		t.Errorf("unexpected distribution %v", fromMap)
	}

	out, err := json.Marshal(fromMap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var again Distribution
	if err := json.Unmarshal(out, &again); err != nil || again != fromMap {
		t.Errorf("expected %v to survive encoding, got %v, %v", fromMap, again, err)
	}

	for _, bad := range []string{`{"11":1}`, `{"0":1}`, `[1,2,3,4,5,6,7,8,9,10,11]`, `"x"`} {
		var d Distribution
		if err := json.Unmarshal([]byte(bad), &d); err == nil {
			t.Errorf("expected error for %s", bad)
		}
	}
}

func TestItem(t *testing.T) {
	var it Item
	if err := json.Unmarshal([]byte(`{"type":"movie","movie":{"title":"Tron","year":2010,"ids":{"slug":"tron"}}}`), &it); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Type != ItemMovie || it.Movie == nil || it.Movie.Title != "Tron" {
		t.Errorf("unexpected item %+v", it)
	}

	for _, bad := range []string{
		`{"type":"movie","show":{"title":"x","year":1,"ids":{}}}`,
		`{"type":"podcast"}`,
	} {
		if err := json.Unmarshal([]byte(bad), &it); err == nil {
			t.Errorf("expected error for %s", bad)
		}
	}
}

func TestItemRequiredFields(t *testing.T) {
	tests := []struct {
		body string
		path string
	}{
		{`{"type":"movie","movie":{"year":2010,"ids":{}}}`, "movie.title"},
		{`{"type":"show","show":{"Title":"x","year":null,"ids":{}}}`, "show.year"},
		{`{"type":"person","person":{"name":"x"}}`, "person.ids"},
		{`{"movie":{"title":"x","year":1,"ids":{}}}`, "type"},
	}
	for _, tt := range tests {
		var it Item
		err := it.UnmarshalJSON([]byte(tt.body))
		var missing *required.MissingError
		if !errors.As(err, &missing) {
			t.Errorf("%s: expected *required.MissingError, got %v", tt.body, err)
			continue
		}
		if missing.Path != tt.path {
			t.Errorf("%s: expected path %q, got %q", tt.body, tt.path, missing.Path)
		}
	}
}

func TestCommentWithItem(t *testing.T) {
	body := `{
		"type": "show",
		"show": {"title": "Breaking Bad", "year": 2008, "ids": {"trakt": 1388}},
		"comment": {
			"id": 8, "parent_id": null,
			"created_at": "2014-08-04T06:46:01.000Z", "updated_at": "2014-08-04T06:46:01.000Z",
			"comment": "Great show! 🔥 Best ending ever.", "spoiler": false, "review": false,
			"replies": 1, "likes": 2,
			"user_stats": {"rating": 10, "play_count": 1, "completed_count": 1},
			"user": {"username": "sean", "private": false, "name": "Sean", "vip": true, "vip_ep": false, "ids": {"slug": "sean"}}
		}
	}`
	var c CommentWithItem
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Type != ItemShow || c.Show == nil || c.Show.IDs.Trakt != 1388 {
		t.Errorf("unexpected item %+v", c.Item)
	}
	if c.Comment.Comment.Words() != 5 {
		t.Errorf("expected 5 words, got %d", c.Comment.Comment.Words())
	}
	want := trakt.Timestamp{}
	if c.Comment.CreatedAt == want {
		t.Error("expected created_at to be set")
	}
	if c.Comment.ParentID != nil {
		t.Error("expected nil parent id")
	}

	if err := json.Unmarshal([]byte(`{"type":"show","show":{"title":"x","year":1,"ids":{}}}`), &c); err == nil {
		t.Error("expected error for missing comment")
	}

	partial := `{"type":"show","show":{"title":"x","year":1,"ids":{}},"comment":{"id":8,"comment":"x"}}`
	err := c.UnmarshalJSON([]byte(partial))
	var missing *required.MissingError
	if !errors.As(err, &missing) || missing.Path != "created_at" {
		t.Errorf("expected missing created_at, got %v", err)
	}
}
