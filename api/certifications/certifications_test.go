package certifications

import (
	"net/http"
	"testing"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
	"github.com/ansg191/trakt/trakttest"
)

func TestList(t *testing.T) {
	req, err := ListRequest{Type: media.Movies}.Build(trakttest.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trakttest.AssertURL(t, req, "https://api.trakt.tv/certifications/movies")

	body := `{"us": [
		{"name": "G", "slug": "g", "description": "All Ages"},
		{"name": "PG", "slug": "pg", "description": "Parental Guidance Suggested"}
	]}`
	var res ListResponse
	if err := res.Parse(trakttest.NewResponse(http.StatusOK).WithBody(body).Build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	us := res.For(media.MustTwoLetter("US"))
	if len(us) != 2 || us[1].Slug != "pg" {
		t.Errorf("unexpected certifications %+v", us)
	}
	if res.For(media.MustTwoLetter("gb")) != nil {
		t.Error("expected no certifications for gb")
	}
}

func TestListType(t *testing.T) {
	_, err := ListRequest{Type: "people"}.Build(trakttest.Context())
	be := trakttest.AssertBuildError(t, err, trakt.BuildInvalid)
	if be.Param != "type" {
		t.Errorf("expected param 'type', got %q", be.Param)
	}
}
