package api

import (
	"net/http"
	"slices"
	"testing"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/internal/urltmpl"
)

func TestRegistry(t *testing.T) {
	reg := Registry()
	entries := reg.Endpoints()
	if len(entries) != 73 {
		t.Errorf("expected 73 endpoints, got %d", len(entries))
	}

	wantServices := []string{"auth", "calendars", "certifications", "checkin", "comments", "countries",
		"genres", "movies", "scrobble", "search", "shows", "users"}
	if got := reg.Services(); !slices.Equal(got, wantServices) {
		t.Errorf("expected services %v, got %v", wantServices, got)
	}

	e, ok := reg.Lookup("movies", "summary")
	if !ok {
		t.Fatal("expected movies.summary to be registered")
	}
	if e.Info().Metadata.Endpoint != "/movies/{id}" {
		t.Errorf("unexpected template %q", e.Info().Metadata.Endpoint)
	}
}

func TestPathFieldsMatchTemplates(t *testing.T) {
	for _, e := range Registry().Endpoints() {
		tmpl := urltmpl.MustParse(e.Info.Metadata.Endpoint)
		var names []string
		for _, f := range e.Info.Path {
			names = append(names, f.Name)
		}
		params := tmpl.Params()
		slices.Sort(names)
		slices.Sort(params)
		if !slices.Equal(names, params) {
			t.Errorf("%s: path fields %v do not match placeholders %v", e.Key(), names, params)
		}
	}
}

func TestWritesRequireToken(t *testing.T) {
	for _, e := range Registry().Endpoints() {
		m := e.Info.Metadata
		if m.Method == http.MethodGet || e.Service == "auth" {
			continue
		}
		if m.Auth != trakt.AuthRequired {
			t.Errorf("%s: %s %s has auth %s", e.Key(), m.Method, m.Endpoint, m.Auth)
		}
	}
}
