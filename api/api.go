// Package api assembles every endpoint binding into a single registry.
package api

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/api/auth"
	"github.com/ansg191/trakt/api/calendars"
	"github.com/ansg191/trakt/api/certifications"
	"github.com/ansg191/trakt/api/checkin"
	"github.com/ansg191/trakt/api/comments"
	"github.com/ansg191/trakt/api/countries"
	"github.com/ansg191/trakt/api/genres"
	"github.com/ansg191/trakt/api/movies"
	"github.com/ansg191/trakt/api/scrobble"
	"github.com/ansg191/trakt/api/search"
	"github.com/ansg191/trakt/api/shows"
	"github.com/ansg191/trakt/api/users"
)

var services = []struct {
	name     string
	register func(*trakt.Service)
}{
	{"auth", auth.Register},
	{"calendars", calendars.Register},
	{"certifications", certifications.Register},
	{"checkin", checkin.Register},
	{"comments", comments.Register},
	{"countries", countries.Register},
	{"genres", genres.Register},
	{"movies", movies.Register},
	{"scrobble", scrobble.Register},
	{"search", search.Register},
	{"shows", shows.Register},
	{"users", users.Register},
}

// Registry returns a new registry holding every binding, one service per package.
func Registry() *trakt.Registry {
	reg := trakt.NewRegistry()
	for _, s := range services {
		s.register(reg.Service(s.name))
	}
	return reg
}
