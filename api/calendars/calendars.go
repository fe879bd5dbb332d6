// Package calendars binds the /calendars endpoints. The "my" calendars are
// limited to items the authenticated user watches or collects; the "all"
// calendars cover the whole catalogue.
package calendars

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	MyShows           = newCalendar[ShowsRequest, ShowsResponse]("my", "shows")
	MyNewShows        = newCalendar[NewShowsRequest, NewShowsResponse]("my", "shows/new")
	MySeasonPremieres = newCalendar[SeasonPremieresRequest, SeasonPremieresResponse]("my", "shows/premieres")
	MyFinales         = newCalendar[FinalesRequest, FinalesResponse]("my", "shows/finales")
	MyMovies          = newCalendar[MoviesRequest, MoviesResponse]("my", "movies")
	MyDVD             = newCalendar[DVDRequest, DVDResponse]("my", "dvd")

	AllShows           = newCalendar[AllShowsRequest, ShowsResponse]("all", "shows")
	AllNewShows        = newCalendar[AllNewShowsRequest, NewShowsResponse]("all", "shows/new")
	AllSeasonPremieres = newCalendar[AllSeasonPremieresRequest, SeasonPremieresResponse]("all", "shows/premieres")
	AllFinales         = newCalendar[AllFinalesRequest, FinalesResponse]("all", "shows/finales")
	AllMovies          = newCalendar[AllMoviesRequest, MoviesResponse]("all", "movies")
	AllDVD             = newCalendar[AllDVDRequest, DVDResponse]("all", "dvd")
)

func newCalendar[Req, Res any](scope, kind string) *trakt.Endpoint[Req, Res] {
	e := trakt.NewEndpoint[Req, Res]("/calendars/" + scope + "/" + kind + "/{start_date}/{days}").
		Describe(scope + " " + kind + " calendar")
	if scope == "my" {
		e.Auth(trakt.AuthRequired)
	}
	return e
}

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("my_shows", MyShows).
		Register("my_new_shows", MyNewShows).
		Register("my_season_premieres", MySeasonPremieres).
		Register("my_finales", MyFinales).
		Register("my_movies", MyMovies).
		Register("my_dvd", MyDVD).
		Register("all_shows", AllShows).
		Register("all_new_shows", AllNewShows).
		Register("all_season_premieres", AllSeasonPremieres).
		Register("all_finales", AllFinales).
		Register("all_movies", AllMovies).
		Register("all_dvd", AllDVD)
}

// Request selects Days days of calendar starting at StartDate.
type Request struct {
	StartDate trakt.Date         `path:"start_date" validate:"required"`
	Days      int                `path:"days" validate:"gte=1,lte=33"`
	Extended  trakt.ExtendedInfo `query:"extended,omitempty"`
}

type (
	ShowsRequest           Request
	NewShowsRequest        Request
	SeasonPremieresRequest Request
	FinalesRequest         Request
	MoviesRequest          Request
	DVDRequest             Request

	AllShowsRequest           Request
	AllNewShowsRequest        Request
	AllSeasonPremieresRequest Request
	AllFinalesRequest         Request
	AllMoviesRequest          Request
	AllDVDRequest             Request
)

func (r ShowsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return MyShows.Build(ctx, r)
}

func (r NewShowsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return MyNewShows.Build(ctx, r)
}

func (r SeasonPremieresRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return MySeasonPremieres.Build(ctx, r)
}

func (r FinalesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return MyFinales.Build(ctx, r)
}

func (r MoviesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return MyMovies.Build(ctx, r)
}

func (r DVDRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return MyDVD.Build(ctx, r)
}

func (r AllShowsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return AllShows.Build(ctx, r)
}

func (r AllNewShowsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return AllNewShows.Build(ctx, r)
}

func (r AllSeasonPremieresRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return AllSeasonPremieres.Build(ctx, r)
}

func (r AllFinalesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return AllFinales.Build(ctx, r)
}

func (r AllMoviesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return AllMovies.Build(ctx, r)
}

func (r AllDVDRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return AllDVD.Build(ctx, r)
}

// Show calendars list episodes; movie and DVD calendars list releases.
type (
	ShowsResponse           []media.EpisodeAirEvent
	NewShowsResponse        []media.EpisodeAirEvent
	SeasonPremieresResponse []media.EpisodeAirEvent
	FinalesResponse         []media.EpisodeAirEvent
	MoviesResponse          []media.MovieReleaseEvent
	DVDResponse             []media.MovieReleaseEvent
)

func (r *ShowsResponse) Parse(res *trakt.HTTPResponse) error {
	return MyShows.ParseInto(res, r)
}

func (r *NewShowsResponse) Parse(res *trakt.HTTPResponse) error {
	return MyNewShows.ParseInto(res, r)
}

func (r *SeasonPremieresResponse) Parse(res *trakt.HTTPResponse) error {
	return MySeasonPremieres.ParseInto(res, r)
}

func (r *FinalesResponse) Parse(res *trakt.HTTPResponse) error {
	return MyFinales.ParseInto(res, r)
}

func (r *MoviesResponse) Parse(res *trakt.HTTPResponse) error {
	return MyMovies.ParseInto(res, r)
}

func (r *DVDResponse) Parse(res *trakt.HTTPResponse) error {
	return MyDVD.ParseInto(res, r)
}
