// Package checkin binds the /checkin endpoints.
package checkin

import (
	"net/http"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	Checkin = trakt.NewEndpoint[Request, Response]("/checkin").
		Method(http.MethodPost).
		Auth(trakt.AuthRequired).
		Expect(http.StatusCreated).
		Describe("check into an item")
	Delete = trakt.NewEndpoint[DeleteRequest, DeleteResponse]("/checkin").
		Method(http.MethodDelete).
		Auth(trakt.AuthRequired).
		Expect(http.StatusNoContent).
		Describe("delete active check-in")
)

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("checkin", Checkin).Register("delete", Delete)
}

// Request checks into a movie or an episode; exactly one of them is set.
type Request struct {
	Movie      *media.Ref     `body:"movie,omitempty" validate:"required_without=Episode,excluded_with=Episode"`
	Episode    *media.Ref     `body:"episode,omitempty"`
	Sharing    *media.Sharing `body:"sharing,omitempty"`
	Message    string         `body:"message,omitempty"`
	AppVersion string         `body:"app_version,omitempty"`
	AppDate    *trakt.Date    `body:"app_date,omitempty"`
}

// Movie returns a Request checking into the movie id.
func Movie(id trakt.ID) Request {
	return Request{Movie: media.RefTo(id)}
}

// Episode returns a Request checking into the episode id.
func Episode(id trakt.ID) Request {
	return Request{Episode: media.RefTo(id)}
}

func (r Request) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Checkin.Build(ctx, r)
}

// Response has Movie set for movie check-ins, and Episode and Show otherwise.
type Response struct {
	ID        uint64          `json:"id"`
	WatchedAt trakt.Timestamp `json:"watched_at"`
	Sharing   *media.Sharing  `json:"sharing,omitempty"`
	Movie     *media.Movie    `json:"movie,omitempty"`
	Episode   *media.Episode  `json:"episode,omitempty"`
	Show      *media.Show     `json:"show,omitempty"`
}

func (r *Response) Parse(res *trakt.HTTPResponse) error {
	return Checkin.ParseInto(res, r)
}

type DeleteRequest struct{}

func (r DeleteRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Delete.Build(ctx, r)
}

type DeleteResponse struct{}

func (r *DeleteResponse) Parse(res *trakt.HTTPResponse) error {
	return Delete.ParseInto(res, r)
}
