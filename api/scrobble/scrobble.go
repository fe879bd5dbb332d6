// Package scrobble binds the /scrobble endpoints, which report playback of a
// movie or episode as it starts, pauses and stops.
package scrobble

import (
	"net/http"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	Start = newScrobble[StartRequest, StartResponse]("start")
	Pause = newScrobble[PauseRequest, PauseResponse]("pause")
	Stop  = newScrobble[StopRequest, StopResponse]("stop")
)

func newScrobble[Req, Res any](action string) *trakt.Endpoint[Req, Res] {
	return trakt.NewEndpoint[Req, Res]("/scrobble/"+action).
		Method(http.MethodPost).
		Auth(trakt.AuthRequired).
		Expect(http.StatusCreated).
		Describe(action + " scrobble")
}

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("start", Start).Register("pause", Pause).Register("stop", Stop)
}

// Request reports playback of exactly one of a movie or an episode.
// Progress is a percentage.
type Request struct {
	Movie    *media.Ref `body:"movie,omitempty" validate:"required_without=Episode,excluded_with=Episode"`
	Episode  *media.Ref `body:"episode,omitempty"`
	Progress float64    `body:"progress" validate:"gte=0,lte=100"`
}

// Movie returns a Request for the movie id at progress percent.
func Movie(id trakt.ID, progress float64) Request {
	return Request{Movie: media.RefTo(id), Progress: progress}
}

// Episode returns a Request for the episode id at progress percent.
func Episode(id trakt.ID, progress float64) Request {
	return Request{Episode: media.RefTo(id), Progress: progress}
}

type (
	StartRequest Request
	PauseRequest Request
	StopRequest  Request
)

func (r StartRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) { return Start.Build(ctx, r) }
func (r PauseRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) { return Pause.Build(ctx, r) }
func (r StopRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) { return Stop.Build(ctx, r) }

type Action string

const (
	ActionStart    Action = "start"
	ActionPause    Action = "pause"
	ActionScrobble Action = "scrobble"
)

// Response echoes the playback state. Stop answers with ActionScrobble when
// progress was past 80% and the item was added to the history.
type Response struct {
	ID       uint64         `json:"id"`
	Action   Action         `json:"action"`
	Progress float64        `json:"progress"`
	Sharing  *media.Sharing `json:"sharing,omitempty"`
	Movie    *media.Movie   `json:"movie,omitempty"`
	Episode  *media.Episode `json:"episode,omitempty"`
	Show     *media.Show    `json:"show,omitempty"`
}

type (
	StartResponse Response
	PauseResponse Response
	StopResponse  Response
)

func (r *StartResponse) Parse(res *trakt.HTTPResponse) error { return Start.ParseInto(res, r) }
func (r *PauseResponse) Parse(res *trakt.HTTPResponse) error { return Pause.ParseInto(res, r) }
func (r *StopResponse) Parse(res *trakt.HTTPResponse) error { return Stop.ParseInto(res, r) }
