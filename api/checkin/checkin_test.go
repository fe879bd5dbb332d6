package checkin

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
	"github.com/ansg191/trakt/trakttest"
)

func TestCheckinBody(t *testing.T) {
	req := Movie(trakt.TraktID(28))
	req.Message = "Watching now"
	req.Sharing = &media.Sharing{Mastodon: true}

	hr, err := req.Build(trakttest.Context().WithToken("tok"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hr.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", hr.Method)
	}
	trakttest.AssertURL(t, hr, "https://api.trakt.tv/checkin")
	trakttest.AssertHeader(t, hr, "Authorization", "Bearer tok")
	want := `{"movie":{"ids":{"trakt":28}},"sharing":{"twitter":false,"mastodon":true,"tumblr":false},"message":"Watching now"}`
	if string(hr.Body) != want {
		t.Errorf("expected body %s, got %s", want, hr.Body)
	}
}

func TestCheckinRequiresToken(t *testing.T) {
	_, err := Movie(trakt.TraktID(28)).Build(trakttest.Context())
	trakttest.AssertBuildError(t, err, trakt.BuildMissingToken)
}

func TestCheckinExactlyOneTarget(t *testing.T) {
	ctx := trakttest.Context().WithToken("tok")

	_, err := Request{}.Build(ctx)
	be := trakttest.AssertBuildError(t, err, trakt.BuildInvalid)
	if be.Param != "movie" {
		t.Errorf("expected param 'movie', got %q", be.Param)
	}

	both := Movie(trakt.TraktID(1))
	both.Episode = media.RefTo(trakt.TraktID(2))
	_, err = both.Build(ctx)
	trakttest.AssertBuildError(t, err, trakt.BuildInvalid)
}

func TestCheckinEpisodeResponse(t *testing.T) {
	body := `{
		"id": 3373536620,
		"watched_at": "2014-08-06T06:54:36.859Z",
		"sharing": {"twitter": true, "mastodon": false, "tumblr": false},
		"episode": {"season": 1, "number": 1, "title": "Winter Is Coming", "ids": {"trakt": 73640}},
		"show": {"title": "Game of Thrones", "year": 2011, "ids": {"trakt": 1390}}
	}`
	var res Response
	if err := res.Parse(trakttest.NewResponse(http.StatusCreated).WithBody(body).Build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Movie != nil {
		t.Errorf("expected no movie, got %+v", res.Movie)
	}
	if res.Episode == nil || res.Episode.Title != "Winter Is Coming" {
		t.Errorf("unexpected episode %+v", res.Episode)
	}
	if res.Show == nil || res.Show.Year != 2011 {
		t.Errorf("unexpected show %+v", res.Show)
	}
	if res.WatchedAt.Nanosecond() != 859_000_000 {
		t.Errorf("expected millisecond precision, got %v", res.WatchedAt)
	}
}

func TestCheckinConflict(t *testing.T) {
	var res Response
	err := res.Parse(trakttest.NewResponse(http.StatusConflict).WithBody(`{"expires_at":"2014-10-15T22:21:29.000Z"}`).Build())
	if !trakt.IsStatus(err, http.StatusConflict) {
		t.Errorf("expected 409 status error, got %v", err)
	}
}

func TestCheckinRoundTrip(t *testing.T) {
	fake := trakttest.NewFake()
	trakttest.Handle(fake, Checkin, func(_ context.Context, req Request) (Response, error) {
		if req.Movie == nil {
			t.Errorf("expected movie in decoded request")
			return Response{}, nil
		}
		return Response{
			ID:        1,
			WatchedAt: trakt.Timestamp{Time: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)},
			Movie:     &media.Movie{Title: "Tron", Year: 1982, IDs: req.Movie.IDs},
		}, nil
	})
	trakttest.Handle(fake, Delete, func(context.Context, DeleteRequest) (DeleteResponse, error) {
		return DeleteResponse{}, nil
	})

	ctx := trakttest.Context().WithToken("tok")
	hr, err := Movie(trakt.TraktID(12)).Build(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := fake.Send(context.Background(), hr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res Response
	if err := res.Parse(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Movie == nil || res.Movie.IDs.Trakt != 12 {
		t.Errorf("unexpected movie %+v", res.Movie)
	}

	hr, err = DeleteRequest{}.Build(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err = fake.Send(context.Background(), hr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", raw.StatusCode)
	}
	if n := len(fake.Requests()); n != 2 {
		t.Errorf("expected 2 recorded requests, got %d", n)
	}
}
