// Package search binds the text query and id lookup endpoints.
package search

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/internal/flagset"
	"github.com/ansg191/trakt/media"
)

var (
	Text   = trakt.NewEndpoint[TextRequest, TextResponse]("/search/{type}").Describe("text query")
	Lookup = trakt.NewEndpoint[LookupRequest, LookupResponse]("/search/{id_type}/{id}").Describe("id lookup")
)

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("text", Text).Register("lookup", Lookup)
}

// Type is a set of result types. It encodes as a comma-separated list.
type Type uint8

const (
	Movie Type = 1 << iota
	Show
	Episode
	Person
	List
)

var typeNames = flagset.Names{"movie", "show", "episode", "person", "list"}

func (t Type) Has(flag Type) bool { return t&flag == flag }

func (t Type) String() string { return typeNames.Format(uint64(t)) }

func (t Type) IsZero() bool { return t == 0 }

func (t Type) MarshalText() ([]byte, error) {
	if uint64(t)&^typeNames.Mask() != 0 {
		return nil, fmt.Errorf("invalid search type %#x", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	set, err := typeNames.Parse(string(b))
	if err != nil {
		return fmt.Errorf("search type: %w", err)
	}
	*t = Type(set)
	return nil
}

// TextRequest searches titles and descriptions for Query among the types in Type.
type TextRequest struct {
	Type  Type   `path:"type"`
	Query string `query:"query" validate:"required"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r TextRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Text.Build(ctx, r)
}

// Result is a matched item with its relevance score. Lookups have no score.
type Result struct {
	media.Item
	Score *float64 `json:"score,omitempty"`
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var item media.Item
	if err := item.UnmarshalJSON(b); err != nil {
		return err
	}
	var rest struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal(b, &rest); err != nil {
		return err
	}
	r.Item = item
	r.Score = rest.Score
	return nil
}

type TextResponse struct {
	Items trakt.Page[Result] `trakt:"pagination"`
}

func (r *TextResponse) Parse(res *trakt.HTTPResponse) error {
	return Text.ParseInto(res, r)
}

// IDType is the namespace segment of a lookup path. Slugs cannot be looked up.
type IDType string

const (
	IDTrakt IDType = "trakt"
	IDIMDB  IDType = "imdb"
	IDTMDB  IDType = "tmdb"
	IDTVDB  IDType = "tvdb"
)

// LookupRequest finds the items with the given id. Type narrows the result
// when an id is shared across namespaces, such as TMDB ids.
type LookupRequest struct {
	IDType IDType `path:"id_type" validate:"oneof=trakt imdb tmdb tvdb"`
	ID     string `path:"id"`
	Type   Type   `query:"type,omitempty"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

// NewLookup returns a LookupRequest for id. A slug id yields a request that
// fails to build with BuildInvalid.
func NewLookup(id trakt.ID, typ Type) LookupRequest {
	return LookupRequest{
		IDType: IDType(id.Kind().String()),
		ID:     id.String(),
		Type:   typ,
	}
}

func (r LookupRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Lookup.Build(ctx, r)
}

type LookupResponse struct {
	Items trakt.Page[Result] `trakt:"pagination"`
}

func (r *LookupResponse) Parse(res *trakt.HTTPResponse) error {
	return Lookup.ParseInto(res, r)
}
