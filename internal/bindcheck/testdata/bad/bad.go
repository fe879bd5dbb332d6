// Package bad holds endpoint definitions with binding mistakes. It compiles,
// but would panic at init.
package bad

import "github.com/ansg191/trakt"

type Response struct{}

type ThingRequest struct {
	ID    trakt.ID `path:"id"`
	Limit int      `query:"limit,omitempty"`
}

type NoTagRequest struct {
	ID   trakt.ID `path:"id"`
	Note string
}

type TwoTagsRequest struct {
	ID trakt.ID `path:"id" query:"id"`
}

var (
	Good        = trakt.NewEndpoint[ThingRequest, Response]("/things/{id}")
	Placeholder = trakt.NewEndpoint[ThingRequest, Response]("/things/{id}/{kind}")
	Extra       = trakt.NewEndpoint[ThingRequest, Response]("/things")
	Syntax      = trakt.NewEndpoint[ThingRequest, Response]("/things/{id")
	NoTag       = trakt.NewEndpoint[NoTagRequest, Response]("/things/{id}")
	TwoTags     = trakt.NewEndpoint[TwoTagsRequest, Response]("/things/{id}")
)

func dynamic(prefix string) *trakt.Endpoint[ThingRequest, Response] {
	return trakt.NewEndpoint[ThingRequest, Response](prefix + "/{id}")
}
