// Package genres binds /genres/{type}.
package genres

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var List = trakt.NewEndpoint[ListRequest, ListResponse]("/genres/{type}").Describe("genres")

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("list", List)
}

type ListRequest struct {
	Type media.MediaType `path:"type" validate:"oneof=movies shows"`
}

func (r ListRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return List.Build(ctx, r)
}

type Genre struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ListResponse []Genre

func (r *ListResponse) Parse(res *trakt.HTTPResponse) error {
	return List.ParseInto(res, r)
}
