// Package countries binds /countries/{type}.
package countries

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var List = trakt.NewEndpoint[ListRequest, ListResponse]("/countries/{type}").Describe("countries")

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

type Country struct {
	Name string        `json:"name"`
	Code media.Country `json:"code"`
}

type ListResponse []Country

func (r *ListResponse) Parse(res *trakt.HTTPResponse) error {
	return List.ParseInto(res, r)
}
