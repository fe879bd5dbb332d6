// Package certifications binds /certifications/{type}.
package certifications

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var List = trakt.NewEndpoint[ListRequest, ListResponse]("/certifications/{type}").Describe("content certifications")

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

type Certification struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ListResponse maps lower case country codes to that country's certifications.
type ListResponse map[string][]Certification

// For returns the certifications of country, or nil if it has none.
func (r ListResponse) For(country media.Country) []Certification {
	return r[country.String()]
}

func (r *ListResponse) Parse(res *trakt.HTTPResponse) error {
	return List.ParseInto(res, r)
}
