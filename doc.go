// Package trakt binds the Trakt REST API to Go types without performing any I/O.
//
// Every API operation is an [Endpoint] declared as a package-level variable in one of
// the api/ packages. The endpoint reflects over its request and response types once,
// at initialisation, and panics if the URL template's placeholders and the request's
// path fields differ.
//
// Request fields declare their role with struct tags:
//
//	type SummaryRequest struct {
//		ID       trakt.ID           `path:"id"`
//		Extended trakt.ExtendedInfo `query:"extended,omitempty"`
//	}
//
// Build turns a request into an [HTTPRequest]; the caller sends it with any transport
// and hands the [HTTPResponse] to Parse:
//
//	ctx := trakt.NewContext(trakt.DefaultBaseURL, clientID)
//	req, err := movies.Summary.Build(ctx, movies.SummaryRequest{ID: trakt.IMDBID("tt0111161")})
//	...
//	movie, err := movies.Summary.Parse(res)
//
// Build fails with a *[BuildError] and Parse with a *[ParseError]. A response status the
// endpoint does not expect is reported as a ParseError of kind [ParseStatus] carrying an
// *[APIError].
package trakt
