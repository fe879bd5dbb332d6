package trakt

import "strings"

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.trakt.tv"

// APIVersion is sent as the trakt-api-version header.
const APIVersion = "2"

// Context carries the per-call settings every Build needs.
// An empty OAuthToken means the request is sent without an Authorization header.
type Context struct {
	BaseURL    string `validate:"required,url,notrailingslash"`
	ClientID   string `validate:"required"`
	OAuthToken string
}

// NewContext returns a Context for baseURL with any trailing slash removed.
func NewContext(baseURL, clientID string) Context {
	return Context{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		ClientID: clientID,
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c Context) WithToken(token string) Context {
	c.OAuthToken = token
	return c
}

// Validate reports a *BuildError of kind BuildInvalid when c cannot address the API.
func (c Context) Validate() error {
	if err := validate.Struct(c); err != nil {
		return invalidError(err)
	}
	return nil
}
