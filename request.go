package trakt

import "fmt"

// Request is implemented by every endpoint request type.
// Build performs no I/O and may be called concurrently.
type Request interface {
	Build(ctx Context) (*HTTPRequest, error)
}

// AuthRequirement states whether an endpoint needs an OAuth token.
type AuthRequirement uint8

const (
	// AuthNone endpoints ignore any token. The Authorization header is still
	// sent when the Context has one.
	AuthNone AuthRequirement = iota
	// AuthOptional endpoints return user-specific data when a token is present.
	AuthOptional
	// AuthRequired endpoints fail to build without a token.
	AuthRequired
)

func (a AuthRequirement) String() string {
	switch a {
	case AuthNone:
		return "none"
	case AuthOptional:
		return "optional"
	case AuthRequired:
		return "required"
	default:
		return fmt.Sprintf("AuthRequirement(%d)", uint8(a))
	}
}

// Metadata describes an endpoint.
type Metadata struct {
	Endpoint string // URL template, e.g. "/movies/{id}"
	Method   string
	Auth     AuthRequirement
}
