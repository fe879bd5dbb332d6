// Package auth binds the OAuth endpoints: the authorization code and refresh
// grants, token revocation, and the device flow.
//
// The client id is never set by the caller. Every request body carries it
// from the Context it is built with.
package auth

import (
	"net/http"
	"time"

	"github.com/ansg191/trakt"
)

// OOB is the redirect URI for applications that cannot receive a redirect.
const OOB = "urn:ietf:wg:oauth:2.0:oob"

const (
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
)

var (
	Token       = trakt.NewEndpoint[TokenRequest, TokenResponse]("/oauth/token").Method(http.MethodPost).Describe("exchange authorization code")
	Refresh     = trakt.NewEndpoint[RefreshRequest, TokenResponse]("/oauth/token").Method(http.MethodPost).Describe("refresh access token")
	Revoke      = trakt.NewEndpoint[RevokeRequest, RevokeResponse]("/oauth/revoke").Method(http.MethodPost).Describe("revoke access token")
	DeviceCode  = trakt.NewEndpoint[DeviceCodeRequest, DeviceCodeResponse]("/oauth/device/code").Method(http.MethodPost).Describe("generate device code")
	DeviceToken = trakt.NewEndpoint[DeviceTokenRequest, TokenResponse]("/oauth/device/token").Method(http.MethodPost).Describe("poll device token")
)

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("token", Token).
		Register("refresh", Refresh).
		Register("revoke", Revoke).
		Register("device_code", DeviceCode).
		Register("device_token", DeviceToken)
}

// TokenRequest exchanges an authorization code for an access token.
type TokenRequest struct {
	Code         string `body:"code" validate:"required"`
	ClientID     string `body:"client_id,clientid"`
	ClientSecret string `body:"client_secret" validate:"required"`
	RedirectURI  string `body:"redirect_uri" validate:"required"`
	// GrantType is filled in by Build.
	GrantType string `body:"grant_type"`
}

func (r TokenRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	r.GrantType = grantAuthorizationCode
	return Token.Build(ctx, r)
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	RefreshToken string `body:"refresh_token" validate:"required"`
	ClientID     string `body:"client_id,clientid"`
	ClientSecret string `body:"client_secret" validate:"required"`
	RedirectURI  string `body:"redirect_uri" validate:"required"`
	// GrantType is filled in by Build.
	GrantType string `body:"grant_type"`
}

func (r RefreshRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	r.GrantType = grantRefreshToken
	return Refresh.Build(ctx, r)
}

// TokenResponse is returned by the code, refresh and device grants.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	CreatedAt    int64  `json:"created_at"`
}

func (r *TokenResponse) Parse(res *trakt.HTTPResponse) error {
	return Token.ParseInto(res, r)
}

// Expiry is the time the access token stops being accepted.
func (r TokenResponse) Expiry() time.Time {
	return time.Unix(r.CreatedAt+r.ExpiresIn, 0)
}

type RevokeRequest struct {
	Token        string `body:"token" validate:"required"`
	ClientID     string `body:"client_id,clientid"`
	ClientSecret string `body:"client_secret" validate:"required"`
}

func (r RevokeRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Revoke.Build(ctx, r)
}

type RevokeResponse struct{}

func (r *RevokeResponse) Parse(res *trakt.HTTPResponse) error {
	return Revoke.ParseInto(res, r)
}

type DeviceCodeRequest struct {
	ClientID string `body:"client_id,clientid"`
}

func (r DeviceCodeRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return DeviceCode.Build(ctx, r)
}

// DeviceCodeResponse starts the device flow. Show UserCode and
// VerificationURL to the user, then poll DeviceToken every Interval seconds
// until ExpiresIn seconds have passed.
type DeviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	ExpiresIn       int64  `json:"expires_in"`
	Interval        int64  `json:"interval"`
}

func (r *DeviceCodeResponse) Parse(res *trakt.HTTPResponse) error {
	return DeviceCode.ParseInto(res, r)
}

type DeviceTokenRequest struct {
	Code         string `body:"code" validate:"required"`
	ClientID     string `body:"client_id,clientid"`
	ClientSecret string `body:"client_secret" validate:"required"`
}

func (r DeviceTokenRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return DeviceToken.Build(ctx, r)
}

// PollStatus classifies an error returned while polling DeviceToken.
type PollStatus uint8

const (
	PollFailed   PollStatus = iota // not a polling status; stop
	PollPending                    // keep polling
	PollSlowDown                   // keep polling, with a longer interval
	PollNotFound                   // invalid device code; stop
	PollUsed                       // code already approved; stop
	PollExpired                    // code expired; start over
	PollDenied                     // user denied the request; stop
)

// DevicePollStatus maps the statuses DeviceToken answers with while the user
// has not yet approved the code.
func DevicePollStatus(err error) PollStatus {
	switch {
	case trakt.IsStatus(err, http.StatusBadRequest):
		return PollPending
	case trakt.IsStatus(err, http.StatusTooManyRequests):
		return PollSlowDown
	case trakt.IsStatus(err, http.StatusNotFound):
		return PollNotFound
	case trakt.IsStatus(err, http.StatusConflict):
		return PollUsed
	case trakt.IsStatus(err, http.StatusGone):
		return PollExpired
	case trakt.IsStatus(err, http.StatusTeapot):
		return PollDenied
	default:
		return PollFailed
	}
}
