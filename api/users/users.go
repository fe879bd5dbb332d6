// Package users binds the account settings and follower request endpoints
// of the authenticated user.
package users

import (
	"net/http"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	Settings = trakt.NewEndpoint[SettingsRequest, SettingsResponse]("/users/settings").
		Auth(trakt.AuthRequired).
		Describe("account settings")
	FollowRequests = trakt.NewEndpoint[FollowRequestsRequest, FollowRequestsResponse]("/users/requests").
		Auth(trakt.AuthRequired).
		Describe("pending requests to follow the user")
	PendingFollowing = trakt.NewEndpoint[PendingFollowingRequest, PendingFollowingResponse]("/users/requests/following").
		Auth(trakt.AuthRequired).
		Describe("the user's own pending follow requests")
	Approve = trakt.NewEndpoint[ApproveRequest, ApproveResponse]("/users/requests/{id}").
		Method(http.MethodPost).
		Auth(trakt.AuthRequired).
		Describe("approve a follow request")
	Deny = trakt.NewEndpoint[DenyRequest, DenyResponse]("/users/requests/{id}").
		Method(http.MethodDelete).
		Auth(trakt.AuthRequired).
		Expect(http.StatusNoContent).
		Describe("deny a follow request")
)

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("settings", Settings).
		Register("follow_requests", FollowRequests).
		Register("pending_following", PendingFollowing).
		Register("approve", Approve).
		Register("deny", Deny)
}

type SettingsRequest struct{}

func (r SettingsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Settings.Build(ctx, r)
}

type SettingsResponse struct {
	User        Account     `json:"user"`
	Account     Preferences `json:"account"`
	Connections Connections `json:"connections"`
	SharingText SharingText `json:"sharing_text"`
	Limits      Limits      `json:"limits"`
}

func (r *SettingsResponse) Parse(res *trakt.HTTPResponse) error {
	return Settings.ParseInto(res, r)
}

// Account is the full profile of the authenticated user. Profile fields the
// user has not filled in are nil.
type Account struct {
	Username string          `json:"username"`
	Private  bool            `json:"private"`
	Name     string          `json:"name"`
	VIP      bool            `json:"vip"`
	VIPEP    bool            `json:"vip_ep"`
	IDs      UserIDs         `json:"ids"`
	JoinedAt trakt.Timestamp `json:"joined_at"`
	Location *string         `json:"location"`
	About    *string         `json:"about"`
	Gender   *string         `json:"gender"`
	Age      *int            `json:"age"`
	Images   *Images         `json:"images,omitempty"`
	VIPOG    bool            `json:"vip_og,omitempty"`
	VIPYears int             `json:"vip_years,omitempty"`
}

type UserIDs struct {
	Slug string `json:"slug"`
	UUID string `json:"uuid,omitempty"`
}

type Images struct {
	Avatar struct {
		Full string `json:"full"`
	} `json:"avatar"`
}

type Preferences struct {
	Timezone   string `json:"timezone"`
	DateFormat string `json:"date_format"`
	Time24Hr   bool   `json:"time_24hr"`
	CoverImage string `json:"cover_image,omitempty"`
}

// Connections reports which external services are linked, keyed by service name.
type Connections map[string]bool

type SharingText struct {
	Watching string `json:"watching"`
	Watched  string `json:"watched"`
	Rated    string `json:"rated,omitempty"`
}

type Limits struct {
	List      Limit `json:"list"`
	Watchlist Limit `json:"watchlist"`
	Favorites Limit `json:"favorites,omitempty"`
}

// Limit caps a collection. Count is nil for the single watchlist.
type Limit struct {
	Count     *int `json:"count,omitempty"`
	ItemCount int  `json:"item_count"`
}

// FollowRequest is a request from User, pending approval.
type FollowRequest struct {
	ID          uint64          `json:"id"`
	RequestedAt trakt.Timestamp `json:"requested_at"`
	User        media.User      `json:"user"`
}

type FollowRequestsRequest struct{}

func (r FollowRequestsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return FollowRequests.Build(ctx, r)
}

type FollowRequestsResponse []FollowRequest

func (r *FollowRequestsResponse) Parse(res *trakt.HTTPResponse) error {
	return FollowRequests.ParseInto(res, r)
}

type PendingFollowingRequest struct{}

func (r PendingFollowingRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return PendingFollowing.Build(ctx, r)
}

type PendingFollowingResponse []FollowRequest

func (r *PendingFollowingResponse) Parse(res *trakt.HTTPResponse) error {
	return PendingFollowing.ParseInto(res, r)
}

type ApproveRequest struct {
	ID uint64 `path:"id"`
}

func (r ApproveRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Approve.Build(ctx, r)
}

type ApproveResponse struct {
	FollowedAt trakt.Timestamp `json:"followed_at"`
	User       media.User      `json:"user"`
}

func (r *ApproveResponse) Parse(res *trakt.HTTPResponse) error {
	return Approve.ParseInto(res, r)
}

type DenyRequest struct {
	ID uint64 `path:"id"`
}

func (r DenyRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Deny.Build(ctx, r)
}

type DenyResponse struct{}

func (r *DenyResponse) Parse(res *trakt.HTTPResponse) error {
	return Deny.ParseInto(res, r)
}
