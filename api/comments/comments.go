// Package comments binds the /comments endpoints.
//
// Comments and replies must contain at least five words; shorter ones fail
// to build with a BuildInvalid error instead of being rejected by the API.
package comments

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	Post = trakt.NewEndpoint[PostRequest, PostResponse]("/comments").
		Method(http.MethodPost).
		Auth(trakt.AuthRequired).
		Expect(http.StatusCreated).
		Describe("post a comment")
	Get    = trakt.NewEndpoint[GetRequest, GetResponse]("/comments/{id}").Describe("get a comment or reply")
	Update = trakt.NewEndpoint[UpdateRequest, UpdateResponse]("/comments/{id}").
		Method(http.MethodPut).
		Auth(trakt.AuthRequired).
		Describe("update a comment or reply")
	Delete = trakt.NewEndpoint[DeleteRequest, DeleteResponse]("/comments/{id}").
		Method(http.MethodDelete).
		Auth(trakt.AuthRequired).
		Expect(http.StatusNoContent).
		Describe("delete a comment or reply")
	Replies = trakt.NewEndpoint[RepliesRequest, RepliesResponse]("/comments/{id}/replies").Describe("replies for a comment")
	Reply   = trakt.NewEndpoint[ReplyRequest, ReplyResponse]("/comments/{id}/replies").
		Method(http.MethodPost).
		Auth(trakt.AuthRequired).
		Expect(http.StatusCreated).
		Describe("post a reply")
	Item  = trakt.NewEndpoint[ItemRequest, ItemResponse]("/comments/{id}/item").Describe("item a comment is attached to")
	Likes = trakt.NewEndpoint[LikesRequest, LikesResponse]("/comments/{id}/likes").Describe("users who liked a comment")
	Like  = trakt.NewEndpoint[LikeRequest, LikeResponse]("/comments/{id}/like").
		Method(http.MethodPost).
		Auth(trakt.AuthRequired).
		Expect(http.StatusNoContent).
		Describe("like a comment")
	Unlike = trakt.NewEndpoint[UnlikeRequest, UnlikeResponse]("/comments/{id}/like").
		Method(http.MethodDelete).
		Auth(trakt.AuthRequired).
		Expect(http.StatusNoContent).
		Describe("remove like on a comment")
	Trending = trakt.NewEndpoint[TrendingRequest, TrendingResponse]("/comments/trending/{comment_type}/{type}").Describe("trending comments")
	Recent   = trakt.NewEndpoint[RecentRequest, RecentResponse]("/comments/recent/{comment_type}/{type}").Describe("recently created comments")
)

func init() {
	trakt.Validator().RegisterStructValidation(validatePost, PostRequest{})
}

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("post", Post).
		Register("get", Get).
		Register("update", Update).
		Register("delete", Delete).
		Register("replies", Replies).
		Register("reply", Reply).
		Register("item", Item).
		Register("likes", Likes).
		Register("like", Like).
		Register("unlike", Unlike).
		Register("trending", Trending).
		Register("recent", Recent)
}

// PostRequest comments on exactly one item. Use NewPost to fill in the target.
type PostRequest struct {
	Movie   *media.Ref     `body:"movie,omitempty"`
	Show    *media.Ref     `body:"show,omitempty"`
	Season  *media.Ref     `body:"season,omitempty"`
	Episode *media.Ref     `body:"episode,omitempty"`
	List    *media.Ref     `body:"list,omitempty"`
	Comment string         `body:"comment" validate:"minwords=5"`
	Spoiler bool           `body:"spoiler"`
	Sharing *media.Sharing `body:"sharing,omitempty"`
}

// NewPost returns a PostRequest for the item of type typ identified by id.
// Person items cannot be commented on and yield a request that fails to build.
func NewPost(typ media.ItemType, id trakt.ID, comment string) PostRequest {
	r := PostRequest{Comment: comment}
	ref := media.RefTo(id)
	switch typ {
	case media.ItemMovie:
		r.Movie = ref
	case media.ItemShow:
		r.Show = ref
	case media.ItemSeason:
		r.Season = ref
	case media.ItemEpisode:
		r.Episode = ref
	case media.ItemList:
		r.List = ref
	}
	return r
}

func validatePost(sl validator.StructLevel) {
	r := sl.Current().Interface().(PostRequest)
	n := 0
	for _, ref := range []*media.Ref{r.Movie, r.Show, r.Season, r.Episode, r.List} {
		if ref != nil {
			n++
		}
	}
	if n != 1 {
		sl.ReportError(r.Movie, "item", "Item", "exactly_one", "movie show season episode list")
	}
}

func (r PostRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Post.Build(ctx, r)
}

type PostResponse struct {
	Comment media.Comment `trakt:"body"`
}

func (r *PostResponse) Parse(res *trakt.HTTPResponse) error {
	return Post.ParseInto(res, r)
}

type GetRequest struct {
	ID uint64 `path:"id"`
}

func (r GetRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Get.Build(ctx, r)
}

type GetResponse struct {
	Comment media.Comment `trakt:"body"`
}

func (r *GetResponse) Parse(res *trakt.HTTPResponse) error {
	return Get.ParseInto(res, r)
}

type UpdateRequest struct {
	ID      uint64 `path:"id"`
	Comment string `body:"comment" validate:"minwords=5"`
	Spoiler bool   `body:"spoiler"`
}

func (r UpdateRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Update.Build(ctx, r)
}

type UpdateResponse struct {
	Comment media.Comment `trakt:"body"`
}

func (r *UpdateResponse) Parse(res *trakt.HTTPResponse) error {
	return Update.ParseInto(res, r)
}

type DeleteRequest struct {
	ID uint64 `path:"id"`
}

func (r DeleteRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Delete.Build(ctx, r)
}

type DeleteResponse struct{}

func (r *DeleteResponse) Parse(res *trakt.HTTPResponse) error {
	return Delete.ParseInto(res, r)
}

type RepliesRequest struct {
	ID uint64 `path:"id"`
	trakt.Pagination
}

func (r RepliesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Replies.Build(ctx, r)
}

type RepliesResponse struct {
	Items trakt.Page[media.Comment] `trakt:"pagination"`
}

func (r *RepliesResponse) Parse(res *trakt.HTTPResponse) error {
	return Replies.ParseInto(res, r)
}

type ReplyRequest struct {
	ID      uint64 `path:"id"`
	Comment string `body:"comment" validate:"minwords=5"`
	Spoiler bool   `body:"spoiler"`
}

func (r ReplyRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Reply.Build(ctx, r)
}

type ReplyResponse struct {
	Comment media.Comment `trakt:"body"`
}

func (r *ReplyResponse) Parse(res *trakt.HTTPResponse) error {
	return Reply.ParseInto(res, r)
}

type ItemRequest struct {
	ID       uint64             `path:"id"`
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r ItemRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Item.Build(ctx, r)
}

type ItemResponse struct {
	Item media.Item `trakt:"body"`
}

func (r *ItemResponse) Parse(res *trakt.HTTPResponse) error {
	return Item.ParseInto(res, r)
}

type LikesRequest struct {
	ID uint64 `path:"id"`
	trakt.Pagination
}

func (r LikesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Likes.Build(ctx, r)
}

type Liker struct {
	LikedAt trakt.Timestamp `json:"liked_at"`
	User    media.User      `json:"user"`
}

type LikesResponse struct {
	Items trakt.Page[Liker] `trakt:"pagination"`
}

func (r *LikesResponse) Parse(res *trakt.HTTPResponse) error {
	return Likes.ParseInto(res, r)
}

type LikeRequest struct {
	ID uint64 `path:"id"`
}

func (r LikeRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Like.Build(ctx, r)
}

type LikeResponse struct{}

func (r *LikeResponse) Parse(res *trakt.HTTPResponse) error {
	return Like.ParseInto(res, r)
}

type UnlikeRequest struct {
	ID uint64 `path:"id"`
}

func (r UnlikeRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Unlike.Build(ctx, r)
}

type UnlikeResponse struct{}

func (r *UnlikeResponse) Parse(res *trakt.HTTPResponse) error {
	return Unlike.ParseInto(res, r)
}

type TrendingRequest struct {
	CommentType    media.CommentType     `path:"comment_type" validate:"oneof=all reviews shouts"`
	Type           media.CommentItemType `path:"type" validate:"oneof=all movies shows seasons episodes lists"`
	IncludeReplies bool                  `query:"include_replies,omitempty"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r TrendingRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Trending.Build(ctx, r)
}

type TrendingResponse struct {
	Items trakt.Page[media.CommentWithItem] `trakt:"pagination"`
}

func (r *TrendingResponse) Parse(res *trakt.HTTPResponse) error {
	return Trending.ParseInto(res, r)
}

type RecentRequest TrendingRequest

func (r RecentRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Recent.Build(ctx, r)
}

type RecentResponse struct {
	Items trakt.Page[media.CommentWithItem] `trakt:"pagination"`
}

func (r *RecentResponse) Parse(res *trakt.HTTPResponse) error {
	return Recent.ParseInto(res, r)
}
