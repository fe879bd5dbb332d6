// Package shows binds the /shows endpoints.
package shows

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	Trending  = trakt.NewEndpoint[TrendingRequest, TrendingResponse]("/shows/trending").Describe("trending shows")
	Popular   = trakt.NewEndpoint[PopularRequest, PopularResponse]("/shows/popular").Describe("popular shows")
	Favorited = trakt.NewEndpoint[FavoritedRequest, FavoritedResponse]("/shows/favorited/{period}").Describe("most favorited shows")
	Played    = trakt.NewEndpoint[PlayedRequest, PlayedResponse]("/shows/played/{period}").Describe("most played shows")
	Summary   = trakt.NewEndpoint[SummaryRequest, SummaryResponse]("/shows/{id}").Describe("show summary")
	Aliases   = trakt.NewEndpoint[AliasesRequest, AliasesResponse]("/shows/{id}/aliases").Describe("show aliases")
	Ratings   = trakt.NewEndpoint[RatingsRequest, RatingsResponse]("/shows/{id}/ratings").Describe("show ratings")
	Related   = trakt.NewEndpoint[RelatedRequest, RelatedResponse]("/shows/{id}/related").Describe("related shows")
	Stats     = trakt.NewEndpoint[StatsRequest, StatsResponse]("/shows/{id}/stats").Describe("show stats")
)

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("trending", Trending).
		Register("popular", Popular).
		Register("favorited", Favorited).
		Register("played", Played).
		Register("summary", Summary).
		Register("aliases", Aliases).
		Register("ratings", Ratings).
		Register("related", Related).
		Register("stats", Stats)
}

type TrendingRequest struct {
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r TrendingRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Trending.Build(ctx, r)
}

type TrendingItem struct {
	Watchers int        `json:"watchers"`
	Show     media.Show `json:"show"`
}

type TrendingResponse struct {
	Items     trakt.Page[TrendingItem] `trakt:"pagination"`
	UserCount int                      `header:"X-Trending-User-Count,omitempty" json:"-"`
}

func (r *TrendingResponse) Parse(res *trakt.HTTPResponse) error {
	return Trending.ParseInto(res, r)
}

type PopularRequest struct {
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r PopularRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Popular.Build(ctx, r)
}

type PopularResponse struct {
	Items trakt.Page[media.Show] `trakt:"pagination"`
}

func (r *PopularResponse) Parse(res *trakt.HTTPResponse) error {
	return Popular.ParseInto(res, r)
}

type FavoritedRequest struct {
	Period media.Period `path:"period" validate:"required,oneof=daily weekly monthly yearly all"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r FavoritedRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Favorited.Build(ctx, r)
}

type FavoritedItem struct {
	UserCount int        `json:"user_count"`
	Show      media.Show `json:"show"`
}

type FavoritedResponse struct {
	Items trakt.Page[FavoritedItem] `trakt:"pagination"`
}

func (r *FavoritedResponse) Parse(res *trakt.HTTPResponse) error {
	return Favorited.ParseInto(res, r)
}

type PlayedRequest struct {
	Period media.Period `path:"period" validate:"required,oneof=daily weekly monthly yearly all"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r PlayedRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Played.Build(ctx, r)
}

type PlayedItem struct {
	WatcherCount   int        `json:"watcher_count"`
	PlayCount      int        `json:"play_count"`
	CollectedCount int        `json:"collected_count"`
	CollectorCount int        `json:"collector_count"`
	Show           media.Show `json:"show"`
}

type PlayedResponse struct {
	Items trakt.Page[PlayedItem] `trakt:"pagination"`
}

func (r *PlayedResponse) Parse(res *trakt.HTTPResponse) error {
	return Played.ParseInto(res, r)
}

type SummaryRequest struct {
	ID       trakt.ID           `path:"id"`
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r SummaryRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Summary.Build(ctx, r)
}

type SummaryResponse struct {
	Show media.Show `trakt:"body"`
}

func (r *SummaryResponse) Parse(res *trakt.HTTPResponse) error {
	return Summary.ParseInto(res, r)
}

type AliasesRequest struct {
	ID trakt.ID `path:"id"`
}

func (r AliasesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Aliases.Build(ctx, r)
}

type Alias struct {
	Title   string        `json:"title"`
	Country media.Country `json:"country"`
}

type AliasesResponse []Alias

func (r *AliasesResponse) Parse(res *trakt.HTTPResponse) error {
	return Aliases.ParseInto(res, r)
}

type RatingsRequest struct {
	ID trakt.ID `path:"id"`
}

func (r RatingsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Ratings.Build(ctx, r)
}

type RatingsResponse struct {
	Ratings media.Ratings `trakt:"body"`
}

func (r *RatingsResponse) Parse(res *trakt.HTTPResponse) error {
	return Ratings.ParseInto(res, r)
}

type RelatedRequest struct {
	ID trakt.ID `path:"id"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r RelatedRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Related.Build(ctx, r)
}

type RelatedResponse struct {
	Items trakt.Page[media.Show] `trakt:"pagination"`
}

func (r *RelatedResponse) Parse(res *trakt.HTTPResponse) error {
	return Related.ParseInto(res, r)
}

type StatsRequest struct {
	ID trakt.ID `path:"id"`
}

func (r StatsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Stats.Build(ctx, r)
}

type StatsResponse struct {
	Watchers          int `json:"watchers"`
	Plays             int `json:"plays"`
	Collectors        int `json:"collectors"`
	CollectedEpisodes int `json:"collected_episodes"`
	Comments          int `json:"comments"`
	Lists             int `json:"lists"`
	Votes             int `json:"votes"`
	Favorited         int `json:"favorited"`
}

func (r *StatsResponse) Parse(res *trakt.HTTPResponse) error {
	return Stats.ParseInto(res, r)
}
