// Package movies binds the /movies endpoints.
package movies

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/media"
)

var (
	Trending    = trakt.NewEndpoint[TrendingRequest, TrendingResponse]("/movies/trending").Describe("trending movies")
	Popular     = trakt.NewEndpoint[PopularRequest, PopularResponse]("/movies/popular").Describe("popular movies")
	Favorited   = trakt.NewEndpoint[FavoritedRequest, FavoritedResponse]("/movies/favorited/{period}").Describe("most favorited movies")
	Played      = trakt.NewEndpoint[PlayedRequest, PlayedResponse]("/movies/played/{period}").Describe("most played movies")
	Watched     = trakt.NewEndpoint[WatchedRequest, WatchedResponse]("/movies/watched/{period}").Describe("most watched movies")
	Collected   = trakt.NewEndpoint[CollectedRequest, CollectedResponse]("/movies/collected/{period}").Describe("most collected movies")
	Anticipated = trakt.NewEndpoint[AnticipatedRequest, AnticipatedResponse]("/movies/anticipated").Describe("most anticipated movies")
	BoxOffice   = trakt.NewEndpoint[BoxOfficeRequest, BoxOfficeResponse]("/movies/boxoffice").Describe("weekend box office")
	Updates     = trakt.NewEndpoint[UpdatesRequest, UpdatesResponse]("/movies/updates/{start_date}").Describe("recently updated movies")
	UpdatedIDs  = trakt.NewEndpoint[UpdatedIDsRequest, UpdatedIDsResponse]("/movies/updates/id/{start_date}").Describe("recently updated movie ids")

	Summary      = trakt.NewEndpoint[SummaryRequest, SummaryResponse]("/movies/{id}").Describe("movie summary")
	Aliases      = trakt.NewEndpoint[AliasesRequest, AliasesResponse]("/movies/{id}/aliases").Describe("movie aliases")
	Releases     = trakt.NewEndpoint[ReleasesRequest, ReleasesResponse]("/movies/{id}/releases/{country}").Describe("movie releases")
	Translations = trakt.NewEndpoint[TranslationsRequest, TranslationsResponse]("/movies/{id}/translations/{language}").Describe("movie translations")
	Comments     = trakt.NewEndpoint[CommentsRequest, CommentsResponse]("/movies/{id}/comments/{sort}").Auth(trakt.AuthOptional).Describe("movie comments")
	People       = trakt.NewEndpoint[PeopleRequest, PeopleResponse]("/movies/{id}/people").Describe("movie cast and crew")
	Ratings      = trakt.NewEndpoint[RatingsRequest, RatingsResponse]("/movies/{id}/ratings").Describe("movie ratings")
	Related      = trakt.NewEndpoint[RelatedRequest, RelatedResponse]("/movies/{id}/related").Describe("related movies")
	Stats        = trakt.NewEndpoint[StatsRequest, StatsResponse]("/movies/{id}/stats").Describe("movie stats")
	Watching     = trakt.NewEndpoint[WatchingRequest, WatchingResponse]("/movies/{id}/watching").Describe("users watching a movie")
)

// Register adds every binding in this package to s.
func Register(s *trakt.Service) {
	s.Register("trending", Trending).
		Register("popular", Popular).
		Register("favorited", Favorited).
		Register("played", Played).
		Register("watched", Watched).
		Register("collected", Collected).
		Register("anticipated", Anticipated).
		Register("boxoffice", BoxOffice).
		Register("updates", Updates).
		Register("updated_ids", UpdatedIDs).
		Register("summary", Summary).
		Register("aliases", Aliases).
		Register("releases", Releases).
		Register("translations", Translations).
		Register("comments", Comments).
		Register("people", People).
		Register("ratings", Ratings).
		Register("related", Related).
		Register("stats", Stats).
		Register("watching", Watching)
}

type TrendingRequest struct {
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r TrendingRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Trending.Build(ctx, r)
}

type TrendingItem struct {
	Watchers int         `json:"watchers"`
	Movie    media.Movie `json:"movie"`
}

type TrendingResponse struct {
	Items trakt.Page[TrendingItem] `trakt:"pagination"`
	// UserCount is the number of users watching any movie right now.
	UserCount int `header:"X-Trending-User-Count,omitempty" json:"-"`
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
	Items trakt.Page[media.Movie] `trakt:"pagination"`
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
	UserCount int         `json:"user_count"`
	Movie     media.Movie `json:"movie"`
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

type WatchedRequest PlayedRequest

func (r WatchedRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Watched.Build(ctx, r)
}

type CollectedRequest PlayedRequest

func (r CollectedRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Collected.Build(ctx, r)
}

// ChartItem is an entry of the played, watched and collected charts.
type ChartItem struct {
	WatcherCount   int         `json:"watcher_count"`
	PlayCount      int         `json:"play_count"`
	CollectedCount int         `json:"collected_count"`
	Movie          media.Movie `json:"movie"`
}

type PlayedResponse struct {
	Items trakt.Page[ChartItem] `trakt:"pagination"`
}

func (r *PlayedResponse) Parse(res *trakt.HTTPResponse) error {
	return Played.ParseInto(res, r)
}

type WatchedResponse struct {
	Items trakt.Page[ChartItem] `trakt:"pagination"`
}

func (r *WatchedResponse) Parse(res *trakt.HTTPResponse) error {
	return Watched.ParseInto(res, r)
}

type CollectedResponse struct {
	Items trakt.Page[ChartItem] `trakt:"pagination"`
}

func (r *CollectedResponse) Parse(res *trakt.HTTPResponse) error {
	return Collected.ParseInto(res, r)
}

type AnticipatedRequest struct {
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r AnticipatedRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Anticipated.Build(ctx, r)
}

type AnticipatedItem struct {
	ListCount int         `json:"list_count"`
	Movie     media.Movie `json:"movie"`
}

type AnticipatedResponse struct {
	Items trakt.Page[AnticipatedItem] `trakt:"pagination"`
}

func (r *AnticipatedResponse) Parse(res *trakt.HTTPResponse) error {
	return Anticipated.ParseInto(res, r)
}

type BoxOfficeRequest struct {
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r BoxOfficeRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return BoxOffice.Build(ctx, r)
}

type BoxOfficeItem struct {
	// Revenue is in US dollars.
	Revenue int64       `json:"revenue"`
	Movie   media.Movie `json:"movie"`
}

type BoxOfficeResponse []BoxOfficeItem

func (r *BoxOfficeResponse) Parse(res *trakt.HTTPResponse) error {
	return BoxOffice.ParseInto(res, r)
}

type UpdatesRequest struct {
	StartDate trakt.Timestamp `path:"start_date" validate:"required"`
	trakt.Pagination
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r UpdatesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Updates.Build(ctx, r)
}

type UpdatesResponse struct {
	Items trakt.Page[media.Movie] `trakt:"pagination"`
}

func (r *UpdatesResponse) Parse(res *trakt.HTTPResponse) error {
	return Updates.ParseInto(res, r)
}

type UpdatedIDsRequest struct {
	StartDate trakt.Timestamp `path:"start_date" validate:"required"`
	trakt.Pagination
}

func (r UpdatedIDsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return UpdatedIDs.Build(ctx, r)
}

// UpdatedIDsResponse holds Trakt ids.
type UpdatedIDsResponse struct {
	Items trakt.Page[uint64] `trakt:"pagination"`
}

func (r *UpdatedIDsResponse) Parse(res *trakt.HTTPResponse) error {
	return UpdatedIDs.ParseInto(res, r)
}

type SummaryRequest struct {
	ID       trakt.ID           `path:"id"`
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r SummaryRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Summary.Build(ctx, r)
}

type SummaryResponse struct {
	Movie media.Movie `trakt:"body"`
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

type ReleasesRequest struct {
	ID      trakt.ID      `path:"id"`
	Country media.Country `path:"country"`
}

func (r ReleasesRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Releases.Build(ctx, r)
}

type ReleaseType string

const (
	ReleaseUnknown    ReleaseType = "unknown"
	ReleasePremiere   ReleaseType = "premiere"
	ReleaseLimited    ReleaseType = "limited"
	ReleaseTheatrical ReleaseType = "theatrical"
	ReleaseDigital    ReleaseType = "digital"
	ReleasePhysical   ReleaseType = "physical"
	ReleaseTV         ReleaseType = "tv"
)

type Release struct {
	Country       media.Country `json:"country"`
	Certification string        `json:"certification"`
	ReleaseDate   trakt.Date    `json:"release_date"`
	ReleaseType   ReleaseType   `json:"release_type"`
	Note          *string       `json:"note"`
}

type ReleasesResponse []Release

func (r *ReleasesResponse) Parse(res *trakt.HTTPResponse) error {
	return Releases.ParseInto(res, r)
}

type TranslationsRequest struct {
	ID       trakt.ID       `path:"id"`
	Language media.Language `path:"language"`
}

func (r TranslationsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Translations.Build(ctx, r)
}

type Translation struct {
	Title    string         `json:"title"`
	Overview string         `json:"overview"`
	Tagline  string         `json:"tagline"`
	Language media.Language `json:"language"`
	Country  media.Country  `json:"country"`
}

type TranslationsResponse []Translation

func (r *TranslationsResponse) Parse(res *trakt.HTTPResponse) error {
	return Translations.ParseInto(res, r)
}

type CommentsRequest struct {
	ID   trakt.ID   `path:"id"`
	Sort media.Sort `path:"sort"`
	trakt.Pagination
}

func (r CommentsRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Comments.Build(ctx, r)
}

type CommentsResponse struct {
	Items trakt.Page[media.Comment] `trakt:"pagination"`
}

func (r *CommentsResponse) Parse(res *trakt.HTTPResponse) error {
	return Comments.ParseInto(res, r)
}

type PeopleRequest struct {
	ID       trakt.ID           `path:"id"`
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r PeopleRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return People.Build(ctx, r)
}

type CastMember struct {
	Characters []string     `json:"characters"`
	Person     media.Person `json:"person"`
}

type CrewMember struct {
	Jobs   []string     `json:"jobs"`
	Person media.Person `json:"person"`
}

// Crew groups crew members by department. Departments without members are
// absent from the response.
type Crew struct {
	Production    []CrewMember `json:"production,omitempty"`
	Art           []CrewMember `json:"art,omitempty"`
	Crew          []CrewMember `json:"crew,omitempty"`
	CostumeMakeUp []CrewMember `json:"costume & make-up,omitempty"`
	Directing     []CrewMember `json:"directing,omitempty"`
	Writing       []CrewMember `json:"writing,omitempty"`
	Sound         []CrewMember `json:"sound,omitempty"`
	Camera        []CrewMember `json:"camera,omitempty"`
	VisualEffects []CrewMember `json:"visual effects,omitempty"`
	Lighting      []CrewMember `json:"lighting,omitempty"`
	Editing       []CrewMember `json:"editing,omitempty"`
}

type PeopleResponse struct {
	Cast []CastMember `json:"cast,omitempty"`
	Crew Crew         `json:"crew"`
}

func (r *PeopleResponse) Parse(res *trakt.HTTPResponse) error {
	return People.ParseInto(res, r)
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
	Items trakt.Page[media.Movie] `trakt:"pagination"`
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
	Watchers   int `json:"watchers"`
	Plays      int `json:"plays"`
	Collectors int `json:"collectors"`
	Comments   int `json:"comments"`
	Lists      int `json:"lists"`
	Votes      int `json:"votes"`
	Favorited  int `json:"favorited"`
}

func (r *StatsResponse) Parse(res *trakt.HTTPResponse) error {
	return Stats.ParseInto(res, r)
}

type WatchingRequest struct {
	ID       trakt.ID           `path:"id"`
	Extended trakt.ExtendedInfo `query:"extended,omitempty"`
}

func (r WatchingRequest) Build(ctx trakt.Context) (*trakt.HTTPRequest, error) {
	return Watching.Build(ctx, r)
}

type WatchingResponse []media.User

func (r *WatchingResponse) Parse(res *trakt.HTTPResponse) error {
	return Watching.ParseInto(res, r)
}
