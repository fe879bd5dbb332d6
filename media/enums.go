package media

// Period is the time window of the favorited, played, watched and collected charts.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// Sort orders comment listings.
type Sort string

const (
	SortNewest  Sort = "newest"
	SortOldest  Sort = "oldest"
	SortLikes   Sort = "likes"
	SortReplies Sort = "replies"
	SortHighest Sort = "highest"
	SortLowest  Sort = "lowest"
	SortPlays   Sort = "plays"
)

type CommentType string

const (
	CommentTypeAll     CommentType = "all"
	CommentTypeReviews CommentType = "reviews"
	CommentTypeShouts  CommentType = "shouts"
)

type CommentItemType string

const (
	CommentItemAll      CommentItemType = "all"
	CommentItemMovies   CommentItemType = "movies"
	CommentItemShows    CommentItemType = "shows"
	CommentItemSeasons  CommentItemType = "seasons"
	CommentItemEpisodes CommentItemType = "episodes"
	CommentItemLists    CommentItemType = "lists"
)

type ListType string

const (
	ListPersonal  ListType = "personal"
	ListOfficial  ListType = "official"
	ListWatchlist ListType = "watchlist"
	ListFavorites ListType = "favorites"
)

type ListPrivacy string

const (
	PrivacyPrivate ListPrivacy = "private"
	PrivacyLink    ListPrivacy = "link"
	PrivacyFriends ListPrivacy = "friends"
	PrivacyPublic  ListPrivacy = "public"
)

type ListSortBy string

const (
	SortByRank       ListSortBy = "rank"
	SortByAdded      ListSortBy = "added"
	SortByTitle      ListSortBy = "title"
	SortByReleased   ListSortBy = "released"
	SortByRuntime    ListSortBy = "runtime"
	SortByPopularity ListSortBy = "popularity"
	SortByPercentage ListSortBy = "percentage"
	SortByVotes      ListSortBy = "votes"
	SortByMyRating   ListSortBy = "my_rating"
	SortByRandom     ListSortBy = "random"
	SortByWatched    ListSortBy = "watched"
	SortByCollected  ListSortBy = "collected"
)

type ListSortHow string

const (
	SortAsc  ListSortHow = "asc"
	SortDesc ListSortHow = "desc"
)

// MediaType is the movies/shows path segment shared by the genre, country and
// certification listings.
type MediaType string

const (
	Movies MediaType = "movies"
	Shows  MediaType = "shows"
)
