// Package media holds the catalogue objects shared by the API packages.
package media

import (
	"github.com/ansg191/trakt"
)

type Movie struct {
	Title string    `json:"title"`
	Year  int       `json:"year"`
	IDs   trakt.IDs `json:"ids"`

	// Set with extended=full.
	Tagline               string      `json:"tagline,omitempty"`
	Overview              string      `json:"overview,omitempty"`
	Released              *trakt.Date `json:"released,omitempty"`
	Runtime               int         `json:"runtime,omitempty"`
	Country               string      `json:"country,omitempty"`
	Trailer               string      `json:"trailer,omitempty"`
	Homepage              string      `json:"homepage,omitempty"`
	Status                string      `json:"status,omitempty"`
	Rating                float64     `json:"rating,omitempty"`
	Votes                 int         `json:"votes,omitempty"`
	CommentCount          int         `json:"comment_count,omitempty"`
	Language              string      `json:"language,omitempty"`
	Genres                []string    `json:"genres,omitempty"`
	Certification         string      `json:"certification,omitempty"`
	AvailableTranslations []string    `json:"available_translations,omitempty"`
}

type Show struct {
	Title string    `json:"title"`
	Year  int       `json:"year"`
	IDs   trakt.IDs `json:"ids"`

	// Set with extended=full.
	Overview      string           `json:"overview,omitempty"`
	FirstAired    *trakt.Timestamp `json:"first_aired,omitempty"`
	Runtime       int              `json:"runtime,omitempty"`
	Certification string           `json:"certification,omitempty"`
	Network       string           `json:"network,omitempty"`
	Country       string           `json:"country,omitempty"`
	Status        string           `json:"status,omitempty"`
	Rating        float64          `json:"rating,omitempty"`
	Votes         int              `json:"votes,omitempty"`
	AiredEpisodes int              `json:"aired_episodes,omitempty"`
	Genres        []string         `json:"genres,omitempty"`
}

type Season struct {
	Number int       `json:"number"`
	IDs    trakt.IDs `json:"ids"`
}

type Episode struct {
	Season int       `json:"season"`
	Number int       `json:"number"`
	Title  string    `json:"title"`
	IDs    trakt.IDs `json:"ids"`
}

type Person struct {
	Name string    `json:"name"`
	IDs  trakt.IDs `json:"ids"`
}

type User struct {
	Username string    `json:"username"`
	Private  bool      `json:"private"`
	Name     string    `json:"name"`
	VIP      bool      `json:"vip"`
	VIPEP    bool      `json:"vip_ep"`
	IDs      trakt.IDs `json:"ids"`
}

type Studio struct {
	Name    string    `json:"name"`
	Country Country   `json:"country"`
	IDs     trakt.IDs `json:"ids"`
}

// Sharing selects the connected services a check-in or comment is posted to.
type Sharing struct {
	Twitter  bool `json:"twitter"`
	Mastodon bool `json:"mastodon"`
	Tumblr   bool `json:"tumblr"`
}

type UserStats struct {
	Rating         int `json:"rating"`
	PlayCount      int `json:"play_count"`
	CompletedCount int `json:"completed_count"`
}

type Comment struct {
	ID        uint64            `json:"id"`
	ParentID  *uint64           `json:"parent_id"`
	CreatedAt trakt.Timestamp   `json:"created_at"`
	UpdatedAt trakt.Timestamp   `json:"updated_at"`
	Comment   trakt.EmojiString `json:"comment"`
	Spoiler   bool              `json:"spoiler"`
	Review    bool              `json:"review"`
	Replies   int               `json:"replies"`
	Likes     int               `json:"likes"`
	UserStats UserStats         `json:"user_stats"`
	User      User              `json:"user"`
	Sharing   *Sharing          `json:"sharing,omitempty"`
}

type List struct {
	Name           trakt.EmojiString `json:"name"`
	Description    trakt.EmojiString `json:"description"`
	Privacy        ListPrivacy       `json:"privacy"`
	ShareLink      string            `json:"share_link"`
	Type           ListType          `json:"type"`
	DisplayNumbers bool              `json:"display_numbers"`
	AllowComments  bool              `json:"allow_comments"`
	SortBy         ListSortBy        `json:"sort_by"`
	SortHow        ListSortHow       `json:"sort_how"`
	CreatedAt      trakt.Timestamp   `json:"created_at"`
	UpdatedAt      trakt.Timestamp   `json:"updated_at"`
	ItemCount      int               `json:"item_count"`
	CommentCount   int               `json:"comment_count"`
	Likes          int               `json:"likes"`
	IDs            trakt.IDs         `json:"ids"`
	User           User              `json:"user"`
}

type Ratings struct {
	Rating       float64      `json:"rating"`
	Votes        int          `json:"votes"`
	Distribution Distribution `json:"distribution"`
}

type EpisodeAirEvent struct {
	FirstAired trakt.Timestamp `json:"first_aired"`
	Episode    Episode         `json:"episode"`
	Show       Show            `json:"show"`
}

type MovieReleaseEvent struct {
	Released trakt.Date `json:"released"`
	Movie    Movie      `json:"movie"`
}

// Ref names a catalogue object by its ids in request bodies.
type Ref struct {
	IDs trakt.IDs `json:"ids"`
}

// RefTo returns a Ref carrying only id.
func RefTo(id trakt.ID) *Ref {
	return &Ref{IDs: id.IDs()}
}
