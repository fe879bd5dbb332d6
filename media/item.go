package media

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"

	"github.com/ansg191/trakt/internal/required"
)

// ItemType tags the payload of an Item.
type ItemType string

const (
	ItemMovie   ItemType = "movie"
	ItemShow    ItemType = "show"
	ItemSeason  ItemType = "season"
	ItemEpisode ItemType = "episode"
	ItemList    ItemType = "list"
	ItemPerson  ItemType = "person"
)

// Item is a catalogue object tagged by Type. Exactly the field named by Type is set.
type Item struct {
	Type    ItemType `json:"type"`
	Movie   *Movie   `json:"movie,omitempty"`
	Show    *Show    `json:"show,omitempty"`
	Season  *Season  `json:"season,omitempty"`
	Episode *Episode `json:"episode,omitempty"`
	List    *List    `json:"list,omitempty"`
	Person  *Person  `json:"person,omitempty"`
}

type itemFields Item

var (
	itemSchema    = required.For(reflect.TypeFor[itemFields]())
	commentSchema = required.For(reflect.TypeFor[Comment]())
)

// UnmarshalJSON decodes the tagged object. The payload must carry every required
// field of its type.
func (it *Item) UnmarshalJSON(b []byte) error {
	if err := itemSchema.Check(b); err != nil {
		return fmt.Errorf("item: %w", err)
	}
	var f itemFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	var present bool
	switch f.Type {
	case ItemMovie:
		present = f.Movie != nil
	case ItemShow:
		present = f.Show != nil
	case ItemSeason:
		present = f.Season != nil
	case ItemEpisode:
		present = f.Episode != nil
	case ItemList:
		present = f.List != nil
	case ItemPerson:
		present = f.Person != nil
	default:
		return fmt.Errorf("item: unknown type %q", f.Type)
	}
	if !present {
		return fmt.Errorf("item: type %q without %s object", f.Type, f.Type)
	}
	*it = Item(f)
	return nil
}

// CommentWithItem is a comment together with the item it was posted on.
type CommentWithItem struct {
	Item
	Comment Comment `json:"comment"`
}

func (c *CommentWithItem) UnmarshalJSON(b []byte) error {
	var item Item
	if err := item.UnmarshalJSON(b); err != nil {
		return err
	}
	var rest struct {
		Comment json.RawMessage `json:"comment"`
	}
	if err := json.Unmarshal(b, &rest); err != nil {
		return err
	}
	if len(rest.Comment) == 0 || string(rest.Comment) == "null" {
		return fmt.Errorf("comment with item: missing comment")
	}
	if err := commentSchema.Check(rest.Comment); err != nil {
		return fmt.Errorf("comment with item: comment: %w", err)
	}
	var comment Comment
	if err := json.Unmarshal(rest.Comment, &comment); err != nil {
		return err
	}
	c.Item = item
	c.Comment = comment
	return nil
}
