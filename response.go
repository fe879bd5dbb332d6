package trakt

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
)

// Response is implemented by every endpoint response type, on its pointer.
type Response interface {
	Parse(res *HTTPResponse) error
}

// Pagination selects a page of a paginated listing. Embed it in a request
// type to add the page and limit query parameters.
type Pagination struct {
	Page  int `query:"page,omitempty" validate:"gte=0"`
	Limit int `query:"limit,omitempty" validate:"gte=0"`
}

// DefaultPagination is the first page with the API's default page size.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, Limit: 10}
}

const (
	HeaderPage      = "X-Pagination-Page"
	HeaderLimit     = "X-Pagination-Limit"
	HeaderPageCount = "X-Pagination-Page-Count"
	HeaderItemCount = "X-Pagination-Item-Count"
)

// Page is one page of a paginated listing. Use it as a response field tagged
// trakt:"pagination"; the items come from the body and the counters from the
// X-Pagination-* headers.
type Page[T any] struct {
	Items     []T
	Page      int
	Limit     int
	PageCount int
	ItemCount int
}

// Next returns the Pagination of the following page, if there is one.
func (p Page[T]) Next() (Pagination, bool) {
	if p.Page < p.PageCount {
		return Pagination{Page: p.Page + 1, Limit: p.Limit}, true
	}
	return Pagination{}, false
}

type pager interface {
	itemsType() reflect.Type
	decodePage(body []byte, h http.Header) error
	encodePage(h http.Header) ([]byte, error)
}

func (p *Page[T]) itemsType() reflect.Type {
	return reflect.TypeOf(p.Items)
}

func (p *Page[T]) decodePage(body []byte, h http.Header) error {
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return decodeError(err)
	}
	counters := []struct {
		name string
		dst  *int
	}{
		{HeaderPage, &p.Page},
		{HeaderLimit, &p.Limit},
		{HeaderPageCount, &p.PageCount},
		{HeaderItemCount, &p.ItemCount},
	}
	for _, c := range counters {
		v, err := headerInt(h, c.name, false)
		if err != nil {
			return err
		}
		*c.dst = int(v)
	}
	p.Items = items
	return nil
}

func (p *Page[T]) encodePage(h http.Header) ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	h.Set(HeaderPage, strconv.Itoa(p.Page))
	h.Set(HeaderLimit, strconv.Itoa(p.Limit))
	h.Set(HeaderPageCount, strconv.Itoa(p.PageCount))
	h.Set(HeaderItemCount, strconv.Itoa(p.ItemCount))
	return body, nil
}

// headerInt reads an integer header. A missing header is a ParseMissingHeader
// error unless optional is set, in which case it reads as zero.
func headerInt(h http.Header, name string, optional bool) (int64, error) {
	raw := h.Get(name)
	if raw == "" {
		if optional {
			return 0, nil
		}
		return 0, &ParseError{Kind: ParseMissingHeader, Header: name}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: ParseDecode, Header: name, Err: err}
	}
	return v, nil
}
