package main

import (
	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/api/movies"
	"github.com/ansg191/trakt/api/search"
	"github.com/ansg191/trakt/transport"
)

type MovieCmd struct {
	ID       trakt.ID           `arg:"" help:"Trakt id, slug or IMDB id."`
	Extended trakt.ExtendedInfo `help:"Extended info levels, e.g. full,images." short:"x"`
}

func (c *MovieCmd) Run(g *Globals) error {
	client, timeout, err := g.client()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(timeout)
	defer cancel()

	res, err := transport.Do[movies.SummaryResponse](ctx, client, movies.SummaryRequest{ID: c.ID, Extended: c.Extended})
	if err != nil {
		return err
	}
	return printJSON(res.Movie)
}

type SearchCmd struct {
	Query string      `arg:"" help:"Text to search for."`
	Type  search.Type `help:"Result types, e.g. movie,show." short:"t" default:"movie,show"`
	Page  int         `help:"Page number." default:"1"`
	Limit int         `help:"Results per page." default:"10"`
}

func (c *SearchCmd) Run(g *Globals) error {
	client, timeout, err := g.client()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(timeout)
	defer cancel()

	res, err := transport.Do[search.TextResponse](ctx, client, search.TextRequest{
		Type:       c.Type,
		Query:      c.Query,
		Pagination: trakt.Pagination{Page: c.Page, Limit: c.Limit},
	})
	if err != nil {
		return err
	}
	return printJSON(res.Items.Items)
}

type TrendingCmd struct {
	Page  int `help:"Page number." default:"1"`
	Limit int `help:"Results per page." default:"10"`
}

func (c *TrendingCmd) Run(g *Globals) error {
	client, timeout, err := g.client()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(timeout)
	defer cancel()

	res, err := transport.Do[movies.TrendingResponse](ctx, client, movies.TrendingRequest{
		Pagination: trakt.Pagination{Page: c.Page, Limit: c.Limit},
	})
	if err != nil {
		return err
	}
	return printJSON(struct {
		Watching int                   `json:"watching"`
		Page     int                   `json:"page"`
		Pages    int                   `json:"pages"`
		Items    []movies.TrendingItem `json:"items"`
	}{res.UserCount, res.Items.Page, res.Items.PageCount, res.Items.Items})
}
