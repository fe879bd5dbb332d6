package main

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Globals

	Version   VersionCmd   `cmd:"" help:"Print version information."`
	Endpoints EndpointsCmd `cmd:"" help:"List the bound API endpoints."`
	Check     CheckCmd     `cmd:"" help:"Statically verify endpoint definitions."`
	Movie     MovieCmd     `cmd:"" help:"Show a movie summary."`
	Search    SearchCmd    `cmd:"" help:"Search the catalogue by text."`
	Trending  TrendingCmd  `cmd:"" help:"List trending movies."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("trakt"),
		kong.Description("Command line client for the Trakt API."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
