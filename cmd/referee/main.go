package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" help:"Run the move verification service"`
	Verify  VerifyCmd        `cmd:"" help:"Verify a single move request from a file or stdin"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("referee"),
		kong.Description("Authoritative move verifier for platform-hosted Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
