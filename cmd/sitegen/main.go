package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/cmd/sitegen/commands"
	"git.home.luguber.info/inful/sitegen/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("Static site generator: resolves front-mattered documents into a published site."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("sitegen %s (%s, built %s)", version.Version, version.GitCommit, version.BuildTime)},
		kong.Bind(&commands.Global{}),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
