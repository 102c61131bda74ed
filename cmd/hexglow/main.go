package main

import (
	"github.com/alecthomas/kong"

	"hexglow/internal/cli"
)

func main() {
	var root cli.CLI
	ctx := kong.Parse(&root,
		kong.Name("hexglow"),
		kong.Description("Colorized hex dump for files and stdin."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&root))
}
