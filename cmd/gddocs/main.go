package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/gddocs/cmd/gddocs/commands"
	"git.home.luguber.info/inful/gddocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gddocs"),
		kong.Description("Generate markdown documentation from GDScript class reference dumps"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
