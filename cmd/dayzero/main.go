package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/dayzero-app/dayzero/cmds"
)

type flags struct {
	cmds.LogFlags
	Watch   cmds.WatchCommand   `cmd:"" help:"watch the active incident timer"`
	Version cmds.VersionCommand `cmd:"" help:"print version"`
}

func main() {
	f := flags{}

	ctx := kong.Parse(&f,
		kong.Name("dayzero"),
		kong.Description("dayzero runs the live incident-free timer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		cmds.LogVars,
		cmds.WatchVars,
	)

	log, err := cmds.SetupLoggingFromFlags(&f.LogFlags, os.Stderr)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(log))
}
