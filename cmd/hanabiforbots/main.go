package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Play a batch of games with a built-in agent and report statistics"`
	Play     PlayCmd          `cmd:"" help:"Play one game and print every move"`
	Replay   ReplayCmd        `cmd:"" help:"Re-run a saved replay file and verify its result"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hanabiforbots"),
		kong.Description("Hanabi rules engine and bot simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.BindTo(sigCtx, (*context.Context)(nil))

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
