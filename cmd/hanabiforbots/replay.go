package main

import (
	"fmt"
	"os"

	"github.com/lox/hanabiforbots/internal/display"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/replay"
)

// ReplayCmd re-runs a replay file
type ReplayCmd struct {
	File  string `arg:"" type:"existingfile" help:"Replay file written by play --save"`
	Show  bool   `help:"Print every move while replaying"`
	Plain bool   `help:"Disable colours"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	_, logger, err := g.load()
	if err != nil {
		return err
	}

	rec, err := replay.Load(c.File)
	if err != nil {
		return err
	}

	if c.Show {
		out := display.New(os.Stdout, c.Plain)
		state, err := replay.Play(rec, logger, out.Observer(os.Stdout))
		if err != nil {
			return err
		}
		fmt.Println(out.View(state.View(game.Spectator)))
	}

	if err := replay.Verify(rec); err != nil {
		return err
	}
	logger.Info("replay verified",
		"game", rec.Game,
		"moves", len(rec.Moves),
		"reason", rec.Result.Reason,
		"score", rec.Result.Score)
	return nil
}
