package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/display"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/gameid"
	"github.com/lox/hanabiforbots/internal/randutil"
	"github.com/lox/hanabiforbots/internal/replay"
)

// PlayCmd plays and prints a single game
type PlayCmd struct {
	Players *int   `short:"p" help:"Number of players, 2-5 (overrides config)"`
	Seed    *int64 `help:"Deck seed (defaults to the current time)"`
	Agent   string `short:"a" help:"Agent for every seat: cheat, rand or discard (overrides config)"`
	Board   bool   `help:"Print the board after every move"`
	Plain   bool   `help:"Disable colours"`
	Save    bool   `help:"Write a replay file to the configured replay directory"`
}

func (c *PlayCmd) Run(g *Globals, ctx context.Context) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.Players != nil {
		cfg.Game.Players = *c.Players
	}
	if c.Agent != "" {
		cfg.Simulation.Agent = c.Agent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	id := gameid.Generate()

	state, err := game.NewGame(cfg.Game.Players, seed,
		game.WithRules(cfg.GameRules()),
		game.WithLogger(logger),
		game.WithID(id))
	if err != nil {
		return err
	}
	agents, err := bot.Seats(cfg.Simulation.Agent, state, randutil.New(seed), logger)
	if err != nil {
		return err
	}
	engine, err := game.NewEngine(state, agents, logger)
	if err != nil {
		return err
	}

	out := display.New(os.Stdout, c.Plain)
	engine.Observe(out.Observer(os.Stdout))
	if c.Board {
		engine.Observe(func(game.Outcome) {
			fmt.Println(out.View(state.View(game.Spectator)))
		})
	}

	logger.Info("starting game", "game", id, "players", cfg.Game.Players, "seed", seed, "agent", cfg.Simulation.Agent)
	if _, err := engine.Run(ctx); err != nil {
		return err
	}
	if !c.Board {
		fmt.Println(out.View(state.View(game.Spectator)))
	}

	if c.Save || cfg.Replay.Save {
		path := filepath.Join(cfg.Replay.Dir, id+".toml")
		if err := replay.Save(path, replay.FromGame(state, time.Now())); err != nil {
			return fmt.Errorf("saving replay: %w", err)
		}
		logger.Info("replay saved", "path", path)
	}
	return nil
}
