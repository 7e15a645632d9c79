package main

import (
	"context"
	"os"
	"time"

	"github.com/lox/hanabiforbots/internal/simulator"
)

// SimulateCmd runs batches of games
type SimulateCmd struct {
	Games   *int           `help:"Number of games (overrides config)"`
	Players *int           `short:"p" help:"Players per game, 2-5 (overrides config)"`
	Seed    *int64         `help:"Master seed; game n uses a seed derived from it (overrides config)"`
	Workers *int           `short:"w" help:"Games played in parallel, 0 for one per CPU (overrides config)"`
	Agent   string         `short:"a" help:"Agent for every seat: cheat, rand or discard (overrides config)"`
	Timeout *time.Duration `help:"Per-game timeout (overrides config)"`
}

func (c *SimulateCmd) Run(g *Globals, ctx context.Context) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.Games != nil {
		cfg.Simulation.Games = *c.Games
	}
	if c.Players != nil {
		cfg.Game.Players = *c.Players
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if c.Agent != "" {
		cfg.Simulation.Agent = c.Agent
	}
	if c.Timeout != nil {
		cfg.Simulation.Timeout = c.Timeout.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	rules := cfg.GameRules()
	simCfg := simulator.Config{
		Games:   cfg.Simulation.Games,
		Players: cfg.Game.Players,
		Seed:    cfg.Game.Seed,
		Workers: cfg.Simulation.Workers,
		Timeout: timeout,
		Agent:   cfg.Simulation.Agent,
		Rules:   &rules,
		Logger:  logger,
	}

	logger.Info("starting simulation",
		"games", simCfg.Games,
		"players", simCfg.Players,
		"agent", simCfg.Agent,
		"seed", simCfg.Seed)

	stats, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}
	simulator.PrintSummary(os.Stdout, stats, simCfg)
	return nil
}
