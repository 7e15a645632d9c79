package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/hanabiforbots/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"hanabi.hcl" type:"path" help:"Config file (.hcl, .yaml or .yml); defaults apply when missing"`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)"`
	Debug    bool   `help:"Shorthand for --log-level=debug"`
}

// load reads the config file, applies global overrides and builds the logger.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	return cfg, newLogger(cfg.LogLevel()), nil
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}
