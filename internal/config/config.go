// Package config loads CLI settings from HCL or YAML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/game"
)

// Config represents the complete configuration
type Config struct {
	Game       *GameSettings       `hcl:"game,block" yaml:"game"`
	Rules      *RulesSettings      `hcl:"rules,block" yaml:"rules"`
	Simulation *SimulationSettings `hcl:"simulation,block" yaml:"simulation"`
	Log        *LogSettings        `hcl:"log,block" yaml:"log"`
	Replay     *ReplaySettings     `hcl:"replay,block" yaml:"replay"`
}

// GameSettings configures the table
type GameSettings struct {
	Players int   `hcl:"players,optional" yaml:"players"`
	Seed    int64 `hcl:"seed,optional" yaml:"seed"`
}

// RulesSettings toggles rule variants. Unset values keep the standard rules.
type RulesSettings struct {
	DiscardAtMaxHints   *bool `hcl:"discard_at_max_hints,optional" yaml:"discard_at_max_hints"`
	BonusHintOnComplete *bool `hcl:"bonus_hint_on_complete,optional" yaml:"bonus_hint_on_complete"`
	ZeroOnStrikeout     *bool `hcl:"zero_on_strikeout,optional" yaml:"zero_on_strikeout"`
	RequireClueMatch    *bool `hcl:"require_clue_match,optional" yaml:"require_clue_match"`
}

// SimulationSettings configures batch runs
type SimulationSettings struct {
	Games   int    `hcl:"games,optional" yaml:"games"`
	Workers int    `hcl:"workers,optional" yaml:"workers"`
	Timeout string `hcl:"timeout,optional" yaml:"timeout"`
	Agent   string `hcl:"agent,optional" yaml:"agent"`
}

// LogSettings configures logging
type LogSettings struct {
	Level string `hcl:"level,optional" yaml:"level"`
}

// ReplaySettings configures where replay files go
type ReplaySettings struct {
	Dir  string `hcl:"dir,optional" yaml:"dir"`
	Save bool   `hcl:"save,optional" yaml:"save"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an .hcl, .yaml or .yml file. A missing file
// yields Default.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(data, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Players == 0 {
		c.Game.Players = 3
	}

	if c.Rules == nil {
		c.Rules = &RulesSettings{}
	}
	std := game.DefaultRules()
	setDefault(&c.Rules.DiscardAtMaxHints, std.DiscardAtMaxHints)
	setDefault(&c.Rules.BonusHintOnComplete, std.BonusHintOnComplete)
	setDefault(&c.Rules.ZeroOnStrikeout, std.ZeroOnStrikeout)
	setDefault(&c.Rules.RequireClueMatch, std.RequireClueMatch)

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = 1000
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = "10s"
	}
	if c.Simulation.Agent == "" {
		c.Simulation.Agent = "cheat"
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Replay == nil {
		c.Replay = &ReplaySettings{}
	}
	if c.Replay.Dir == "" {
		c.Replay.Dir = "replays"
	}
}

func setDefault(p **bool, v bool) {
	if *p == nil {
		*p = &v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Players < game.MinPlayers || c.Game.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, c.Game.Players)
	}
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation workers must not be negative, got %d", c.Simulation.Workers)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if !slices.Contains(bot.Kinds, c.Simulation.Agent) {
		return fmt.Errorf("invalid agent %q (want one of %v)", c.Simulation.Agent, bot.Kinds)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// Timeout returns the per-game simulation timeout
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid simulation timeout %q: %w", c.Simulation.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("simulation timeout must not be negative, got %s", d)
	}
	return d, nil
}

// GameRules converts the rule settings for the engine
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		DiscardAtMaxHints:   *c.Rules.DiscardAtMaxHints,
		BonusHintOnComplete: *c.Rules.BonusHintOnComplete,
		ZeroOnStrikeout:     *c.Rules.ZeroOnStrikeout,
		RequireClueMatch:    *c.Rules.RequireClueMatch,
	}
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
