// Package simulator plays batches of independent games in parallel and
// aggregates their results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/gameid"
	"github.com/lox/hanabiforbots/internal/randutil"
	"github.com/lox/hanabiforbots/internal/statistics"
)

// ErrTimeout is returned when a game runs past Config.Timeout.
var ErrTimeout = errors.New("game timed out")

// AgentFactory seats agents for one game.
type AgentFactory func(state *game.GameState, rng *rand.Rand, logger *log.Logger) ([]game.Agent, error)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players int
	Seed    int64
	Workers int           // parallel games, defaults to GOMAXPROCS
	Timeout time.Duration // per game, zero disables
	Agent   string        // bot kind, see bot.Kinds
	Rules   *game.Rules   // defaults to game.DefaultRules
	Logger  *log.Logger
	Clock   quartz.Clock

	// Agents overrides Agent when set.
	Agents AgentFactory
	// OnGame is called with every finished game. Calls may come from several
	// goroutines at once.
	OnGame func(statistics.GameResult)
}

// Simulator runs batches of games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Rules == nil {
		rules := game.DefaultRules()
		config.Rules = &rules
	}
	if config.Agents == nil {
		kind := config.Agent
		config.Agents = func(state *game.GameState, rng *rand.Rand, logger *log.Logger) ([]game.Agent, error) {
			return bot.Seats(kind, state, rng, logger)
		}
	}
	config.Logger = config.Logger.WithPrefix("simulator")
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Game n always
// uses the seed randutil.Derive(Seed, n), so a batch is reproducible
// regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if cfg.Players < game.MinPlayers || cfg.Players > game.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidPlayerCount, cfg.Players)
	}

	start := cfg.Clock.Now()
	results := make([]statistics.GameResult, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for n := range cfg.Games {
		g.Go(func() error {
			result, err := s.PlayGame(ctx, n)
			if err != nil {
				return err
			}
			results[n] = result
			if cfg.OnGame != nil {
				cfg.OnGame(result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	cfg.Logger.Info("simulation complete",
		"games", stats.Games,
		"mean", fmt.Sprintf("%.2f", stats.Mean()),
		"wins", stats.Reasons[game.Win],
		"elapsed", cfg.Clock.Since(start))
	return stats, nil
}

// PlayGame plays the n-th game of the batch.
func (s *Simulator) PlayGame(ctx context.Context, n int) (statistics.GameResult, error) {
	cfg := s.config
	seed := randutil.Derive(cfg.Seed, n)
	rng := randutil.New(seed)
	id := gameid.NewGenerator(rng, cfg.Clock).Generate()
	logger := cfg.Logger.With("game", id)

	state, err := game.NewGame(cfg.Players, seed,
		game.WithRules(*cfg.Rules),
		game.WithLogger(logger),
		game.WithID(id))
	if err != nil {
		return statistics.GameResult{}, err
	}
	agents, err := cfg.Agents(state, rng, logger)
	if err != nil {
		return statistics.GameResult{}, err
	}
	engine, err := game.NewEngine(state, agents, logger)
	if err != nil {
		return statistics.GameResult{}, err
	}

	gameCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Timeout > 0 {
		timer := cfg.Clock.AfterFunc(cfg.Timeout, cancel)
		defer timer.Stop()
	}

	start := cfg.Clock.Now()
	res, err := engine.Run(gameCtx)
	if err != nil {
		if ctx.Err() == nil && gameCtx.Err() != nil {
			err = fmt.Errorf("%w after %v (game %d, seed %d)", ErrTimeout, cfg.Timeout, n, seed)
		}
		return statistics.GameResult{}, err
	}

	counters := state.Counters()
	result := statistics.GameResult{
		ID:       id,
		Seed:     seed,
		Players:  cfg.Players,
		Score:    res.Score,
		Reason:   res.Reason,
		Turns:    counters.Turn,
		Strikes:  counters.Strikes,
		Duration: cfg.Clock.Since(start),
	}
	logger.Debug("game finished", "reason", res.Reason, "score", res.Score, "turns", counters.Turn)
	return result, nil
}

// PrintSummary writes a report of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, cfg Config) {
	fmt.Fprintf(w, "\n=== RESULTS: %d players, %s agent ===\n", cfg.Players, cfg.Agent)
	fmt.Fprint(w, stats.Summary())

	fmt.Fprintf(w, "\n=== PERCENTILES ===\n")
	fmt.Fprintf(w, "P5=%.1f P25=%.1f P50=%.1f P75=%.1f P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Median(),
		stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== SCORE DISTRIBUTION ===\n")
	peak := 0
	for _, n := range stats.Histogram {
		peak = max(peak, n)
	}
	for score := 0; score <= hanabi.MaxScore; score++ {
		n := stats.Histogram[score]
		if n == 0 {
			continue
		}
		bar := strings.Repeat("#", max(1, n*40/max(1, peak)))
		fmt.Fprintf(w, "%2d %6d %s\n", score, n, bar)
	}
}
