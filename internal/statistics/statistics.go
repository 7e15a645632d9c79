package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	ID       string
	Seed     int64 // seed the deck was shuffled with (for replay)
	Players  int
	Score    int
	Reason   game.FinishReason
	Turns    int
	Strikes  int
	Duration time.Duration
}

// Statistics accumulates results across a batch of games
type Statistics struct {
	Games     int
	SumScore  float64
	SumScore2 float64   // Sum of squares for variance calculation
	Values    []float64 // All scores for median/percentile calculation

	Reasons   [game.LossByTurns + 1]int // Games per finish reason, NotFinished unused
	Histogram [hanabi.MaxScore + 1]int  // Games per final score

	TotalTurns    int
	TotalStrikes  int
	TotalDuration time.Duration
	MaxDuration   time.Duration

	BestScore  int
	WorstScore int
}

// Mean returns the average final score
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// Variance returns the sample variance of the scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
	if v < 0 {
		// rounding on identical scores
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of the scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	score := float64(result.Score)
	if s.Games == 0 || result.Score > s.BestScore {
		s.BestScore = result.Score
	}
	if s.Games == 0 || result.Score < s.WorstScore {
		s.WorstScore = result.Score
	}

	s.Games++
	s.SumScore += score
	s.SumScore2 += score * score
	s.Values = append(s.Values, score)

	if r := result.Reason; r >= 0 && int(r) < len(s.Reasons) {
		s.Reasons[r]++
	}
	if result.Score >= 0 && result.Score < len(s.Histogram) {
		s.Histogram[result.Score]++
	}

	s.TotalTurns += result.Turns
	s.TotalStrikes += result.Strikes
	s.TotalDuration += result.Duration
	if result.Duration > s.MaxDuration {
		s.MaxDuration = result.Duration
	}
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of games that reached a perfect score
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Reasons[game.Win]) / float64(s.Games)
}

// MeanTurns returns the average game length in moves
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// MeanDuration returns the average wall time per game
func (s *Statistics) MeanDuration() time.Duration {
	if s.Games == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Games)
}

// Validate checks that the accumulated counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	reasons := 0
	for _, n := range s.Reasons {
		reasons += n
	}
	if reasons != s.Games {
		return fmt.Errorf("finish reasons total (%d) does not match games count (%d)", reasons, s.Games)
	}
	if s.Reasons[game.NotFinished] != 0 {
		return fmt.Errorf("%d games did not finish", s.Reasons[game.NotFinished])
	}

	scores := 0
	for _, n := range s.Histogram {
		scores += n
	}
	if scores != s.Games {
		return fmt.Errorf("score histogram total (%d) does not match games count (%d)", scores, s.Games)
	}
	if s.Histogram[hanabi.MaxScore] != s.Reasons[game.Win] {
		return fmt.Errorf("perfect scores (%d) do not match wins (%d)",
			s.Histogram[hanabi.MaxScore], s.Reasons[game.Win])
	}
	return nil
}

// Summary formats the headline numbers on a few lines
func (s *Statistics) Summary() string {
	var b strings.Builder
	lo, hi := s.ConfidenceInterval95()
	fmt.Fprintf(&b, "games: %d\n", s.Games)
	fmt.Fprintf(&b, "score: mean %.2f ± %.2f (95%% CI %.2f to %.2f), median %.1f, best %d, worst %d\n",
		s.Mean(), s.StdDev(), lo, hi, s.Median(), s.BestScore, s.WorstScore)
	fmt.Fprintf(&b, "outcome: win %d (%.1f%%), strikes %d, turns %d\n",
		s.Reasons[game.Win], 100*s.WinRate(), s.Reasons[game.LossByStrikes], s.Reasons[game.LossByTurns])
	fmt.Fprintf(&b, "length: %.1f moves, %.2f strikes per game\n",
		s.MeanTurns(), float64(s.TotalStrikes)/math.Max(1, float64(s.Games)))
	fmt.Fprintf(&b, "time: mean %s, max %s\n", s.MeanDuration(), s.MaxDuration)
	return b.String()
}
