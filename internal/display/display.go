// Package display renders games as text for terminals and logs.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/game"
)

// Styles contains all styling for rendered games
type Styles struct {
	Header  lipgloss.Style
	Board   lipgloss.Style
	Label   lipgloss.Style
	Current lipgloss.Style
	Hidden  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Cards   [hanabi.NumColours + 1]lipgloss.Style
}

var cardColours = [hanabi.NumColours + 1]string{
	hanabi.Red:    "#FF6B6B",
	hanabi.Green:  "#04B575",
	hanabi.Blue:   "#5DADE2",
	hanabi.Yellow: "#FFD700",
	hanabi.Purple: "#B57EDC",
}

// Renderer formats views and outcomes
type Renderer struct {
	r      *lipgloss.Renderer
	styles Styles
}

// New creates a renderer for w. Colour is detected from w unless plain is
// set, which forces unstyled ASCII output.
func New(w io.Writer, plain bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	s := Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
		Label:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Current: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Hidden:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
	s.Cards[hanabi.NoColour] = s.Hidden
	for _, c := range hanabi.Colours(hanabi.NumColours) {
		s.Cards[c] = r.NewStyle().Foreground(lipgloss.Color(cardColours[c])).Bold(true)
	}
	return &Renderer{r: r, styles: s}
}

// Card renders one card, "??" when hidden.
func (d *Renderer) Card(c hanabi.Card) string {
	if !c.Valid() {
		return d.styles.Hidden.Render(hanabi.Card{}.String())
	}
	return d.styles.Cards[c.Colour].Render(c.String())
}

func (d *Renderer) cards(cs []hanabi.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = d.Card(c)
	}
	return strings.Join(parts, " ")
}

// View renders the board, every hand as the viewer sees it and the discards.
func (d *Renderer) View(v game.View) string {
	var b strings.Builder

	c := v.Counters
	header := fmt.Sprintf("Turn %d  Score %d/%d  Hints %d/%d  Strikes %d/%d  Deck %d",
		c.Turn, v.Score(), v.MaxScore(), c.Hints, game.MaxHints, c.Strikes, game.MaxStrikes, v.DeckRemaining)
	if c.CountdownActive {
		header += fmt.Sprintf("  Final turns %d", c.Countdown)
	}
	b.WriteString(d.styles.Header.Render(header))
	b.WriteString("\n")

	var piles []string
	for i, h := range v.PileHeights {
		colour := hanabi.Colour(i + 1)
		label := fmt.Sprintf("%s%d", colour.Letter(), h)
		piles = append(piles, d.styles.Cards[colour].Render(label))
	}
	board := d.styles.Label.Render("Piles") + "  " + strings.Join(piles, " ")

	var hands []string
	for _, h := range v.Hands {
		name := fmt.Sprintf("P%d", h.Player)
		if h.Player == v.Viewer {
			name += " (you)"
		}
		line := fmt.Sprintf("%-9s %s", name, d.cards(h.Cards))
		if v.Phase == game.PhaseInProgress && h.Player == v.CurrentPlayer {
			line = d.styles.Current.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		hands = append(hands, line)
	}

	discards := d.styles.Info.Render("none")
	if cs := v.Discards.Cards(); len(cs) > 0 {
		discards = d.cards(cs)
	}

	b.WriteString(d.styles.Board.Render(strings.Join([]string{
		board,
		strings.Join(hands, "\n"),
		d.styles.Label.Render("Discards") + "  " + discards,
	}, "\n")))

	if v.Phase == game.PhaseFinished {
		b.WriteString("\n")
		b.WriteString(d.Result(v.Result))
	}
	return b.String()
}

// Outcome renders a one-line summary of an applied move.
func (d *Renderer) Outcome(out game.Outcome) string {
	who := fmt.Sprintf("P%d", out.Player)
	var line string
	switch out.Move.Kind {
	case hanabi.ClueMove:
		clue := out.Move.Clue
		line = fmt.Sprintf("%s clues P%d %s: cards %v", who, clue.Target, clue.Value(), out.ClueMatches)
	case hanabi.DiscardMove:
		line = fmt.Sprintf("%s discards %s", who, d.Card(out.Card))
		if out.HintGained {
			line += d.styles.Success.Render(" +hint")
		}
	case hanabi.PlayMove:
		if out.Played {
			line = fmt.Sprintf("%s plays %s", who, d.Card(out.Card)) + d.styles.Success.Render(" ok")
			if out.BonusHint {
				line += d.styles.Success.Render(" +hint")
			}
		} else {
			line = fmt.Sprintf("%s misplays %s", who, d.Card(out.Card)) +
				d.styles.Error.Render(fmt.Sprintf(" strike %d", out.Counters.Strikes))
		}
	default:
		line = fmt.Sprintf("%s %s", who, out.Move)
	}
	if out.Finished {
		line += "\n" + d.Result(out.Result)
	}
	return line
}

// Result renders the end of a game.
func (d *Renderer) Result(r game.Result) string {
	text := fmt.Sprintf("Game over: %s, score %d/%d", r.Reason, r.Score, hanabi.MaxScore)
	if r.Reason == game.Win {
		return d.styles.Success.Render(text)
	}
	return d.styles.Error.Render(text)
}

// Observer returns a game.Observer that writes every outcome to w.
func (d *Renderer) Observer(w io.Writer) game.Observer {
	return func(out game.Outcome) {
		fmt.Fprintln(w, d.Outcome(out))
	}
}
