package console

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/lox/dealornodeal/internal/game"
	"github.com/lox/dealornodeal/internal/prize"
	"github.com/lox/dealornodeal/internal/simulator"
	"github.com/lox/dealornodeal/internal/statistics"
)

const (
	ruleWidth   = 50
	casesPerRow = 13
)

// Renderer prints game screens. It observes a game engine; verbose mode is
// the interactive board, terse mode narrates a computer game.
type Renderer struct {
	out     io.Writer
	styles  Styles
	verbose bool
	actor   string // "You" or "Computer"
}

// NewRenderer returns a renderer for an interactive game.
func NewRenderer(out io.Writer, styles Styles) *Renderer {
	return &Renderer{out: out, styles: styles, verbose: true, actor: "You"}
}

// Narrator returns a renderer that narrates the computer's moves.
func (r *Renderer) Narrator() *Renderer {
	return &Renderer{out: r.out, styles: r.styles, verbose: false, actor: "Computer"}
}

func (r *Renderer) rule() string {
	return strings.Repeat("=", ruleWidth)
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// OnEvent implements game.Observer.
func (r *Renderer) OnEvent(e game.GameEvent) {
	switch ev := e.(type) {
	case game.CaseChosenEvent:
		if r.verbose {
			r.printf("\nYou chose case %d!\n", ev.PlayerCase+1)
			r.println("Now let's see what's in the other cases...")
		} else {
			r.printf("Computer chose case %d\n", ev.PlayerCase+1)
		}

	case game.RoundStartEvent:
		if r.verbose {
			r.Board(ev.State)
			r.printf("\nSelect %d case(s) to open:\n", ev.CasesToOpen)
		} else {
			r.println()
			r.println(r.styles.Title.Render(fmt.Sprintf("=== ROUND %d ===", ev.State.Round)))
		}

	case game.CaseOpenedEvent:
		r.printf("Case %d contained: %s\n", ev.Case+1, r.styles.Offer.Render(Money(ev.Value)))

	case game.OfferEvent:
		if r.verbose {
			r.println()
			r.println(r.rule())
			r.println(r.styles.Offer.Render("THE BANK OFFERS: " + Money(ev.Offer)))
			r.println(r.rule())
		} else {
			r.printf("\nBank Offer: %s\n", r.styles.Offer.Render(Money(ev.Offer)))
		}

	case game.DecisionEvent:
		if !r.verbose {
			if ev.Accepted {
				r.println(r.styles.Success.Render("Computer says: DEAL!"))
			} else {
				r.println(r.styles.Warning.Render("Computer says: NO DEAL!"))
			}
		}

	case game.GameOverEvent:
		r.GameOver(ev.Result)
	}
}

// Board prints the case grid and the prizes still in play.
func (r *Renderer) Board(state game.State) {
	r.println(r.styles.Header.Render(fmt.Sprintf(" DEAL OR NO DEAL - ROUND %d ", state.Round)))
	r.printf("Your Case: %d\n", state.PlayerCase+1)
	r.println("\nCases Status:")
	r.println(r.CaseGrid(state))
	r.println("\nRemaining Prizes:")
	r.println(r.PrizeBoard(state.Remaining))
}

// CaseGrid lays the cases out 13 to a row: the player's case in brackets,
// opened cases as XX.
func (r *Renderer) CaseGrid(state game.State) string {
	var b strings.Builder
	for i, opened := range state.Opened {
		switch {
		case i == state.PlayerCase:
			b.WriteString(r.styles.PlayerCase.Render(fmt.Sprintf("[%2d]", i+1)))
		case opened:
			b.WriteString(r.styles.OpenedCase.Render(" XX "))
		default:
			b.WriteString(r.styles.ClosedCase.Render(fmt.Sprintf(" %2d ", i+1)))
		}
		if (i+1)%casesPerRow == 0 && i+1 < len(state.Opened) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PrizeBoard lists low prizes ascending with cents and high prizes
// descending in whole dollars. remaining must be sorted descending.
func (r *Renderer) PrizeBoard(remaining []float64) string {
	var low, high []string
	for _, v := range slices.Backward(remaining) {
		if v <= prize.LowPrizeLimit {
			low = append(low, fmt.Sprintf("$%.2f", v))
		}
	}
	for _, v := range remaining {
		if v > prize.LowPrizeLimit {
			high = append(high, fmt.Sprintf("$%.0f", v))
		}
	}
	return "Low Prizes: " + r.styles.LowPrize.Render(strings.Join(low, " ")) +
		"\nHigh Prizes: " + r.styles.HighPrize.Render(strings.Join(high, " "))
}

// GameOver prints the final payout and reveals the player's case.
func (r *Renderer) GameOver(result game.Result) {
	switch {
	case result.Outcome == game.DealAccepted && r.verbose:
		r.println()
		r.println(r.styles.Success.Render(fmt.Sprintf("Congratulations! You won %s!", Money(result.Winnings))))
		r.printf("Your case contained: %s\n", Money(result.PlayerPrize))
	case result.Outcome == game.DealAccepted:
		r.printf("Computer won: %s\n", Money(result.Winnings))
		r.printf("Computer's case contained: %s\n", Money(result.PlayerPrize))
	case r.verbose:
		r.println("\nNo more deals! You're going home with your case!")
		r.println(r.styles.Success.Render(fmt.Sprintf("Your case contained: %s!", Money(result.PlayerPrize))))
	default:
		r.printf("\nComputer's final case contained: %s!\n", Money(result.PlayerPrize))
	}
}

// Stats prints cumulative statistics.
func (r *Renderer) Stats(s statistics.GameStats) {
	r.println()
	r.println(r.styles.Title.Render("=== GAME STATISTICS ==="))
	r.printf("Games Played: %d\n", s.GamesPlayed)
	r.printf("Games Won: %d\n", s.GamesWon)
	r.printf("Win Rate: %.1f%%\n", s.WinRate())
	r.printf("Total Winnings: %s\n", Money(s.TotalWinnings))
	r.printf("Best Winning: %s\n", Money(s.BestWinning))
	r.printf("Average Winning: %s\n", Money(s.Average()))
}

// Simulation prints the outcome of a batch of computer games.
func (r *Renderer) Simulation(s simulator.Summary) {
	r.println()
	r.println(r.styles.Title.Render("=== SIMULATION RESULTS ==="))
	r.printf("Games Played: %d (%s)\n", s.Stats.GamesPlayed, s.Elapsed.Round(time.Millisecond))
	r.printf("Deals Taken: %d (%.1f%%)\n", s.Deals, s.DealRate())
	r.printf("Played To The End: %d\n", s.NoDeals)
	r.printf("Average Winning: %s\n", Money(s.Stats.Average()))
	r.printf("Best Winning: %s\n", Money(s.Stats.BestWinning))
	r.printf("Best Offer: %s\n", Money(s.BestOffer))
	if len(s.DealRounds) == 0 {
		return
	}
	r.println("Deals by round:")
	rounds := slices.Sorted(maps.Keys(s.DealRounds))
	for _, round := range rounds {
		r.printf("  Round %d: %d\n", round, s.DealRounds[round])
	}
}

// Menu prints the main menu.
func (r *Renderer) Menu() {
	r.println()
	r.println(r.rule())
	r.println(r.styles.Header.Render("        DEAL OR NO DEAL - MAIN MENU        "))
	r.println(r.rule())
	for i, item := range menuItems {
		r.printf("%d. %s\n", i+1, item.label)
	}
	r.println(r.rule())
}

// Rules prints how the game works.
func (r *Renderer) Rules() {
	r.println()
	r.println(r.rule())
	r.println(r.styles.Title.Render("                 GAME RULES"))
	r.println(r.rule())
	r.println("1. Choose your lucky case (1-26)")
	r.println("2. Open other cases to reveal their prizes")
	r.println("3. The bank will make offers based on remaining prizes")
	r.println("4. Decide: DEAL (accept offer) or NO DEAL (continue)")
	r.println("5. If you reject all offers, you win your case's prize")
	r.println("6. AI Advisor provides recommendations")
	r.println("7. Computer player uses advanced strategy")
	set := prize.Standard()
	r.printf("\nPrizes range from %s to $%s\n", Money(set.Min()), Thousands(set.Max()))
	r.println(r.rule())
}

// Info prints a dim informational line.
func (r *Renderer) Info(msg string) {
	r.println(r.styles.Info.Render(msg))
}

// Success prints a confirmation line.
func (r *Renderer) Success(msg string) {
	r.println(r.styles.Success.Render(msg))
}

// Error prints an error line.
func (r *Renderer) Error(msg string) {
	r.println(r.styles.Error.Render(msg))
}

// Warning prints a warning line.
func (r *Renderer) Warning(msg string) {
	r.println(r.styles.Warning.Render(msg))
}

// Money formats v as dollars and cents.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Thousands formats a whole-dollar amount with comma separators.
func Thousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Title prints a highlighted heading.
func (r *Renderer) Title(msg string) {
	r.println(r.styles.Title.Render(msg))
}
