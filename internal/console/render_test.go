package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lox/dealornodeal/internal/game"
	"github.com/lox/dealornodeal/internal/simulator"
	"github.com/lox/dealornodeal/internal/statistics"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var out bytes.Buffer
	return NewRenderer(&out, plainStyles(&out)), &out
}

func TestCaseGrid(t *testing.T) {
	r, _ := newTestRenderer()
	state := game.State{PlayerCase: 0, Opened: make([]bool, 26)}
	state.Opened[1] = true
	state.Opened[25] = true

	grid := r.CaseGrid(state)
	lines := strings.Split(grid, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[ 1] XX   3 "))
	assert.True(t, strings.HasSuffix(lines[1], " 25  XX "))
}

func TestPrizeBoard(t *testing.T) {
	r, _ := newTestRenderer()
	got := r.PrizeBoard([]float64{1000000, 750, 500, 5, 0.01})
	assert.Equal(t, "Low Prizes: $0.01 $5.00 $500.00\nHigh Prizes: $1000000 $750", got)
}

func TestRenderStats(t *testing.T) {
	r, out := newTestRenderer()
	r.Stats(statistics.GameStats{GamesPlayed: 5, GamesWon: 2, TotalWinnings: 1234.56, BestWinning: 900})

	text := out.String()
	assert.Contains(t, text, "Games Played: 5")
	assert.Contains(t, text, "Games Won: 2")
	assert.Contains(t, text, "Win Rate: 40.0%")
	assert.Contains(t, text, "Total Winnings: $1234.56")
	assert.Contains(t, text, "Best Winning: $900.00")
	assert.Contains(t, text, "Average Winning: $246.91")
}

func TestRenderRulesAndMenu(t *testing.T) {
	r, out := newTestRenderer()
	r.Menu()
	r.Rules()

	text := out.String()
	assert.Contains(t, text, "1. Play Game (Human Player)")
	assert.Contains(t, text, "6. Exit")
	assert.Contains(t, text, "Prizes range from $0.01 to $1,000,000")
}

func TestNarratorEvents(t *testing.T) {
	r, out := newTestRenderer()
	n := r.Narrator()

	n.OnEvent(game.CaseChosenEvent{PlayerCase: 4})
	n.OnEvent(game.OfferEvent{Offer: 1500})
	n.OnEvent(game.DecisionEvent{Accepted: false})
	n.OnEvent(game.DecisionEvent{Accepted: true})
	n.OnEvent(game.GameOverEvent{Result: game.Result{Outcome: game.DealAccepted, Winnings: 1500, PlayerPrize: 10}})

	text := out.String()
	assert.Contains(t, text, "Computer chose case 5")
	assert.Contains(t, text, "Bank Offer: $1500.00")
	assert.Contains(t, text, "Computer says: NO DEAL!")
	assert.Contains(t, text, "Computer says: DEAL!")
	assert.Contains(t, text, "Computer won: $1500.00")
	assert.Contains(t, text, "Computer's case contained: $10.00")
}

func TestGameOverNoDeal(t *testing.T) {
	r, out := newTestRenderer()
	r.GameOver(game.Result{Outcome: game.CasesExhausted, Winnings: 75000, PlayerPrize: 75000})

	assert.Contains(t, out.String(), "No more deals! You're going home with your case!")
	assert.Contains(t, out.String(), "Your case contained: $75000.00!")
}

func TestThousands(t *testing.T) {
	assert.Equal(t, "1,000,000", Thousands(1000000))
	assert.Equal(t, "750", Thousands(750))
	assert.Equal(t, "1,000", Thousands(1000))
	assert.Equal(t, "100,000", Thousands(100000))
}

func TestRenderSimulation(t *testing.T) {
	r, out := newTestRenderer()
	r.Simulation(simulator.Summary{
		Stats:      statistics.GameStats{GamesPlayed: 4, GamesWon: 4, TotalWinnings: 2000, BestWinning: 1200},
		Deals:      3,
		NoDeals:    1,
		DealRounds: map[int]int{5: 1, 2: 2},
		BestOffer:  1500,
		Elapsed:    1500 * time.Millisecond,
	})

	got := out.String()
	assert.Contains(t, got, "Games Played: 4 (1.5s)")
	assert.Contains(t, got, "Deals Taken: 3 (75.0%)")
	assert.Contains(t, got, "Played To The End: 1")
	assert.Contains(t, got, "Average Winning: $500.00")
	assert.Contains(t, got, "Best Offer: $1500.00")
	assert.Less(t, strings.Index(got, "Round 2: 2"), strings.Index(got, "Round 5: 1"))
}
