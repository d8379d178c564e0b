// Package statistics tracks cumulative game outcomes across sessions and
// persists them to a small text file.
package statistics

import "fmt"

// GameStats aggregates the outcome of every completed game.
type GameStats struct {
	GamesPlayed   int
	GamesWon      int     // games with winnings > 0
	TotalWinnings float64 // sum of all winnings
	BestWinning   float64
}

// Record folds one finished game into the totals.
func (s *GameStats) Record(winnings float64) {
	s.GamesPlayed++
	s.TotalWinnings += winnings
	if winnings > s.BestWinning {
		s.BestWinning = winnings
	}
	if winnings > 0 {
		s.GamesWon++
	}
}

// Average returns the mean winning per game played.
func (s GameStats) Average() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return s.TotalWinnings / float64(s.GamesPlayed)
}

// WinRate returns the percentage of games with a positive payout.
func (s GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// Merge adds other's totals into s.
func (s *GameStats) Merge(other GameStats) {
	s.GamesPlayed += other.GamesPlayed
	s.GamesWon += other.GamesWon
	s.TotalWinnings += other.TotalWinnings
	if other.BestWinning > s.BestWinning {
		s.BestWinning = other.BestWinning
	}
}

// Validate checks the counters are mutually consistent. Loaded files that
// fail validation are discarded.
func (s GameStats) Validate() error {
	if s.GamesPlayed < 0 || s.GamesWon < 0 {
		return fmt.Errorf("negative game count: played=%d won=%d", s.GamesPlayed, s.GamesWon)
	}
	if s.GamesWon > s.GamesPlayed {
		return fmt.Errorf("games won (%d) exceeds games played (%d)", s.GamesWon, s.GamesPlayed)
	}
	if s.TotalWinnings < 0 || s.BestWinning < 0 {
		return fmt.Errorf("negative winnings: total=%.2f best=%.2f", s.TotalWinnings, s.BestWinning)
	}
	if s.BestWinning > s.TotalWinnings {
		return fmt.Errorf("best winning %.2f exceeds total %.2f", s.BestWinning, s.TotalWinnings)
	}
	return nil
}
