package statistics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/dealornodeal/internal/fileutil"
)

// DefaultFile is where statistics live when no path is configured.
const DefaultFile = "dealornodeal_stats.txt"

// Store owns the process-wide GameStats and the file backing them.
type Store struct {
	path   string
	stats  GameStats
	logger *log.Logger
}

// NewStore returns an empty store bound to path. Call Load to read it.
func NewStore(path string, logger *log.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		path:   path,
		logger: logger.WithPrefix("stats"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Stats returns a copy of the current totals.
func (s *Store) Stats() GameStats {
	return s.stats
}

// Record adds a finished game.
func (s *Store) Record(winnings float64) {
	s.stats.Record(winnings)
	s.logger.Debug("Recorded game", "winnings", winnings, "played", s.stats.GamesPlayed)
}

// Merge adds a batch of games, such as a simulation run.
func (s *Store) Merge(other GameStats) {
	s.stats.Merge(other)
	s.logger.Debug("Merged games", "games", other.GamesPlayed, "played", s.stats.GamesPlayed)
}

// Load reads the stats file. A missing, unreadable or corrupt file leaves the
// store zeroed; load never fails.
func (s *Store) Load() {
	s.stats = GameStats{}

	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Could not open statistics, starting fresh", "path", s.path, "error", err)
		}
		return
	}
	defer f.Close()

	stats, err := Decode(f)
	if err != nil {
		s.logger.Warn("Ignoring corrupt statistics file", "path", s.path, "error", err)
		return
	}
	s.stats = stats
	s.logger.Debug("Loaded statistics", "path", s.path, "played", stats.GamesPlayed)
}

// Save writes the current totals atomically.
func (s *Store) Save() error {
	err := fileutil.WriteAtomic(s.path, 0644, func(w io.Writer) error {
		return Encode(w, s.stats)
	})
	if err != nil {
		return fmt.Errorf("save statistics to %s: %w", s.path, err)
	}
	s.logger.Debug("Saved statistics", "path", s.path)
	return nil
}

// Reset zeroes the totals and deletes the backing file.
func (s *Store) Reset() error {
	s.stats = GameStats{}
	if err := fileutil.RemoveIfExists(s.path); err != nil {
		return fmt.Errorf("delete statistics file %s: %w", s.path, err)
	}
	return nil
}

// Encode writes stats as four lines: games played, games won, total
// winnings, best winning.
func Encode(w io.Writer, stats GameStats) error {
	_, err := fmt.Fprintf(w, "%d\n%d\n%s\n%s\n",
		stats.GamesPlayed,
		stats.GamesWon,
		strconv.FormatFloat(stats.TotalWinnings, 'f', -1, 64),
		strconv.FormatFloat(stats.BestWinning, 'f', -1, 64),
	)
	return err
}

// Decode parses the format written by Encode.
func Decode(r io.Reader) (GameStats, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(fields) < 4 {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields = append(fields, line)
	}
	if err := scanner.Err(); err != nil {
		return GameStats{}, err
	}
	if len(fields) < 4 {
		return GameStats{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	var (
		stats GameStats
		err   error
	)
	if stats.GamesPlayed, err = strconv.Atoi(fields[0]); err != nil {
		return GameStats{}, fmt.Errorf("games played: %w", err)
	}
	if stats.GamesWon, err = strconv.Atoi(fields[1]); err != nil {
		return GameStats{}, fmt.Errorf("games won: %w", err)
	}
	if stats.TotalWinnings, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return GameStats{}, fmt.Errorf("total winnings: %w", err)
	}
	if stats.BestWinning, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return GameStats{}, fmt.Errorf("best winning: %w", err)
	}
	if err := stats.Validate(); err != nil {
		return GameStats{}, err
	}
	return stats, nil
}
