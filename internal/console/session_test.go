package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dealornodeal/internal/statistics"
)

type sessionHarness struct {
	session *Session
	store   *statistics.Store
	out     *bytes.Buffer
	path    string
}

func newSessionHarness(t *testing.T, input string) *sessionHarness {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	path := filepath.Join(t.TempDir(), "stats.txt")
	store := statistics.NewStore(path, logger)
	store.Load()

	var out bytes.Buffer
	session := NewSession(SessionConfig{
		In:         strings.NewReader(input),
		Out:        &out,
		ShowAdvice: true,
		Seed:       42,
		Store:      store,
		Clock:      quartz.NewMock(t),
		Logger:     logger,
	})
	return &sessionHarness{session: session, store: store, out: &out, path: path}
}

func TestSession_ComputerGameThenStatsThenExit(t *testing.T) {
	h := newSessionHarness(t, "2\n3\n6\n")
	require.NoError(t, h.session.Run(context.Background()))

	text := h.out.String()
	assert.Contains(t, text, "Computer Player is playing...")
	assert.Contains(t, text, "Computer chose case")
	assert.Contains(t, text, "=== ROUND 1 ===")
	assert.Contains(t, text, "Games Played: 1")
	assert.Contains(t, text, "Thank you for playing Deal or No Deal!")

	assert.Equal(t, 1, h.store.Stats().GamesPlayed)
	_, err := os.Stat(h.path)
	assert.NoError(t, err, "stats are saved after each game")
}

func TestSession_HumanTakesFirstOffer(t *testing.T) {
	// Play, pick case 26, try to open it (refused), open 1-6, then deal.
	input := strings.Join([]string{
		"1",
		"26",
		"26", "1", "2", "3", "4", "5", "6",
		"maybe", "y",
		"6",
	}, "\n") + "\n"
	h := newSessionHarness(t, input)
	require.NoError(t, h.session.Run(context.Background()))

	text := h.out.String()
	assert.Contains(t, text, "You chose case 26!")
	assert.Contains(t, text, "DEAL OR NO DEAL - ROUND 1")
	assert.Contains(t, text, "You can't open your own case!")
	assert.Contains(t, text, "THE BANK OFFERS: $")
	assert.Contains(t, text, "=== AI ADVISOR ===")
	assert.Contains(t, text, "Please enter 'y' or 'n'.")
	assert.Contains(t, text, "Congratulations! You won $")

	stats := h.store.Stats()
	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 1, stats.GamesWon)
}

func TestSession_InputEndsMidGame(t *testing.T) {
	h := newSessionHarness(t, "1\n5\n1\n")
	require.NoError(t, h.session.Run(context.Background()))
	assert.Zero(t, h.store.Stats().GamesPlayed, "abandoned games are not recorded")
}

func TestSession_ResetStatistics(t *testing.T) {
	h := newSessionHarness(t, "2\n4\n3\n6\n")
	require.NoError(t, h.session.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Statistics reset successfully!")
	assert.Contains(t, h.out.String(), "Games Played: 0")
	assert.Equal(t, statistics.GameStats{}, h.store.Stats())
	_, err := os.Stat(h.path)
	assert.True(t, os.IsNotExist(err))
}

func TestSession_InvalidMenuChoiceReprompts(t *testing.T) {
	h := newSessionHarness(t, "9\nx\n5\n6\n")
	require.NoError(t, h.session.Run(context.Background()))

	text := h.out.String()
	assert.Contains(t, text, "Input out of range (1-6)")
	assert.Contains(t, text, "GAME RULES")
}

func TestSession_SaveFailureWarns(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	store := statistics.NewStore(filepath.Join(t.TempDir(), "no-such-dir", "stats.txt"), logger)

	var out bytes.Buffer
	session := NewSession(SessionConfig{
		In:     strings.NewReader(""),
		Out:    &out,
		Seed:   1,
		Store:  store,
		Clock:  quartz.NewMock(t),
		Logger: logger,
	})

	result, err := session.PlayComputer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, out.String(), "Warning: Could not save statistics")
	assert.Equal(t, 1, store.Stats().GamesPlayed)
}

func TestSession_SeededGamesAreReproducible(t *testing.T) {
	a := newSessionHarness(t, "")
	b := newSessionHarness(t, "")

	ra, err := a.session.PlayComputer(context.Background())
	require.NoError(t, err)
	rb, err := b.session.PlayComputer(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ra.PlayerCase, rb.PlayerCase)
	assert.Equal(t, ra.Winnings, rb.Winnings)
	assert.Equal(t, ra.Offers, rb.Offers)
}

func TestSession_CancelWhileWaitingForMenuChoice(t *testing.T) {
	in, feed := io.Pipe()
	defer feed.Close()
	screen, outW := io.Pipe()
	defer screen.Close()

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	store := statistics.NewStore(filepath.Join(t.TempDir(), "stats.txt"), logger)
	session := NewSession(SessionConfig{
		In:     in,
		Out:    outW,
		Seed:   1,
		Store:  store,
		Clock:  quartz.NewMock(t),
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	// Wait until the menu is asking for input, then keep draining output.
	var seen strings.Builder
	buf := make([]byte, 1024)
	for !strings.Contains(seen.String(), "Enter your choice") {
		n, err := screen.Read(buf)
		require.NoError(t, err)
		seen.Write(buf[:n])
	}
	go func() { _, _ = io.Copy(io.Discard, screen) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancellation")
	}
	assert.Zero(t, store.Stats().GamesPlayed)
}

func TestSession_DefaultsLogger(t *testing.T) {
	store := statistics.NewStore(filepath.Join(t.TempDir(), "stats.txt"), log.NewWithOptions(io.Discard, log.Options{}))
	var out bytes.Buffer
	session := NewSession(SessionConfig{
		In:    strings.NewReader(""),
		Out:   &out,
		Seed:  3,
		Store: store,
		Clock: quartz.NewMock(t),
	})

	result, err := session.PlayComputer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, store.Stats().GamesPlayed)
}
