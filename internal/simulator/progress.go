package simulator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/dealornodeal/internal/game"
)

const (
	barPadding  = 2
	barMaxWidth = 60
)

type gameDoneMsg struct {
	result *game.Result
}

type gameErrMsg struct {
	err error
}

// ProgressModel is a bubbletea model that plays one game per command and
// draws a progress bar between them.
type ProgressModel struct {
	ctx  context.Context
	sim  *Simulator
	bar  progress.Model
	info lipgloss.Style

	last *game.Result
	err  error
	done bool
}

// NewProgressModel wraps sim for display.
func NewProgressModel(ctx context.Context, sim *Simulator) *ProgressModel {
	return &ProgressModel{
		ctx:  ctx,
		sim:  sim,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(barMaxWidth)),
		info: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

func (m *ProgressModel) Init() tea.Cmd {
	return m.playNext()
}

func (m *ProgressModel) playNext() tea.Cmd {
	return func() tea.Msg {
		result, err := m.sim.Step(m.ctx)
		if err != nil {
			return gameErrMsg{err: err}
		}
		return gameDoneMsg{result: result}
	}
}

func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = context.Canceled
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-barPadding*2-4, barMaxWidth)

	case gameDoneMsg:
		m.last = msg.result
		if m.sim.Done() {
			m.done = true
			return m, tea.Quit
		}
		return m, m.playNext()

	case gameErrMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *ProgressModel) View() string {
	pad := strings.Repeat(" ", barPadding)
	summary := m.sim.Summary()
	percent := float64(m.sim.Played()) / float64(m.sim.Total())

	var b strings.Builder
	b.WriteString("\n" + pad + m.bar.ViewAs(percent) + "\n\n")
	b.WriteString(pad + fmt.Sprintf("%d/%d games  deals %d  average $%.2f",
		m.sim.Played(), m.sim.Total(), summary.Deals, summary.Stats.Average()) + "\n")
	if m.last != nil {
		b.WriteString(pad + m.info.Render(fmt.Sprintf("last: %s in round %d for $%.2f",
			m.last.Outcome, m.last.Round, m.last.Winnings)) + "\n")
	}
	if !m.done && m.err == nil {
		b.WriteString("\n" + pad + m.info.Render("Press q to stop") + "\n")
	}
	return b.String()
}

// Err returns the error that stopped the simulation, if any.
func (m *ProgressModel) Err() error {
	return m.err
}

// Done reports whether every game finished.
func (m *ProgressModel) Done() bool {
	return m.done
}

// RunWithProgress runs the simulation under a bubbletea program.
func RunWithProgress(ctx context.Context, sim *Simulator, in io.Reader, out io.Writer) (Summary, error) {
	model := NewProgressModel(ctx, sim)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil {
		return sim.Summary(), fmt.Errorf("progress UI: %w", err)
	}
	if err := model.Err(); err != nil {
		return sim.Summary(), err
	}

	summary := sim.Summary()
	if err := summary.Stats.Validate(); err != nil {
		return summary, fmt.Errorf("statistics validation failed: %w", err)
	}
	return summary, nil
}
