package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are bound to one lipgloss renderer so colour detection follows the
// writer the console prints to, not the process's stdout.
type Styles struct {
	Header     lipgloss.Style
	Title      lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Prompt     lipgloss.Style
	Offer      lipgloss.Style
	PlayerCase lipgloss.Style
	OpenedCase lipgloss.Style
	ClosedCase lipgloss.Style
	LowPrize   lipgloss.Style
	HighPrize  lipgloss.Style
	Advice     lipgloss.Style
}

// NewStyles builds styles for w. With color false every style renders plain
// text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Offer: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		PlayerCase: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		OpenedCase: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		ClosedCase: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		LowPrize: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		HighPrize: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Advice: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
	}
}
