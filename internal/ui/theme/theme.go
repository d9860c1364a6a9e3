package theme

import (
	"github.com/charmbracelet/lipgloss"

	diagdomain "sehat/internal/modules/diagnosis/domain"
)

var (
	Base     = lipgloss.Color("#0b1220")
	Mantle   = lipgloss.Color("#0f172a")
	Surface0 = lipgloss.Color("#1e293b")
	Surface1 = lipgloss.Color("#334155")
	Text     = lipgloss.Color("#e2e8f0")
	Subtext0 = lipgloss.Color("#94a3b8")
	Cyan     = lipgloss.Color("#22d3ee")
	Teal     = lipgloss.Color("#2dd4bf")
	Green    = lipgloss.Color("#4ade80")
	Amber    = lipgloss.Color("#fbbf24")
	Rose     = lipgloss.Color("#fb7185")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Cyan)

	Title  = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	Danger = lipgloss.NewStyle().Foreground(Rose).Bold(true)
)

// Risk returns the style for a risk badge.
func Risk(level diagdomain.RiskLevel) lipgloss.Style {
	switch level {
	case diagdomain.RiskHigh:
		return lipgloss.NewStyle().Foreground(Rose).Bold(true)
	case diagdomain.RiskMedium:
		return lipgloss.NewStyle().Foreground(Amber).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	}
}
