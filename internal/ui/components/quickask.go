package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sehat/internal/ui/theme"
)

// QuickAskSubmitMsg is emitted when the user confirms a question. The root
// model turns it into SetInitialQuery + SetView(chat).
type QuickAskSubmitMsg struct{ Query string }

// QuickAskCancelMsg is emitted when the user presses esc.
type QuickAskCancelMsg struct{}

var (
	quickAskStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Teal).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	quickAskHint = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// QuickAsk is the ask-the-assistant overlay reachable from any screen.
type QuickAsk struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewQuickAsk() QuickAsk {
	ti := textinput.New()
	ti.Placeholder = "ask the assistant…"
	ti.CharLimit = 512
	return QuickAsk{input: ti}
}

func (q QuickAsk) Visible() bool { return q.visible }

// Open shows the overlay, clears the input, and returns the focus command.
func (q *QuickAsk) Open() tea.Cmd {
	q.visible = true
	q.input.SetValue("")
	return q.input.Focus()
}

func (q *QuickAsk) SetWidth(w int) { q.width = w }

func (q QuickAsk) Update(msg tea.Msg) (QuickAsk, tea.Cmd) {
	if !q.visible {
		return q, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			q.visible = false
			q.input.Blur()
			return q, func() tea.Msg { return QuickAskCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(q.input.Value())
			q.visible = false
			q.input.Blur()
			if val == "" {
				return q, func() tea.Msg { return QuickAskCancelMsg{} }
			}
			return q, func() tea.Msg { return QuickAskSubmitMsg{Query: val} }
		}
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q QuickAsk) View() string {
	if !q.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Quick Ask") + "\n")
	sb.WriteString("? " + q.input.View() + "\n\n")
	sb.WriteString(quickAskHint.Render("enter: open chat with this question  esc: cancel"))

	w := q.width
	if w < 20 {
		w = 64
	}
	return quickAskStyle.Width(w - 2).Render(sb.String())
}
