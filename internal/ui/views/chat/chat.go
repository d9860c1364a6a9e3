// Package chat renders the assistant conversation. Sends are optimistic: the
// user turn lands in the transcript immediately and the reply follows when
// the assistant answers.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sehat/internal/appstate"
	chatdomain "sehat/internal/modules/chat/domain"
	"sehat/internal/platform/clock"
	"sehat/internal/platform/id"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

// Port is the slice of the chat module this screen needs.
type Port interface {
	Query(ctx context.Context, q chatdomain.Query) (chatdomain.Message, error)
}

// repliedMsg carries the assistant reply plus the generation the request was
// sent under. Replies from an older generation (the transcript was cleared
// while the request was in flight) are dropped.
type repliedMsg struct {
	gen   int
	reply chatdomain.Message
	err   error
}

var modes = []chatdomain.Mode{
	chatdomain.ModeGeneral,
	chatdomain.ModeTriage,
	chatdomain.ModeSecondOpinion,
}

var modeLabels = map[chatdomain.Mode]string{
	chatdomain.ModeGeneral:       "General",
	chatdomain.ModeTriage:        "Triage",
	chatdomain.ModeSecondOpinion: "Second Opinion",
}

type Model struct {
	port  Port
	idGen id.Generator
	clk   clock.Clock

	input   textinput.Model
	mode    chatdomain.Mode
	spin    spinner.Model
	busy    bool
	gen     int
	errText string
	width   int
	height  int
}

func New(port Port, idGen id.Generator, clk clock.Clock) Model {
	ti := textinput.New()
	ti.Placeholder = "describe your concern…"
	ti.CharLimit = 512
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Teal)

	return Model{port: port, idGen: idGen, clk: clk, input: ti, mode: chatdomain.ModeGeneral, spin: sp}
}

func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h
	return m
}

// InvalidatePending bumps the generation so in-flight replies are discarded.
// The root model calls this whenever the transcript is cleared out from under
// the screen.
func (m Model) InvalidatePending() Model {
	m.gen++
	m.busy = false
	return m
}

// ActivateCmd sends a pending quick-ask question. The root model calls it
// whenever the chat screen ends up on display with a question waiting, and
// clears the question in the same dispatch so it cannot fire twice.
func (m *Model) ActivateCmd(st appstate.State) tea.Cmd {
	q := strings.TrimSpace(st.InitialChatQuery)
	if q == "" {
		return nil
	}
	return m.send(q, st)
}

func (m Model) Update(msg tea.Msg, st appstate.State) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case repliedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		return m, uimsg.Dispatch(appstate.AddMessage{Message: msg.reply})

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			m.mode = nextMode(m.mode)
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			cmd := (&m).send(text, st)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send appends the user turn optimistically and fires the query.
func (m *Model) send(text string, st appstate.State) tea.Cmd {
	userMsg := chatdomain.Message{
		ID:        m.idGen.New(),
		Role:      chatdomain.RoleUser,
		Content:   text,
		Mode:      m.mode,
		Timestamp: m.clk.Now(),
	}
	contextID := ""
	if st.CurrentDiagnosis != nil {
		contextID = st.CurrentDiagnosis.AnalysisID
	}
	query := chatdomain.Query{Text: text, Mode: m.mode, ContextID: contextID}

	m.busy = true
	m.errText = ""
	gen := m.gen
	port := m.port
	queryCmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply, err := port.Query(ctx, query)
		return repliedMsg{gen: gen, reply: reply, err: err}
	}
	return tea.Batch(
		uimsg.Dispatch(appstate.AddMessage{Message: userMsg}),
		m.spin.Tick,
		queryCmd,
	)
}

func nextMode(m chatdomain.Mode) chatdomain.Mode {
	for i, candidate := range modes {
		if candidate == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return chatdomain.ModeGeneral
}

func (m Model) renderMessage(msg chatdomain.Message) string {
	wrap := lipgloss.NewStyle().Width(max(m.width-8, 24))
	var sb strings.Builder
	if msg.Role == chatdomain.RoleUser {
		sb.WriteString(theme.Hot.Render("you") + theme.Muted.Render(" · "+msg.Timestamp.Format("15:04")) + "\n")
	} else {
		label := "assistant"
		if l, ok := modeLabels[msg.Mode]; ok {
			label = "assistant · " + l
		}
		sb.WriteString(theme.Title.Render(label) + theme.Muted.Render(" · "+msg.Timestamp.Format("15:04")) + "\n")
	}
	sb.WriteString(wrap.Render(msg.Content) + "\n")
	if len(msg.Sources) > 0 {
		sb.WriteString(theme.Muted.Render("sources: "+strings.Join(msg.Sources, ", ")) + "\n")
	}
	return sb.String()
}

func (m Model) View(st appstate.State) string {
	var sb strings.Builder
	header := theme.Title.Render("AI Assistant") + "  " + theme.Muted.Render("mode:") + " " + theme.Hot.Render(modeLabels[m.mode])
	if st.CurrentDiagnosis != nil {
		header += theme.Muted.Render("  context: " + st.CurrentDiagnosis.AnalysisID)
	}
	sb.WriteString(header + "\n\n")

	if len(st.ChatHistory) == 0 {
		sb.WriteString(theme.Muted.Render("No messages yet. Ask anything about your health.") + "\n\n")
	}
	// Tail the transcript so the latest exchange stays on screen.
	history := st.ChatHistory
	if maxTurns := 12; len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}
	for _, msg := range history {
		sb.WriteString(m.renderMessage(msg) + "\n")
	}

	if m.busy {
		sb.WriteString(m.spin.View() + " thinking…\n")
	} else if m.errText != "" {
		sb.WriteString(theme.Danger.Render("✗ "+m.errText) + "\n")
	}

	sb.WriteString("\n> " + m.input.View() + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("enter: send  ctrl+t: mode (%s)", modeLabels[nextMode(m.mode)])) + "\n")
	return sb.String()
}
