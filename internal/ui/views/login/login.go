// Package login renders the entry screen. Submitting dispatches Login, which
// routes the session to its role landing view.
package login

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sehat/internal/appstate"
	sessiondomain "sehat/internal/modules/session/domain"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

// Port is the slice of the session module this screen needs.
type Port interface {
	Login(ctx context.Context, email, role string) (sessiondomain.Credentials, error)
}

type loggedInMsg struct {
	creds sessiondomain.Credentials
	err   error
}

type Model struct {
	port Port

	email   textinput.Model
	role    sessiondomain.Role
	spin    spinner.Model
	busy    bool
	errText string
	width   int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 128
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Teal)

	return Model{port: port, email: ti, role: sessiondomain.RolePatient, spin: sp}
}

func (m Model) SetSize(w, _ int) Model {
	m.width = w
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedInMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		return m, uimsg.Dispatch(appstate.Login{Profile: msg.creds.Profile})

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			if m.role == sessiondomain.RolePatient {
				m.role = sessiondomain.RoleClinician
			} else {
				m.role = sessiondomain.RolePatient
			}
			return m, nil
		case "enter":
			email := strings.TrimSpace(m.email.Value())
			if email == "" {
				m.errText = "email is required"
				return m, nil
			}
			m.busy = true
			m.errText = ""
			return m, tea.Batch(m.spin.Tick, m.loginCmd(email, string(m.role)))
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m Model) loginCmd(email, role string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		creds, err := m.port.Login(ctx, email, role)
		return loggedInMsg{creds: creds, err: err}
	}
}

func roleTab(label string, active bool) string {
	if active {
		return theme.Hot.Render("[" + label + "]")
	}
	return theme.Muted.Render(" " + label + " ")
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("SehatAI") + "\n")
	sb.WriteString(theme.Muted.Render("clinical decision support, demo environment") + "\n\n")

	sb.WriteString("email: " + m.email.View() + "\n\n")
	sb.WriteString("role:  " +
		roleTab("patient", m.role == sessiondomain.RolePatient) + " " +
		roleTab("clinician", m.role == sessiondomain.RoleClinician) + "\n\n")

	switch {
	case m.busy:
		sb.WriteString(m.spin.View() + " signing in…\n")
	case m.errText != "":
		sb.WriteString(theme.Danger.Render("✗ "+m.errText) + "\n")
	default:
		sb.WriteString(theme.Muted.Render("enter: sign in  tab: switch role") + "\n")
	}

	return sb.String()
}
