// Package video renders the consultation placeholder. Real calls are out of
// scope for the terminal client; the screen explains how to schedule one.
package video

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

type Model struct {
	width int
}

func New() Model {
	return Model{}
}

func (m Model) SetSize(w, _ int) Model {
	m.width = w
	return m
}

func (m Model) Update(msg tea.Msg, st appstate.State) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		home := appstate.ViewPatientHome
		if st.Session != nil {
			home = appstate.LandingView(st.Session.Role)
		}
		return m, uimsg.Dispatch(appstate.SetView{View: home})
	}
	return m, nil
}

func (m Model) View(_ appstate.State) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Video Consultation") + "\n\n")
	sb.WriteString(theme.Muted.Render("┌──────────────────────────────┐") + "\n")
	sb.WriteString(theme.Muted.Render("│                              │") + "\n")
	sb.WriteString(theme.Muted.Render("│      no active session       │") + "\n")
	sb.WriteString(theme.Muted.Render("│                              │") + "\n")
	sb.WriteString(theme.Muted.Render("└──────────────────────────────┘") + "\n\n")
	sb.WriteString("Consultations are scheduled through your clinic.\n")
	sb.WriteString("Call +62-21-555-0199 or ask the assistant for availability.\n\n")
	sb.WriteString(theme.Muted.Render("esc: home") + "\n")
	return sb.String()
}
