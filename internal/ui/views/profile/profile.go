// Package profile renders account settings for the signed-in user.
package profile

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

type Model struct {
	status string
	width  int
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
	case "u":
		if st.Session == nil || st.Session.IsPremium {
			return m, nil
		}
		m.status = theme.Hot.Render("✓ upgraded to premium")
		return m, uimsg.Dispatch(appstate.UpgradeAccount{})
	case "esc":
		home := appstate.ViewPatientHome
		if st.Session != nil {
			home = appstate.LandingView(st.Session.Role)
		}
		return m, uimsg.Dispatch(appstate.SetView{View: home})
	}
	return m, nil
}

func (m Model) View(st appstate.State) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")

	p := st.Session
	if p == nil {
		sb.WriteString(theme.Muted.Render("Not signed in.") + "\n")
		return sb.String()
	}

	sb.WriteString(theme.Muted.Render("name:  ") + p.Name + "\n")
	sb.WriteString(theme.Muted.Render("email: ") + p.Email + "\n")
	sb.WriteString(theme.Muted.Render("role:  ") + string(p.Role) + "\n")
	sb.WriteString(theme.Muted.Render("id:    ") + p.ID + "\n\n")

	if p.IsPremium {
		sb.WriteString(theme.Hot.Render("★ Premium account") + "\n")
	} else {
		sb.WriteString("Plan: free\n")
		sb.WriteString(theme.Muted.Render("u: upgrade to premium") + "\n")
	}
	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("ctrl+l: sign out  esc: home") + "\n")
	return sb.String()
}
