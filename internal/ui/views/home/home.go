// Package home renders the role landing screens: the patient dashboard and
// the clinician dashboard.
package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
	sessiondomain "sehat/internal/modules/session/domain"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

// roster is the demo patient panel shown to clinicians. The deployment this
// client talks to has no patient listing endpoint yet, so the panel is
// seeded locally.
var roster = []sessiondomain.Profile{
	{ID: "U-1001", Name: "Amira Yusuf", Email: "amira.yusuf@example.com", Role: sessiondomain.RolePatient},
	{ID: "U-1002", Name: "Budi Santoso", Email: "budi.santoso@example.com", Role: sessiondomain.RolePatient, IsPremium: true},
	{ID: "U-1003", Name: "Chandra Wijaya", Email: "chandra.w@example.com", Role: sessiondomain.RolePatient},
	{ID: "U-1004", Name: "Dewi Lestari", Email: "dewi.lestari@example.com", Role: sessiondomain.RolePatient},
}

type Model struct {
	cursor int
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
	if !ok || st.Session == nil {
		return m, nil
	}

	if st.Session.Role == sessiondomain.RoleClinician {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(roster)-1 {
				m.cursor++
			}
		case "enter":
			return m, uimsg.Dispatch(
				appstate.SetSelectedPatient{Patient: roster[m.cursor]},
				appstate.SetView{View: appstate.ViewPatientDetail},
			)
		}
		return m, nil
	}

	switch key.String() {
	case "d":
		return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewWizard})
	case "c":
		return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewChat})
	case "h":
		return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewHistory})
	case "v":
		return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewVideoConsult})
	}
	return m, nil
}

func (m Model) View(st appstate.State) string {
	if st.Session != nil && st.Session.Role == sessiondomain.RoleClinician {
		return m.clinicianView(st)
	}
	return m.patientView(st)
}

func (m Model) patientView(st appstate.State) string {
	var sb strings.Builder
	name := "there"
	if st.Session != nil && st.Session.Name != "" {
		name = st.Session.Name
	}
	sb.WriteString(theme.Title.Render("Welcome back, "+name) + "\n\n")

	sb.WriteString(theme.Hot.Render("Quick actions") + "\n")
	sb.WriteString("  d  start a symptom check\n")
	sb.WriteString("  c  talk to the AI assistant\n")
	sb.WriteString("  h  review past analyses\n")
	sb.WriteString("  v  video consultation\n\n")

	if rec := st.CurrentDiagnosis; rec != nil {
		sb.WriteString(theme.Hot.Render("Latest analysis") + "\n")
		sb.WriteString("  " + theme.Risk(rec.RiskLevel).Render(string(rec.RiskLevel)) +
			theme.Muted.Render("  "+rec.Timestamp.Format("2006-01-02 15:04")) + "\n")
		summary := rec.ClinicalSummary
		if len(summary) > 96 {
			summary = summary[:96] + "…"
		}
		sb.WriteString("  " + summary + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("No analyses yet this session.") + "\n")
	}
	return sb.String()
}

func (m Model) clinicianView(st appstate.State) string {
	var sb strings.Builder
	name := ""
	if st.Session != nil {
		name = st.Session.Name
	}
	sb.WriteString(theme.Title.Render("Clinician Dashboard") + theme.Muted.Render("  Dr. "+name) + "\n\n")

	sb.WriteString(theme.Hot.Render(fmt.Sprintf("Patient panel (%d)", len(roster))) + "\n")
	for i, p := range roster {
		marker := "  "
		line := fmt.Sprintf("%-18s %s", p.Name, theme.Muted.Render(p.Email))
		if i == m.cursor {
			marker = theme.Hot.Render("> ")
		}
		sb.WriteString(marker + line + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓: select  enter: open chart") + "\n")
	return sb.String()
}
