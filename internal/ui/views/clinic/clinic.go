// Package clinic renders the clinician-only screens: the patient chart, the
// analytics summary, and the staff directory.
package clinic

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
	diagdomain "sehat/internal/modules/diagnosis/domain"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

type staffMember struct {
	name string
	role string
	ward string
}

// Static directory for the demo deployment.
var staffDirectory = []staffMember{
	{"Dr. Ratna Sari", "General Practitioner", "Outpatient"},
	{"Dr. Hendro Pratama", "Cardiologist", "Cardiology"},
	{"Ns. Fitri Handayani", "Triage Nurse", "Emergency"},
	{"Ns. Agus Salim", "Ward Nurse", "Internal Medicine"},
}

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

func (m Model) Update(msg tea.Msg, _ appstate.State) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewClinicianHome})
	}
	return m, nil
}

func (m Model) View(st appstate.State) string {
	switch st.EffectiveView() {
	case appstate.ViewPatientDetail:
		return m.patientDetail(st)
	case appstate.ViewReports:
		return m.reports(st)
	default:
		return m.staff()
	}
}

func (m Model) patientDetail(st appstate.State) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Patient Chart") + "\n\n")

	p := st.SelectedPatient
	if p == nil {
		sb.WriteString(theme.Muted.Render("No patient selected. Pick one from the dashboard.") + "\n")
		return sb.String()
	}
	sb.WriteString(theme.Hot.Render(p.Name) + "\n")
	sb.WriteString(theme.Muted.Render("email: ") + p.Email + "\n")
	sb.WriteString(theme.Muted.Render("id:    ") + p.ID + "\n")
	plan := "free"
	if p.IsPremium {
		plan = "premium"
	}
	sb.WriteString(theme.Muted.Render("plan:  ") + plan + "\n\n")
	sb.WriteString(theme.Muted.Render("Chart data is not synced in the demo deployment.") + "\n\n")
	sb.WriteString(theme.Muted.Render("esc: dashboard") + "\n")
	return sb.String()
}

func (m Model) reports(st appstate.State) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Analytics") + "\n\n")

	counts := map[diagdomain.RiskLevel]int{}
	for _, rec := range st.Diagnoses {
		counts[rec.RiskLevel]++
	}
	sb.WriteString(theme.Hot.Render("Analyses this session") + "\n")
	sb.WriteString(fmt.Sprintf("  total:  %d\n", len(st.Diagnoses)))
	for _, level := range []diagdomain.RiskLevel{diagdomain.RiskHigh, diagdomain.RiskMedium, diagdomain.RiskLow} {
		sb.WriteString("  " + theme.Risk(level).Render(fmt.Sprintf("%-7s", level)) +
			fmt.Sprintf(" %d\n", counts[level]))
	}
	sb.WriteString("\n" + theme.Muted.Render("Population analytics require the reporting backend.") + "\n\n")
	sb.WriteString(theme.Muted.Render("esc: dashboard") + "\n")
	return sb.String()
}

func (m Model) staff() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Staff Directory") + "\n\n")
	for _, s := range staffDirectory {
		sb.WriteString(fmt.Sprintf("  %-22s %-22s %s\n", theme.Hot.Render(s.name), s.role,
			theme.Muted.Render(s.ward)))
	}
	sb.WriteString("\n" + theme.Muted.Render("esc: dashboard") + "\n")
	return sb.String()
}
