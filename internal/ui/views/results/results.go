// Package results renders the displayed analysis record.
package results

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
	diagdomain "sehat/internal/modules/diagnosis/domain"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

// Port exports the displayed record as a PDF.
type Port interface {
	Export(ctx context.Context, record diagdomain.Record, patientName, path string) (int, error)
}

type exportedMsg struct {
	path  string
	bytes int
	err   error
}

type Model struct {
	port   Port
	status string
	width  int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) SetSize(w, _ int) Model {
	m.width = w
	return m
}

func (m Model) Update(msg tea.Msg, st appstate.State) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.err != nil {
			m.status = theme.Danger.Render("✗ export failed: " + msg.err.Error())
			return m, nil
		}
		m.status = theme.Hot.Render(fmt.Sprintf("✓ report saved to %s (%d bytes)", msg.path, msg.bytes))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewChat})
		case "h":
			return m, uimsg.Dispatch(appstate.SetView{View: appstate.ViewHistory})
		case "e":
			if st.CurrentDiagnosis == nil {
				return m, nil
			}
			m.status = theme.Muted.Render("exporting…")
			return m, m.exportCmd(*st.CurrentDiagnosis, st)
		case "esc":
			home := appstate.ViewPatientHome
			if st.Session != nil {
				home = appstate.LandingView(st.Session.Role)
			}
			return m, uimsg.Dispatch(appstate.SetView{View: home})
		}
	}
	return m, nil
}

func (m Model) exportCmd(record diagdomain.Record, st appstate.State) tea.Cmd {
	name := ""
	if st.Session != nil {
		name = st.Session.Name
	}
	path := filepath.Join(".", "sehatai-report-"+record.AnalysisID+".pdf")
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := m.port.Export(ctx, record, name, path)
		return exportedMsg{path: path, bytes: n, err: err}
	}
}

func (m Model) View(st appstate.State) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Analysis Results") + "\n\n")

	rec := st.CurrentDiagnosis
	if rec == nil {
		sb.WriteString(theme.Muted.Render("No analysis on display. Run a symptom check first.") + "\n")
		return sb.String()
	}

	sb.WriteString(theme.Risk(rec.RiskLevel).Render(strings.ToUpper(string(rec.RiskLevel))+" RISK"))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("   confidence %.0f%%   %s   %dms",
		rec.ConfidenceScore*100, rec.Timestamp.Format("2006-01-02 15:04"), rec.ProcessingTimeMS)))
	sb.WriteString("\n" + theme.Muted.Render("analysis "+rec.AnalysisID) + "\n\n")

	sb.WriteString(theme.Hot.Render("Clinical summary") + "\n")
	sb.WriteString(rec.ClinicalSummary + "\n\n")

	if len(rec.Recommendations) > 0 {
		sb.WriteString(theme.Hot.Render("Recommendations") + "\n")
		for _, r := range rec.Recommendations {
			sb.WriteString("  • " + r + "\n")
		}
		sb.WriteString("\n")
	}

	if len(rec.Sources) > 0 {
		sb.WriteString(theme.Muted.Render("sources: "+strings.Join(rec.Sources, ", ")) + "\n\n")
	}

	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	sb.WriteString(theme.Muted.Render("c: discuss with assistant  e: export PDF  h: history  esc: home") + "\n")
	return sb.String()
}
