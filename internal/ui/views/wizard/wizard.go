// Package wizard is the guided symptom intake flow. Three steps feed one
// AnalyzeRequest; the final confirmation runs the analysis and lands on the
// results screen.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sehat/internal/appstate"
	diagdomain "sehat/internal/modules/diagnosis/domain"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

// Port is the slice of the diagnosis module this screen needs.
type Port interface {
	Analyze(ctx context.Context, req diagdomain.AnalyzeRequest) (diagdomain.Record, error)
}

type analyzedMsg struct {
	record diagdomain.Record
	err    error
}

const (
	stepSymptoms = iota
	stepDetails
	stepReview
	stepCount
)

var stepTitles = [stepCount]string{
	"Step 1/3 · What are you experiencing?",
	"Step 2/3 · How long, how bad?",
	"Step 3/3 · Review & analyze",
}

type Model struct {
	port Port

	step     int
	symptoms textinput.Model
	duration textinput.Model
	history  textinput.Model
	severity int

	spin    spinner.Model
	busy    bool
	errText string
	width   int
}

func New(port Port) Model {
	sy := textinput.New()
	sy.Placeholder = "headache, fever, fatigue"
	sy.CharLimit = 256

	du := textinput.New()
	du.Placeholder = "3"
	du.CharLimit = 4

	hi := textinput.New()
	hi.Placeholder = "hypertension (optional)"
	hi.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Teal)

	return Model{
		port:     port,
		symptoms: sy,
		duration: du,
		history:  hi,
		severity: diagdomain.DefaultSeverity,
		spin:     sp,
	}
}

// Reset returns the wizard to a blank first step. Called every time the
// screen is entered so a previous run never leaks into the next one.
func (m Model) Reset() Model {
	m.step = stepSymptoms
	m.symptoms.SetValue("")
	m.duration.SetValue("")
	m.history.SetValue("")
	m.severity = diagdomain.DefaultSeverity
	m.busy = false
	m.errText = ""
	m.symptoms.Focus()
	m.duration.Blur()
	m.history.Blur()
	return m
}

func (m Model) SetSize(w, _ int) Model {
	m.width = w
	return m
}

func (m Model) Update(msg tea.Msg, st appstate.State) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzedMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		return m, uimsg.Dispatch(
			appstate.AddDiagnosis{Record: msg.record},
			appstate.SetView{View: appstate.ViewResults},
		)

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
		case "esc":
			home := appstate.ViewPatientHome
			if st.Session != nil {
				home = appstate.LandingView(st.Session.Role)
			}
			return m, uimsg.Dispatch(appstate.SetView{View: home})
		case "enter":
			return m.advance(st)
		case "shift+tab":
			if m.step > stepSymptoms {
				m = m.focusStep(m.step - 1)
			}
			return m, nil
		case "up", "+":
			if m.step == stepDetails && m.severity < 10 {
				m.severity++
				return m, nil
			}
		case "down", "-":
			if m.step == stepDetails && m.severity > 1 {
				m.severity--
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case stepSymptoms:
		m.symptoms, cmd = m.symptoms.Update(msg)
	case stepDetails:
		m.duration, cmd = m.duration.Update(msg)
	case stepReview:
		m.history, cmd = m.history.Update(msg)
	}
	return m, cmd
}

func (m Model) advance(st appstate.State) (Model, tea.Cmd) {
	switch m.step {
	case stepSymptoms:
		if len(splitList(m.symptoms.Value())) == 0 {
			m.errText = "at least one symptom is required"
			return m, nil
		}
		m.errText = ""
		return m.focusStep(stepDetails), nil
	case stepDetails:
		if _, err := m.durationDays(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.errText = ""
		return m.focusStep(stepReview), nil
	default:
		m.busy = true
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.analyzeCmd(m.buildRequest(st)))
	}
}

func (m Model) focusStep(step int) Model {
	m.step = step
	m.symptoms.Blur()
	m.duration.Blur()
	m.history.Blur()
	switch step {
	case stepSymptoms:
		m.symptoms.Focus()
	case stepDetails:
		m.duration.Focus()
	case stepReview:
		m.history.Focus()
	}
	return m
}

func (m Model) durationDays() (int, error) {
	raw := strings.TrimSpace(m.duration.Value())
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("duration must be a non-negative number of days")
	}
	return n, nil
}

func (m Model) buildRequest(st appstate.State) diagdomain.AnalyzeRequest {
	days, _ := m.durationDays()
	patientID := ""
	if st.Session != nil {
		patientID = st.Session.ID
	}
	return diagdomain.AnalyzeRequest{
		PatientID:      patientID,
		Symptoms:       splitList(m.symptoms.Value()),
		DurationDays:   days,
		Severity:       m.severity,
		MedicalHistory: splitList(m.history.Value()),
	}
}

func (m Model) analyzeCmd(req diagdomain.AnalyzeRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		record, err := m.port.Analyze(ctx, req)
		return analyzedMsg{record: record, err: err}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func severityBar(severity int) string {
	filled := strings.Repeat("█", severity)
	empty := strings.Repeat("░", 10-severity)
	style := theme.Risk(diagdomain.RiskLow)
	switch {
	case severity >= 8:
		style = theme.Risk(diagdomain.RiskHigh)
	case severity >= 5:
		style = theme.Risk(diagdomain.RiskMedium)
	}
	return style.Render(filled) + theme.Muted.Render(empty) + fmt.Sprintf(" %d/10", severity)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Symptom Check") + "\n")
	sb.WriteString(theme.Muted.Render(stepTitles[m.step]) + "\n\n")

	switch m.step {
	case stepSymptoms:
		sb.WriteString("symptoms (comma separated):\n")
		sb.WriteString("  " + m.symptoms.View() + "\n")
	case stepDetails:
		sb.WriteString("duration in days:\n")
		sb.WriteString("  " + m.duration.View() + "\n\n")
		sb.WriteString("severity (↑/↓ to adjust):\n")
		sb.WriteString("  " + severityBar(m.severity) + "\n")
	case stepReview:
		sb.WriteString("medical history (comma separated, optional):\n")
		sb.WriteString("  " + m.history.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("symptoms: ") + strings.Join(splitList(m.symptoms.Value()), ", ") + "\n")
		days, _ := m.durationDays()
		sb.WriteString(theme.Muted.Render("duration: ") + fmt.Sprintf("%d day(s)", days) + "\n")
		sb.WriteString(theme.Muted.Render("severity: ") + fmt.Sprintf("%d/10", m.severity) + "\n")
	}
	sb.WriteString("\n")

	switch {
	case m.busy:
		sb.WriteString(m.spin.View() + " analyzing…\n")
	case m.errText != "":
		sb.WriteString(theme.Danger.Render("✗ "+m.errText) + "\n")
	case m.step == stepReview:
		sb.WriteString(theme.Muted.Render("enter: analyze  shift+tab: back  esc: cancel") + "\n")
	default:
		sb.WriteString(theme.Muted.Render("enter: next  shift+tab: back  esc: cancel") + "\n")
	}

	return sb.String()
}
