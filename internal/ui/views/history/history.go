// Package history lists the session's past analyses, newest first. Opening
// an entry makes it the displayed record and jumps to the results screen.
package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sehat/internal/appstate"
	diagdomain "sehat/internal/modules/diagnosis/domain"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
)

type item struct {
	record diagdomain.Record
}

func (i item) Title() string {
	return fmt.Sprintf("%s  %s", i.record.Timestamp.Format("2006-01-02 15:04"),
		theme.Risk(i.record.RiskLevel).Render(string(i.record.RiskLevel)+" risk"))
}

func (i item) Description() string {
	summary := i.record.ClinicalSummary
	if len(summary) > 72 {
		summary = summary[:72] + "…"
	}
	return summary
}

func (i item) FilterValue() string {
	return i.record.ClinicalSummary + " " + string(i.record.RiskLevel)
}

type Model struct {
	list   list.Model
	width  int
	height int
}

func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Cyan).BorderForeground(theme.Cyan)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Subtext0).BorderForeground(theme.Cyan)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Analysis History"
	l.Styles.Title = lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

// Sync rebuilds the list from the store. Called when the screen is entered
// so new analyses appear without the list holding its own copy of truth.
func (m Model) Sync(st appstate.State) Model {
	items := make([]list.Item, len(st.Diagnoses))
	for i, rec := range st.Diagnoses {
		items[i] = item{record: rec}
	}
	m.list.SetItems(items)
	if m.list.Index() >= len(items) {
		m.list.Select(0)
	}
	return m
}

func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h
	m.list.SetSize(w-4, h-6)
	return m
}

// Filtering reports whether the list filter input owns the keyboard, so
// global single-letter shortcuts stay out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg, st appstate.State) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		switch key.String() {
		case "enter":
			selected, ok := m.list.SelectedItem().(item)
			if !ok {
				return m, nil
			}
			return m, uimsg.Dispatch(
				appstate.SetCurrentDiagnosis{Record: selected.record},
				appstate.SetView{View: appstate.ViewResults},
			)
		case "esc":
			home := appstate.ViewPatientHome
			if st.Session != nil {
				home = appstate.LandingView(st.Session.Role)
			}
			return m, uimsg.Dispatch(appstate.SetView{View: home})
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View(st appstate.State) string {
	if len(st.Diagnoses) == 0 {
		var sb strings.Builder
		sb.WriteString(theme.Title.Render("Analysis History") + "\n\n")
		sb.WriteString(theme.Muted.Render("No analyses yet. Run a symptom check to build your history.") + "\n")
		return sb.String()
	}
	return m.list.View() + "\n" +
		theme.Muted.Render("enter: open  /: filter  esc: home")
}
