// Package app owns the root Bubble Tea model: the single State value, the
// reducer dispatch loop, and the view router. Screens never hold application
// state of their own; they emit actions and render from the store.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
	"sehat/internal/platform/clock"
	"sehat/internal/platform/id"
	"sehat/internal/ui/components"
	"sehat/internal/ui/theme"
	"sehat/internal/ui/uimsg"
	chatview "sehat/internal/ui/views/chat"
	"sehat/internal/ui/views/clinic"
	"sehat/internal/ui/views/history"
	"sehat/internal/ui/views/home"
	loginview "sehat/internal/ui/views/login"
	profileview "sehat/internal/ui/views/profile"
	resultsview "sehat/internal/ui/views/results"
	videoview "sehat/internal/ui/views/video"
	wizardview "sehat/internal/ui/views/wizard"
)

// Ports gathers the module slices the screens need.
type Ports struct {
	Session   loginview.Port
	Diagnosis wizardview.Port
	Chat      chatview.Port
	Report    resultsview.Port
}

type Model struct {
	state appstate.State
	log   *slog.Logger

	login    loginview.Model
	home     home.Model
	wizard   wizardview.Model
	results  resultsview.Model
	chat     chatview.Model
	history  history.Model
	profile  profileview.Model
	clinic   clinic.Model
	video    videoview.Model
	quickAsk components.QuickAsk

	width  int
	height int
}

func New(ports Ports, idGen id.Generator, clk clock.Clock, log *slog.Logger) Model {
	return Model{
		state:    appstate.Initial(),
		log:      log,
		login:    loginview.New(ports.Session),
		home:     home.New(),
		wizard:   wizardview.New(ports.Diagnosis),
		results:  resultsview.New(ports.Report),
		chat:     chatview.New(ports.Chat, idGen, clk),
		history:  history.New(),
		profile:  profileview.New(),
		clinic:   clinic.New(),
		video:    videoview.New(),
		quickAsk: components.NewQuickAsk(),
	}
}

// State exposes the store for tests.
func (m Model) State() appstate.State { return m.state }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.propagateSize(msg.Width, msg.Height)
		return m, nil

	case uimsg.DispatchMsg:
		return m.dispatch(msg.Actions)

	case components.QuickAskSubmitMsg:
		return m.dispatch([]appstate.Action{
			appstate.SetInitialQuery{Text: msg.Query},
			appstate.SetView{View: appstate.ViewChat},
		})

	case components.QuickAskCancelMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Async results and ticks carry package-private types, so fanning a
	// message out to every screen only wakes the one that sent it.
	return m.routeToAll(msg)
}

func (m Model) dispatch(actions []appstate.Action) (tea.Model, tea.Cmd) {
	prev := m.state.EffectiveView()
	for _, action := range actions {
		m.state = appstate.Apply(m.state, action)
		switch action.(type) {
		case appstate.Logout, appstate.AddDiagnosis, appstate.SetCurrentDiagnosis:
			m.chat = m.chat.InvalidatePending()
		}
		m.log.Debug("action applied", "action", fmt.Sprintf("%T", action), "view", m.state.EffectiveView().String())
	}

	var cmds []tea.Cmd
	if next := m.state.EffectiveView(); next != prev {
		switch next {
		case appstate.ViewWizard:
			m.wizard = m.wizard.Reset()
		case appstate.ViewHistory:
			m.history = m.history.Sync(m.state)
		}
	}

	// A pending quick-ask question fires whenever the chat screen ends up on
	// display, including a submit made while chat was already active (no view
	// transition then). Consuming it here, synchronously with the send, is
	// what makes it fire exactly once.
	if m.state.EffectiveView() == appstate.ViewChat && m.state.InitialChatQuery != "" {
		if cmd := m.chat.ActivateCmd(m.state); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.state = appstate.Apply(m.state, appstate.SetInitialQuery{Text: ""})
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.quickAsk.Visible() {
		var cmd tea.Cmd
		m.quickAsk, cmd = m.quickAsk.Update(msg)
		return m, cmd
	}

	if m.state.Session != nil {
		switch msg.String() {
		case "ctrl+k":
			return m, m.quickAsk.Open()
		case "ctrl+l":
			return m.dispatch([]appstate.Action{appstate.Logout{}})
		}
		if !m.textEntryActive() {
			if target, ok := m.navTarget(msg.String()); ok {
				return m.dispatch([]appstate.Action{appstate.SetView{View: target}})
			}
		}
	}

	return m.routeToActive(msg)
}

// textEntryActive reports whether the focused screen owns the keyboard, in
// which case single-character shortcuts must not fire.
func (m Model) textEntryActive() bool {
	switch m.state.EffectiveView() {
	case appstate.ViewLogin, appstate.ViewWizard, appstate.ViewChat:
		return true
	case appstate.ViewHistory:
		return m.history.Filtering()
	default:
		return false
	}
}

// navTarget maps digit keys to the role's sidebar links.
func (m Model) navTarget(key string) (appstate.View, bool) {
	if m.state.Session == nil || len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	links := appstate.NavLinks(m.state.Session.Role)
	idx := int(key[0] - '1')
	if idx >= len(links) {
		return 0, false
	}
	return links[idx].View, true
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.EffectiveView() {
	case appstate.ViewLogin:
		m.login, cmd = m.login.Update(msg)
	case appstate.ViewPatientHome, appstate.ViewClinicianHome:
		m.home, cmd = m.home.Update(msg, m.state)
	case appstate.ViewWizard:
		m.wizard, cmd = m.wizard.Update(msg, m.state)
	case appstate.ViewResults:
		m.results, cmd = m.results.Update(msg, m.state)
	case appstate.ViewChat:
		m.chat, cmd = m.chat.Update(msg, m.state)
	case appstate.ViewHistory:
		m.history, cmd = m.history.Update(msg, m.state)
	case appstate.ViewProfile:
		m.profile, cmd = m.profile.Update(msg, m.state)
	case appstate.ViewPatientDetail, appstate.ViewReports, appstate.ViewStaff:
		m.clinic, cmd = m.clinic.Update(msg, m.state)
	case appstate.ViewVideoConsult:
		m.video, cmd = m.video.Update(msg, m.state)
	}
	return m, cmd
}

func (m Model) routeToAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.login, cmd = m.login.Update(msg)
	cmds = append(cmds, cmd)
	m.wizard, cmd = m.wizard.Update(msg, m.state)
	cmds = append(cmds, cmd)
	m.results, cmd = m.results.Update(msg, m.state)
	cmds = append(cmds, cmd)
	m.chat, cmd = m.chat.Update(msg, m.state)
	cmds = append(cmds, cmd)
	m.history, cmd = m.history.Update(msg, m.state)
	cmds = append(cmds, cmd)
	m.quickAsk, cmd = m.quickAsk.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) propagateSize(w, h int) Model {
	m.width = w
	m.height = h
	inner := h - 6
	m.login = m.login.SetSize(w, inner)
	m.home = m.home.SetSize(w, inner)
	m.wizard = m.wizard.SetSize(w, inner)
	m.results = m.results.SetSize(w, inner)
	m.chat = m.chat.SetSize(w, inner)
	m.history = m.history.SetSize(w, inner)
	m.profile = m.profile.SetSize(w, inner)
	m.clinic = m.clinic.SetSize(w, inner)
	m.video = m.video.SetSize(w, inner)
	m.quickAsk.SetWidth(w)
	return m
}

func (m Model) navBar() string {
	if m.state.Session == nil {
		return ""
	}
	links := appstate.NavLinks(m.state.Session.Role)
	active := m.state.EffectiveView()
	parts := make([]string, 0, len(links))
	for i, link := range links {
		label := fmt.Sprintf("%d·%s", i+1, link.Label)
		if link.View == active {
			parts = append(parts, theme.Hot.Render(label))
		} else {
			parts = append(parts, theme.Muted.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m Model) statusBar() string {
	hint := "ctrl+c: quit"
	if m.state.Session != nil {
		hint = "ctrl+k: quick ask  ctrl+l: sign out  ctrl+c: quit"
	}
	left := theme.Muted.Render(m.state.EffectiveView().String())
	return left + "  " + theme.Muted.Render(hint)
}

func (m Model) activeView() string {
	switch m.state.EffectiveView() {
	case appstate.ViewLogin:
		return m.login.View()
	case appstate.ViewPatientHome, appstate.ViewClinicianHome:
		return m.home.View(m.state)
	case appstate.ViewWizard:
		return m.wizard.View()
	case appstate.ViewResults:
		return m.results.View(m.state)
	case appstate.ViewChat:
		return m.chat.View(m.state)
	case appstate.ViewHistory:
		return m.history.View(m.state)
	case appstate.ViewProfile:
		return m.profile.View(m.state)
	case appstate.ViewPatientDetail, appstate.ViewReports, appstate.ViewStaff:
		return m.clinic.View(m.state)
	case appstate.ViewVideoConsult:
		return m.video.View(m.state)
	default:
		return ""
	}
}

func (m Model) View() string {
	var sb strings.Builder

	header := theme.Title.Render("SehatAI")
	if p := m.state.Session; p != nil {
		header += theme.Muted.Render("  " + p.Name + " (" + string(p.Role) + ")")
	}
	sb.WriteString(header + "\n")
	if nav := m.navBar(); nav != "" {
		sb.WriteString(nav + "\n")
	}
	sb.WriteString("\n")

	if m.quickAsk.Visible() {
		sb.WriteString(m.quickAsk.View() + "\n\n")
	}
	sb.WriteString(m.activeView())
	sb.WriteString("\n" + m.statusBar())

	return theme.App.Render(sb.String())
}
