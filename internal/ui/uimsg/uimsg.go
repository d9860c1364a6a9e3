// Package uimsg carries the messages views use to reach the store. Views
// never mutate application state directly; they emit a DispatchMsg and the
// root model runs the reducer.
package uimsg

import (
	tea "github.com/charmbracelet/bubbletea"

	"sehat/internal/appstate"
)

// DispatchMsg asks the root model to apply actions in order. Order matters
// (AddDiagnosis then SetView is not SetView then AddDiagnosis), so one msg
// carries the whole sequence instead of relying on tea.Batch scheduling.
type DispatchMsg struct {
	Actions []appstate.Action
}

// Dispatch wraps actions in a command.
func Dispatch(actions ...appstate.Action) tea.Cmd {
	return func() tea.Msg {
		return DispatchMsg{Actions: actions}
	}
}
