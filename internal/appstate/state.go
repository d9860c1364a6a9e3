package appstate

import (
	chatdomain "sehat/internal/modules/chat/domain"
	diagdomain "sehat/internal/modules/diagnosis/domain"
	sessiondomain "sehat/internal/modules/session/domain"
)

// State is the whole application state. It is a value: Apply returns a new
// State and never mutates its input, so independent app instances (and tests)
// can hold as many as they like.
type State struct {
	// Session is nil until login and nil again after logout.
	Session *sessiondomain.Profile

	CurrentView View

	// Diagnoses is the session's analysis history, newest first.
	Diagnoses []diagdomain.Record

	// CurrentDiagnosis is the record the results view shows, and the chat
	// correlation context.
	CurrentDiagnosis *diagdomain.Record

	// ChatHistory is the active conversation transcript, oldest first.
	ChatHistory []chatdomain.Message

	// SelectedPatient is set by clinician screens only.
	SelectedPatient *sessiondomain.Profile

	// InitialChatQuery is a pending quick-ask question, consumed once by the
	// chat screen on mount.
	InitialChatQuery string
}

// Initial returns the state a fresh process (or a logout) starts from.
func Initial() State {
	return State{CurrentView: ViewLogin}
}

// EffectiveView is what the router actually renders. A missing session forces
// the login screen no matter what CurrentView says, so an out-of-band session
// loss can never leave a role-gated screen on display. An out-of-range view
// falls back to the patient home screen.
func (s State) EffectiveView() View {
	if s.Session == nil {
		return ViewLogin
	}
	if !s.CurrentView.known() {
		return ViewPatientHome
	}
	return s.CurrentView
}
