package appstate

import (
	chatdomain "sehat/internal/modules/chat/domain"
	diagdomain "sehat/internal/modules/diagnosis/domain"
)

// Apply is the pure transition function over (state, action). Every action
// kind is handled for every state; transitions are total, deterministic, and
// synchronous. Unknown action values leave the state unchanged: a safety net
// against stray dispatches, not a channel to rely on.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case Login:
		profile := a.Profile
		s.Session = &profile
		s.CurrentView = LandingView(profile.Role)
		return s

	case Logout:
		return Initial()

	case SetView:
		s.CurrentView = a.View
		return s

	case UpgradeAccount:
		// Guarded no-op without a session; the reducer never fails.
		if s.Session == nil {
			return s
		}
		upgraded := *s.Session
		upgraded.IsPremium = true
		s.Session = &upgraded
		return s

	case AddDiagnosis:
		record := a.Record
		s.Diagnoses = prepend(record, s.Diagnoses)
		s.CurrentDiagnosis = &record
		// A new displayed record resets the conversation context.
		s.ChatHistory = nil
		return s

	case SetCurrentDiagnosis:
		record := a.Record
		s.CurrentDiagnosis = &record
		s.ChatHistory = nil
		return s

	case AddMessage:
		s.ChatHistory = appendMessage(s.ChatHistory, a.Message)
		return s

	case SetSelectedPatient:
		patient := a.Patient
		s.SelectedPatient = &patient
		return s

	case SetInitialQuery:
		s.InitialChatQuery = a.Text
		return s

	default:
		return s
	}
}

// prepend copies so the previous state's slice stays intact.
func prepend(record diagdomain.Record, history []diagdomain.Record) []diagdomain.Record {
	out := make([]diagdomain.Record, 0, len(history)+1)
	out = append(out, record)
	return append(out, history...)
}

func appendMessage(transcript []chatdomain.Message, msg chatdomain.Message) []chatdomain.Message {
	out := make([]chatdomain.Message, 0, len(transcript)+1)
	out = append(out, transcript...)
	return append(out, msg)
}
