package appstate

import (
	chatdomain "sehat/internal/modules/chat/domain"
	diagdomain "sehat/internal/modules/diagnosis/domain"
	sessiondomain "sehat/internal/modules/session/domain"
)

// Action is the closed set of store transitions. Every screen mutation goes
// through Apply with one of these; nothing else touches State.
type Action interface {
	isAction()
}

type Login struct {
	Profile sessiondomain.Profile
}

type Logout struct{}

type SetView struct {
	View View
}

type UpgradeAccount struct{}

type AddDiagnosis struct {
	Record diagdomain.Record
}

type SetCurrentDiagnosis struct {
	Record diagdomain.Record
}

type AddMessage struct {
	Message chatdomain.Message
}

type SetSelectedPatient struct {
	Patient sessiondomain.Profile
}

type SetInitialQuery struct {
	Text string
}

func (Login) isAction()               {}
func (Logout) isAction()              {}
func (SetView) isAction()             {}
func (UpgradeAccount) isAction()      {}
func (AddDiagnosis) isAction()        {}
func (SetCurrentDiagnosis) isAction() {}
func (AddMessage) isAction()          {}
func (SetSelectedPatient) isAction()  {}
func (SetInitialQuery) isAction()     {}
