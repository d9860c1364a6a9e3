package appstate

import sessiondomain "sehat/internal/modules/session/domain"

// View is one discrete screen in the navigation state machine.
type View int

const (
	ViewLogin View = iota
	ViewPatientHome
	ViewWizard
	ViewResults
	ViewChat
	ViewHistory
	ViewProfile
	ViewVideoConsult
	ViewClinicianHome
	ViewPatientDetail
	ViewReports
	ViewStaff

	viewCount
)

var viewNames = [viewCount]string{
	"login",
	"patient-home",
	"diagnosis-wizard",
	"diagnosis-results",
	"chat",
	"history",
	"profile",
	"video-consult",
	"clinician-home",
	"patient-detail",
	"reports",
	"staff",
}

func (v View) String() string {
	if v < 0 || v >= viewCount {
		return "unknown"
	}
	return viewNames[v]
}

func (v View) known() bool {
	return v >= 0 && v < viewCount
}

// LandingView is the screen a fresh login arrives at.
func LandingView(role sessiondomain.Role) View {
	if role == sessiondomain.RoleClinician {
		return ViewClinicianHome
	}
	return ViewPatientHome
}

// NavLink is one sidebar entry.
type NavLink struct {
	View  View
	Label string
}

var patientLinks = []NavLink{
	{ViewPatientHome, "Home"},
	{ViewChat, "AI Assistant"},
	{ViewHistory, "History"},
	{ViewProfile, "Settings"},
}

var clinicianLinks = []NavLink{
	{ViewClinicianHome, "Dashboard"},
	{ViewReports, "Analytics"},
	{ViewStaff, "Staff"},
}

// NavLinks returns the fixed link set for a role.
func NavLinks(role sessiondomain.Role) []NavLink {
	if role == sessiondomain.RoleClinician {
		return clinicianLinks
	}
	return patientLinks
}
