package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RolePatient   Role = "patient"
	RoleClinician Role = "clinician"
)

// ParseRole normalizes a wire-format role. The upstream service still emits
// "doctor" for clinician accounts.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "patient":
		return RolePatient, nil
	case "clinician", "doctor":
		return RoleClinician, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

func (r Role) Validate() error {
	switch r {
	case RolePatient, RoleClinician:
		return nil
	default:
		return fmt.Errorf("unknown role %q", r)
	}
}

// Profile is the authenticated identity for the current process lifetime.
type Profile struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	IsPremium bool
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("profile id is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("profile email is required")
	}
	return p.Role.Validate()
}

// Credentials is the session-issuance result. The token is stored but never
// inspected; the client trusts the profile it came with.
type Credentials struct {
	Token   string
	Profile Profile
}
