package domain_test

import (
	"testing"

	"sehat/internal/modules/session/domain"
)

func TestParseRole(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw     string
		want    domain.Role
		wantErr bool
	}{
		{raw: "patient", want: domain.RolePatient},
		{raw: "clinician", want: domain.RoleClinician},
		{raw: "doctor", want: domain.RoleClinician},
		{raw: "  Doctor  ", want: domain.RoleClinician},
		{raw: "PATIENT", want: domain.RolePatient},
		{raw: "admin", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseRole(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRole(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProfileValidate(t *testing.T) {
	t.Parallel()
	valid := domain.Profile{ID: "U-1", Name: "ani", Email: "ani@example.com", Role: domain.RolePatient}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*domain.Profile)
	}{
		{"missing id", func(p *domain.Profile) { p.ID = " " }},
		{"missing email", func(p *domain.Profile) { p.Email = "" }},
		{"bad role", func(p *domain.Profile) { p.Role = "admin" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("want validation error")
			}
		})
	}
}
