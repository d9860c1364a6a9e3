package service_test

import (
	"context"
	"errors"
	"testing"

	"sehat/internal/modules/session/domain"
	"sehat/internal/modules/session/service"
	apperrors "sehat/internal/platform/errors"
)

type fakeIssuer struct {
	gotEmail string
	gotRole  domain.Role
	creds    domain.Credentials
	err      error
}

func (f *fakeIssuer) Issue(_ context.Context, email string, role domain.Role) (domain.Credentials, error) {
	f.gotEmail = email
	f.gotRole = role
	return f.creds, f.err
}

func validCreds() domain.Credentials {
	return domain.Credentials{
		Token: "tok-1",
		Profile: domain.Profile{
			ID:    "U-1",
			Name:  "ani",
			Email: "ani@example.com",
			Role:  domain.RolePatient,
		},
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("passes normalized role to the issuer", func(t *testing.T) {
		t.Parallel()
		issuer := &fakeIssuer{creds: validCreds()}
		svc := service.NewSessionService(issuer)

		creds, err := svc.Login(context.Background(), "ani@example.com", "doctor")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if issuer.gotRole != domain.RoleClinician {
			t.Fatalf("issuer got role %q, want clinician", issuer.gotRole)
		}
		if creds.Token != "tok-1" {
			t.Fatalf("token = %q, want tok-1", creds.Token)
		}
	})

	t.Run("rejects blank email", func(t *testing.T) {
		t.Parallel()
		svc := service.NewSessionService(&fakeIssuer{creds: validCreds()})
		_, err := svc.Login(context.Background(), "   ", "patient")
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()
		svc := service.NewSessionService(&fakeIssuer{creds: validCreds()})
		_, err := svc.Login(context.Background(), "ani@example.com", "admin")
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("propagates issuer failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("service unreachable")
		svc := service.NewSessionService(&fakeIssuer{err: boom})
		if _, err := svc.Login(context.Background(), "ani@example.com", "patient"); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want %v", err, boom)
		}
	})

	t.Run("rejects invalid profile from issuer", func(t *testing.T) {
		t.Parallel()
		creds := validCreds()
		creds.Profile.ID = ""
		svc := service.NewSessionService(&fakeIssuer{creds: creds})
		if _, err := svc.Login(context.Background(), "ani@example.com", "patient"); err == nil {
			t.Fatal("want error for profile without id")
		}
	})
}
