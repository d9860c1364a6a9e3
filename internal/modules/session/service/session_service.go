package service

import (
	"context"
	"fmt"
	"strings"

	"sehat/internal/modules/session/domain"
	sessionout "sehat/internal/modules/session/port/out"
	apperrors "sehat/internal/platform/errors"
)

type SessionService struct {
	issuer sessionout.Issuer
}

func NewSessionService(issuer sessionout.Issuer) *SessionService {
	return &SessionService{issuer: issuer}
}

func (s *SessionService) Login(ctx context.Context, email, rawRole string) (domain.Credentials, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Credentials{}, fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	creds, err := s.issuer.Issue(ctx, email, role)
	if err != nil {
		return domain.Credentials{}, err
	}
	if err := creds.Profile.Validate(); err != nil {
		return domain.Credentials{}, fmt.Errorf("issuer returned invalid profile: %w", err)
	}
	return creds, nil
}
