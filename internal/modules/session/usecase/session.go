package usecase

import (
	"context"

	"sehat/internal/modules/session/dto"
	sessionin "sehat/internal/modules/session/port/in"
	"sehat/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	creds, err := i.svc.Login(ctx, input.Email, input.Role)
	if err != nil {
		return dto.LoginOutput{}, err
	}
	return dto.LoginOutput{
		Token:     creds.Token,
		ProfileID: creds.Profile.ID,
		Name:      creds.Profile.Name,
		Email:     creds.Profile.Email,
		Role:      string(creds.Profile.Role),
		IsPremium: creds.Profile.IsPremium,
	}, nil
}
