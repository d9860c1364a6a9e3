package in

import (
	"context"

	"sehat/internal/modules/session/dto"
	sessionin "sehat/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, role string) (dto.LoginOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Role: role})
}
