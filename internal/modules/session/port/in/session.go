package in

import (
	"context"

	"sehat/internal/modules/session/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
}
