package in

import (
	"context"

	"sehat/internal/modules/chat/dto"
)

type Usecase interface {
	Query(ctx context.Context, input dto.QueryInput) (dto.MessageOutput, error)
}
