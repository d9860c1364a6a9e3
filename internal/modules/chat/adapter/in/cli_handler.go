package in

import (
	"context"

	"sehat/internal/modules/chat/dto"
	chatin "sehat/internal/modules/chat/port/in"
)

type CLIHandler struct {
	usecase chatin.Usecase
}

func NewCLIHandler(usecase chatin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Query(ctx context.Context, text, mode, contextID string) (dto.MessageOutput, error) {
	return h.usecase.Query(ctx, dto.QueryInput{Text: text, Mode: mode, ContextID: contextID})
}
