package in

import (
	"context"

	"sehat/internal/modules/report/dto"
	reportin "sehat/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, input)
}
