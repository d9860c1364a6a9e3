package in

import (
	"context"

	"sehat/internal/modules/diagnosis/dto"
)

type Usecase interface {
	Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.RecordOutput, error)
}
