package usecase

import (
	"context"
	"fmt"

	diagdomain "sehat/internal/modules/diagnosis/domain"
	"sehat/internal/modules/report/dto"
	reportin "sehat/internal/modules/report/port/in"
	"sehat/internal/modules/report/service"
	apperrors "sehat/internal/platform/errors"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	risk, err := diagdomain.ParseRiskLevel(input.Record.RiskLevel)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	record := diagdomain.Record{
		AnalysisID:       input.Record.AnalysisID,
		Timestamp:        input.Record.Timestamp,
		RiskLevel:        risk,
		ConfidenceScore:  input.Record.ConfidenceScore,
		ClinicalSummary:  input.Record.ClinicalSummary,
		Recommendations:  input.Record.Recommendations,
		Sources:          input.Record.Sources,
		ProcessingTimeMS: input.Record.ProcessingTimeMS,
	}
	n, err := i.svc.Export(ctx, record, input.PatientName, input.Path)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: input.Path, Bytes: n}, nil
}
