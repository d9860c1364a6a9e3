package usecase

import (
	"context"

	"sehat/internal/modules/diagnosis/domain"
	"sehat/internal/modules/diagnosis/dto"
	diagin "sehat/internal/modules/diagnosis/port/in"
	"sehat/internal/modules/diagnosis/service"
)

type Interactor struct {
	svc *service.DiagnosisService
}

func NewInteractor(svc *service.DiagnosisService) diagin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.RecordOutput, error) {
	record, err := i.svc.Analyze(ctx, domain.AnalyzeRequest{
		PatientID:      input.PatientID,
		Symptoms:       input.Symptoms,
		DurationDays:   input.DurationDays,
		Severity:       input.Severity,
		MedicalHistory: input.MedicalHistory,
	})
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return dto.RecordOutput{
		AnalysisID:       record.AnalysisID,
		Timestamp:        record.Timestamp,
		RiskLevel:        string(record.RiskLevel),
		ConfidenceScore:  record.ConfidenceScore,
		ClinicalSummary:  record.ClinicalSummary,
		Recommendations:  record.Recommendations,
		Sources:          record.Sources,
		ProcessingTimeMS: record.ProcessingTimeMS,
	}, nil
}
