package in

import (
	"context"

	"sehat/internal/modules/diagnosis/dto"
	diagin "sehat/internal/modules/diagnosis/port/in"
)

type CLIHandler struct {
	usecase diagin.Usecase
}

func NewCLIHandler(usecase diagin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Analyze(ctx context.Context, patientID string, symptoms []string, durationDays, severity int, history []string) (dto.RecordOutput, error) {
	return h.usecase.Analyze(ctx, dto.AnalyzeInput{
		PatientID:      patientID,
		Symptoms:       symptoms,
		DurationDays:   durationDays,
		Severity:       severity,
		MedicalHistory: history,
	})
}
