package service

import (
	"context"
	"fmt"

	"sehat/internal/modules/diagnosis/domain"
	diagout "sehat/internal/modules/diagnosis/port/out"
	apperrors "sehat/internal/platform/errors"
)

type DiagnosisService struct {
	analyzer diagout.Analyzer
}

func NewDiagnosisService(analyzer diagout.Analyzer) *DiagnosisService {
	return &DiagnosisService{analyzer: analyzer}
}

// Analyze validates and normalizes the request, runs it through the analyzer
// port, and checks the returned record before handing it to callers.
func (s *DiagnosisService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (domain.Record, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	record, err := s.analyzer.Analyze(ctx, req)
	if err != nil {
		return domain.Record{}, err
	}
	if err := record.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("%w: analyzer returned invalid record: %v", apperrors.ErrRemoteService, err)
	}
	return record, nil
}
