package service

import (
	"context"
	"fmt"
	"strings"

	diagdomain "sehat/internal/modules/diagnosis/domain"
	reportout "sehat/internal/modules/report/port/out"
	apperrors "sehat/internal/platform/errors"
)

type ReportService struct {
	renderer reportout.Renderer
	sink     reportout.Sink
}

func NewReportService(renderer reportout.Renderer, sink reportout.Sink) *ReportService {
	return &ReportService{renderer: renderer, sink: sink}
}

func (s *ReportService) Export(_ context.Context, record diagdomain.Record, patientName, path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, fmt.Errorf("%w: report path is required", apperrors.ErrInvalidInput)
	}
	if err := record.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	data, err := s.renderer.Render(record, patientName)
	if err != nil {
		return 0, fmt.Errorf("render report: %w", err)
	}
	if err := s.sink.Write(path, data); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return len(data), nil
}
