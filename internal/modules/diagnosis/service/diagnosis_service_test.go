package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sehat/internal/modules/diagnosis/domain"
	"sehat/internal/modules/diagnosis/service"
	apperrors "sehat/internal/platform/errors"
)

type fakeAnalyzer struct {
	got    domain.AnalyzeRequest
	record domain.Record
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req domain.AnalyzeRequest) (domain.Record, error) {
	f.got = req
	return f.record, f.err
}

func validRecord() domain.Record {
	return domain.Record{
		AnalysisID:      "REQ-1",
		Timestamp:       time.Now(),
		RiskLevel:       domain.RiskLow,
		ConfidenceScore: 0.88,
	}
}

func TestAnalyzeNormalizesBeforeCallingPort(t *testing.T) {
	t.Parallel()
	analyzer := &fakeAnalyzer{record: validRecord()}
	svc := service.NewDiagnosisService(analyzer)

	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Symptoms: []string{" fever ", ""},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analyzer.got.Symptoms) != 1 || analyzer.got.Symptoms[0] != "fever" {
		t.Fatalf("port got symptoms %v, want [fever]", analyzer.got.Symptoms)
	}
	if analyzer.got.Severity != domain.DefaultSeverity {
		t.Fatalf("port got severity %d, want default", analyzer.got.Severity)
	}
}

func TestAnalyzeRejectsEmptyRequest(t *testing.T) {
	t.Parallel()
	svc := service.NewDiagnosisService(&fakeAnalyzer{record: validRecord()})

	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAnalyzeWrapsInvalidPortRecord(t *testing.T) {
	t.Parallel()
	bad := validRecord()
	bad.ConfidenceScore = 7
	svc := service.NewDiagnosisService(&fakeAnalyzer{record: bad})

	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{Symptoms: []string{"fever"}})
	if !errors.Is(err, apperrors.ErrRemoteService) {
		t.Fatalf("err = %v, want ErrRemoteService", err)
	}
}

func TestAnalyzePropagatesPortError(t *testing.T) {
	t.Parallel()
	boom := errors.New("timeout")
	svc := service.NewDiagnosisService(&fakeAnalyzer{err: boom})

	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{Symptoms: []string{"fever"}})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
