package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	diagdomain "sehat/internal/modules/diagnosis/domain"
	"sehat/internal/modules/report/service"
	apperrors "sehat/internal/platform/errors"
)

type fakeRenderer struct {
	gotName string
	data    []byte
	err     error
}

func (f *fakeRenderer) Render(_ diagdomain.Record, patientName string) ([]byte, error) {
	f.gotName = patientName
	return f.data, f.err
}

type fakeSink struct {
	gotPath string
	gotData []byte
	err     error
}

func (f *fakeSink) Write(path string, data []byte) error {
	f.gotPath = path
	f.gotData = data
	return f.err
}

func validRecord() diagdomain.Record {
	return diagdomain.Record{
		AnalysisID:      "REQ-1",
		Timestamp:       time.Now(),
		RiskLevel:       diagdomain.RiskLow,
		ConfidenceScore: 0.88,
	}
}

func TestExportWritesRenderedBytes(t *testing.T) {
	t.Parallel()
	renderer := &fakeRenderer{data: []byte("pdf bytes")}
	sink := &fakeSink{}
	svc := service.NewReportService(renderer, sink)

	n, err := svc.Export(context.Background(), validRecord(), "Ani", "/tmp/report.pdf")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != len("pdf bytes") {
		t.Fatalf("bytes = %d, want %d", n, len("pdf bytes"))
	}
	if renderer.gotName != "Ani" {
		t.Fatalf("renderer got name %q", renderer.gotName)
	}
	if sink.gotPath != "/tmp/report.pdf" || string(sink.gotData) != "pdf bytes" {
		t.Fatalf("sink got %q/%q", sink.gotPath, sink.gotData)
	}
}

func TestExportRejectsBlankPath(t *testing.T) {
	t.Parallel()
	svc := service.NewReportService(&fakeRenderer{}, &fakeSink{})
	_, err := svc.Export(context.Background(), validRecord(), "", "  ")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExportRejectsInvalidRecord(t *testing.T) {
	t.Parallel()
	svc := service.NewReportService(&fakeRenderer{}, &fakeSink{})
	rec := validRecord()
	rec.AnalysisID = ""
	_, err := svc.Export(context.Background(), rec, "", "/tmp/r.pdf")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExportPropagatesSinkFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk full")
	svc := service.NewReportService(&fakeRenderer{data: []byte("x")}, &fakeSink{err: boom})
	_, err := svc.Export(context.Background(), validRecord(), "", "/tmp/r.pdf")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
