package out_test

import (
	"context"
	"strings"
	"testing"
	"time"

	out "sehat/internal/modules/diagnosis/adapter/out"
	"sehat/internal/modules/diagnosis/domain"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type staticID struct{ v string }

func (s staticID) New() string { return s.v }

func TestSimAnalyzerHighRisk(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	analyzer := out.NewSimAnalyzer(fixedClock{at: now}, staticID{v: "abc"})

	rec, err := analyzer.Analyze(context.Background(), domain.AnalyzeRequest{
		Symptoms: []string{"chest pain"},
		Severity: 7,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.AnalysisID != "REQ-abc" {
		t.Fatalf("AnalysisID = %q, want REQ-abc", rec.AnalysisID)
	}
	if rec.RiskLevel != domain.RiskHigh || rec.ConfidenceScore != 0.94 {
		t.Fatalf("got %s/%v, want High/0.94", rec.RiskLevel, rec.ConfidenceScore)
	}
	if !rec.Timestamp.Equal(now) {
		t.Fatalf("Timestamp = %v, want %v", rec.Timestamp, now)
	}
	if len(rec.Sources) == 0 || !strings.Contains(rec.Sources[0], "CDC") {
		t.Fatalf("Sources = %v, want CDC source first", rec.Sources)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("record invalid: %v", err)
	}
}

func TestSimAnalyzerLowRisk(t *testing.T) {
	t.Parallel()
	analyzer := out.NewSimAnalyzer(fixedClock{at: time.Now()}, staticID{v: "x"})

	rec, err := analyzer.Analyze(context.Background(), domain.AnalyzeRequest{
		Symptoms: []string{"runny nose"},
		Severity: 3,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.RiskLevel != domain.RiskLow || rec.ConfidenceScore != 0.88 {
		t.Fatalf("got %s/%v, want Low/0.88", rec.RiskLevel, rec.ConfidenceScore)
	}
}
