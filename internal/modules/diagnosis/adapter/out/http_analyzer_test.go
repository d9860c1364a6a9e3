package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	out "sehat/internal/modules/diagnosis/adapter/out"
	"sehat/internal/modules/diagnosis/domain"
	apperrors "sehat/internal/platform/errors"
	"sehat/internal/platform/rest"
)

func TestHTTPAnalyzerDecodesWireRecord(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/analyze" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["severity"] != float64(5) {
			t.Errorf("severity = %v, want 5", req["severity"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"analysis_id":                "REQ-9f",
			"timestamp":                  "2026-03-01T10:00:00Z",
			"risk_level":                 "moderate",
			"confidence_score":           0.71,
			"clinical_summary":           "Non-specific viral pattern.",
			"actionable_recommendations": []string{"Rest"},
			"rag_sources":                []string{"CDC Clinical DB v4.2"},
			"processing_time_ms":         812,
		})
	}))
	defer srv.Close()

	analyzer := out.NewHTTPAnalyzer(rest.NewClient(srv.URL, time.Second))
	rec, err := analyzer.Analyze(context.Background(), domain.AnalyzeRequest{
		Symptoms: []string{"fever"},
		Severity: 5,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.AnalysisID != "REQ-9f" {
		t.Fatalf("AnalysisID = %q", rec.AnalysisID)
	}
	if rec.RiskLevel != domain.RiskMedium {
		t.Fatalf("RiskLevel = %q, want Medium (normalized from moderate)", rec.RiskLevel)
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !rec.Timestamp.Equal(want) {
		t.Fatalf("Timestamp = %v, want %v", rec.Timestamp, want)
	}
	if rec.ProcessingTimeMS != 812 {
		t.Fatalf("ProcessingTimeMS = %d", rec.ProcessingTimeMS)
	}
}

func TestHTTPAnalyzerAcceptsFractionalTimestamp(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"analysis_id":      "REQ-1",
			"timestamp":        "2026-03-01T10:00:00.123456",
			"risk_level":       "low",
			"confidence_score": 0.88,
			"sources":          []string{"fallback field"},
		})
	}))
	defer srv.Close()

	analyzer := out.NewHTTPAnalyzer(rest.NewClient(srv.URL, time.Second))
	rec, err := analyzer.Analyze(context.Background(), domain.AnalyzeRequest{Symptoms: []string{"fever"}, Severity: 5})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.Timestamp.Year() != 2026 {
		t.Fatalf("Timestamp = %v, want parsed fractional form", rec.Timestamp)
	}
	if len(rec.Sources) != 1 || rec.Sources[0] != "fallback field" {
		t.Fatalf("Sources = %v, want fallback field used", rec.Sources)
	}
}

func TestHTTPAnalyzerRejectsUnknownRisk(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"analysis_id": "REQ-1",
			"risk_level":  "catastrophic",
		})
	}))
	defer srv.Close()

	analyzer := out.NewHTTPAnalyzer(rest.NewClient(srv.URL, time.Second))
	_, err := analyzer.Analyze(context.Background(), domain.AnalyzeRequest{Symptoms: []string{"fever"}, Severity: 5})
	if !errors.Is(err, apperrors.ErrRemoteService) {
		t.Fatalf("err = %v, want ErrRemoteService", err)
	}
}
