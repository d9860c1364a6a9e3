package out

import (
	"context"
	"fmt"
	"time"

	"sehat/internal/modules/diagnosis/domain"
	apperrors "sehat/internal/platform/errors"
	"sehat/internal/platform/rest"
)

// HTTPAnalyzer calls the SehatAI analysis endpoint.
type HTTPAnalyzer struct {
	client *rest.Client
}

func NewHTTPAnalyzer(client *rest.Client) *HTTPAnalyzer {
	return &HTTPAnalyzer{client: client}
}

type analyzeRequest struct {
	PatientID      string   `json:"patient_id"`
	Symptoms       []string `json:"symptoms"`
	DurationDays   int      `json:"duration_days"`
	Severity       int      `json:"severity"`
	MedicalHistory []string `json:"medical_history"`
}

type analyzeResponse struct {
	AnalysisID       string   `json:"analysis_id"`
	Timestamp        string   `json:"timestamp"`
	RiskLevel        string   `json:"risk_level"`
	ConfidenceScore  float64  `json:"confidence_score"`
	ClinicalSummary  string   `json:"clinical_summary"`
	Recommendations  []string `json:"actionable_recommendations"`
	RAGSources       []string `json:"rag_sources"`
	Sources          []string `json:"sources"`
	ProcessingTimeMS int      `json:"processing_time_ms"`
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, req domain.AnalyzeRequest) (domain.Record, error) {
	var resp analyzeResponse
	err := a.client.PostJSON(ctx, "/api/v1/analyze", analyzeRequest{
		PatientID:      req.PatientID,
		Symptoms:       req.Symptoms,
		DurationDays:   req.DurationDays,
		Severity:       req.Severity,
		MedicalHistory: req.MedicalHistory,
	}, &resp)
	if err != nil {
		return domain.Record{}, err
	}
	return resp.toRecord()
}

func (r analyzeResponse) toRecord() (domain.Record, error) {
	risk, err := domain.ParseRiskLevel(r.RiskLevel)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", apperrors.ErrRemoteService, err)
	}
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		// Some deployments emit fractional ISO timestamps without a zone.
		ts, err = time.Parse("2006-01-02T15:04:05.999999", r.Timestamp)
	}
	if err != nil {
		ts = time.Now().UTC()
	}
	sources := r.RAGSources
	if len(sources) == 0 {
		sources = r.Sources
	}
	return domain.Record{
		AnalysisID:       r.AnalysisID,
		Timestamp:        ts,
		RiskLevel:        risk,
		ConfidenceScore:  r.ConfidenceScore,
		ClinicalSummary:  r.ClinicalSummary,
		Recommendations:  r.Recommendations,
		Sources:          sources,
		ProcessingTimeMS: r.ProcessingTimeMS,
	}, nil
}
