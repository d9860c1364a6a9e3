package domain

import (
	"fmt"
	"strings"
	"time"
)

// RiskLevel is the closed risk classification set.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func ParseRiskLevel(raw string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return RiskLow, nil
	case "medium", "moderate":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", raw)
	}
}

func (r RiskLevel) Validate() error {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return nil
	default:
		return fmt.Errorf("unknown risk level %q", r)
	}
}

// Record is one completed symptom analysis. Immutable once created.
type Record struct {
	AnalysisID       string
	Timestamp        time.Time
	RiskLevel        RiskLevel
	ConfidenceScore  float64
	ClinicalSummary  string
	Recommendations  []string
	Sources          []string
	ProcessingTimeMS int
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.AnalysisID) == "" {
		return fmt.Errorf("analysis id is required")
	}
	if err := r.RiskLevel.Validate(); err != nil {
		return err
	}
	if r.ConfidenceScore < 0 || r.ConfidenceScore > 1 {
		return fmt.Errorf("confidence score %v out of range [0,1]", r.ConfidenceScore)
	}
	return nil
}

// DefaultSeverity is the wizard's preset; an untouched severity control never
// blocks an analysis.
const DefaultSeverity = 5

// AnalyzeRequest is the input to a symptom analysis.
type AnalyzeRequest struct {
	PatientID      string
	Symptoms       []string
	DurationDays   int
	Severity       int
	MedicalHistory []string
}

// Normalize trims symptom strings and drops empty ones, and applies the
// severity default.
func (r AnalyzeRequest) Normalize() AnalyzeRequest {
	symptoms := make([]string, 0, len(r.Symptoms))
	for _, s := range r.Symptoms {
		if t := strings.TrimSpace(s); t != "" {
			symptoms = append(symptoms, t)
		}
	}
	r.Symptoms = symptoms
	if r.Severity == 0 {
		r.Severity = DefaultSeverity
	}
	return r
}

func (r AnalyzeRequest) Validate() error {
	if len(r.Symptoms) == 0 {
		return fmt.Errorf("at least one symptom is required")
	}
	if r.DurationDays < 0 {
		return fmt.Errorf("duration must be non-negative")
	}
	if r.Severity < 1 || r.Severity > 10 {
		return fmt.Errorf("severity %d out of range [1,10]", r.Severity)
	}
	return nil
}
