package dto

import "time"

type AnalyzeInput struct {
	PatientID      string
	Symptoms       []string
	DurationDays   int
	Severity       int
	MedicalHistory []string
}

type RecordOutput struct {
	AnalysisID       string
	Timestamp        time.Time
	RiskLevel        string
	ConfidenceScore  float64
	ClinicalSummary  string
	Recommendations  []string
	Sources          []string
	ProcessingTimeMS int
}
