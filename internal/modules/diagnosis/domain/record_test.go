package domain_test

import (
	"reflect"
	"testing"
	"time"

	"sehat/internal/modules/diagnosis/domain"
)

func TestParseRiskLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw     string
		want    domain.RiskLevel
		wantErr bool
	}{
		{raw: "low", want: domain.RiskLow},
		{raw: "High", want: domain.RiskHigh},
		{raw: "medium", want: domain.RiskMedium},
		{raw: "moderate", want: domain.RiskMedium},
		{raw: "critical", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseRiskLevel(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRiskLevel(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseRiskLevel(%q) = %q, %v, want %q", tt.raw, got, err, tt.want)
			}
		})
	}
}

func TestAnalyzeRequestNormalize(t *testing.T) {
	t.Parallel()
	req := domain.AnalyzeRequest{
		Symptoms: []string{"  fever ", "", "  ", "cough"},
	}
	got := req.Normalize()
	if want := []string{"fever", "cough"}; !reflect.DeepEqual(got.Symptoms, want) {
		t.Fatalf("Symptoms = %v, want %v", got.Symptoms, want)
	}
	if got.Severity != domain.DefaultSeverity {
		t.Fatalf("Severity = %d, want default %d", got.Severity, domain.DefaultSeverity)
	}

	// An explicit severity survives normalization.
	req.Severity = 8
	if got := req.Normalize(); got.Severity != 8 {
		t.Fatalf("Severity = %d, want 8", got.Severity)
	}
}

func TestAnalyzeRequestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     domain.AnalyzeRequest
		wantErr bool
	}{
		{"valid", domain.AnalyzeRequest{Symptoms: []string{"fever"}, DurationDays: 2, Severity: 5}, false},
		{"no symptoms", domain.AnalyzeRequest{Severity: 5}, true},
		{"negative duration", domain.AnalyzeRequest{Symptoms: []string{"fever"}, DurationDays: -1, Severity: 5}, true},
		{"severity too low", domain.AnalyzeRequest{Symptoms: []string{"fever"}, Severity: 0}, true},
		{"severity too high", domain.AnalyzeRequest{Symptoms: []string{"fever"}, Severity: 11}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()
	valid := domain.Record{
		AnalysisID:      "REQ-1",
		Timestamp:       time.Now(),
		RiskLevel:       domain.RiskLow,
		ConfidenceScore: 0.88,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*domain.Record)
	}{
		{"missing id", func(r *domain.Record) { r.AnalysisID = "" }},
		{"unknown risk", func(r *domain.Record) { r.RiskLevel = "Critical" }},
		{"confidence above one", func(r *domain.Record) { r.ConfidenceScore = 1.2 }},
		{"confidence negative", func(r *domain.Record) { r.ConfidenceScore = -0.1 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Fatal("want validation error")
			}
		})
	}
}
