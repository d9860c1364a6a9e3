package out

import (
	"context"

	"sehat/internal/modules/diagnosis/domain"
	"sehat/internal/platform/clock"
	"sehat/internal/platform/id"
)

// SimAnalyzer answers from the offline keyword engine. Deterministic for a
// given symptom set; selected only by `mode: sim`.
type SimAnalyzer struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSimAnalyzer(clk clock.Clock, idGen id.Generator) *SimAnalyzer {
	return &SimAnalyzer{clock: clk, idGen: idGen}
}

func (a *SimAnalyzer) Analyze(_ context.Context, req domain.AnalyzeRequest) (domain.Record, error) {
	start := a.clock.Now()
	assessment := domain.Assess(req.Symptoms)
	return domain.Record{
		AnalysisID:       "REQ-" + a.idGen.New(),
		Timestamp:        start,
		RiskLevel:        assessment.Risk,
		ConfidenceScore:  assessment.Confidence,
		ClinicalSummary:  assessment.Summary,
		Recommendations:  assessment.Recommendations,
		Sources:          []string{"CDC Clinical DB v4.2", "SehatAI Vector Store"},
		ProcessingTimeMS: int(a.clock.Now().Sub(start).Milliseconds()),
	}, nil
}
