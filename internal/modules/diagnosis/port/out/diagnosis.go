package out

import (
	"context"

	"sehat/internal/modules/diagnosis/domain"
)

// Analyzer runs one symptom analysis. Implementations hold no state and do
// not retry.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (domain.Record, error)
}
