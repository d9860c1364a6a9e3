package out

import (
	"context"
	"fmt"

	"sehat/internal/modules/chat/domain"
	"sehat/internal/platform/clock"
	"sehat/internal/platform/id"
)

// SimAssistant answers with deterministic canned replies per mode. Offline
// degraded mode only.
type SimAssistant struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSimAssistant(clk clock.Clock, idGen id.Generator) *SimAssistant {
	return &SimAssistant{clock: clk, idGen: idGen}
}

func (a *SimAssistant) Query(_ context.Context, q domain.Query) (domain.Message, error) {
	var content string
	var thoughts, sources []string

	switch q.Mode {
	case domain.ModeTriage:
		content = fmt.Sprintf("Based on the Triage Protocols, %q warrants monitoring. Please track body temperature and hydration levels every 4 hours.", q.Text)
		thoughts = []string{
			"Parsing symptom entities...",
			"Mapping to SNOMED-CT codes...",
			"Retrieving triage protocols from Vector Store...",
			"Calculating urgency score...",
		}
		sources = []string{"SehatAI Triage Protocols v2.1", "Mayo Clinic Symptom Checker"}
	case domain.ModeSecondOpinion:
		content = fmt.Sprintf("Reviewing %q against differential diagnosis models. Consider possibilities of X or Y. Consult a specialist for confirmation.", q.Text)
		thoughts = []string{
			"Analyzing clinical context...",
			"Searching PubMed for recent studies...",
			"Comparing differential diagnoses...",
			"Verifying safety contraindications...",
		}
		sources = []string{"PubMed (2024)", "JAMA Network Open"}
	default:
		content = fmt.Sprintf("Regarding %q: This is typically a physiological response. Maintain current health protocols and monitor for changes.", q.Text)
		thoughts = []string{
			"Understanding natural language query...",
			"Accessing General Health Knowledge Graph...",
			"Filtering for safety guardrails...",
			"Generating response...",
		}
		sources = []string{"Healthline Medical Review", "SehatAI General Knowledge Base"}
	}

	return domain.Message{
		ID:        "MSG-" + a.idGen.New(),
		Role:      domain.RoleAssistant,
		Content:   content,
		Thoughts:  thoughts,
		Sources:   sources,
		Mode:      q.Mode,
		Timestamp: a.clock.Now(),
	}, nil
}
