package domain

import "strings"

// Assessment is the offline engine's verdict for one symptom set.
type Assessment struct {
	Risk            RiskLevel
	Summary         string
	Recommendations []string
	Confidence      float64
}

// redFlags trigger the High classification. This list is the single point of
// policy control for the offline degraded mode; the real analysis service
// owns the production classifier.
var redFlags = []string{
	"chest pain",
	"shortness of breath",
	"severe",
	"heart",
	"stroke",
}

// Assess classifies symptoms with the deterministic keyword engine. Only the
// sim adapters call it; results are plausible, not clinical.
func Assess(symptoms []string) Assessment {
	text := strings.ToLower(strings.Join(symptoms, " "))
	for _, flag := range redFlags {
		if strings.Contains(text, flag) {
			return Assessment{
				Risk:    RiskHigh,
				Summary: "Detected pattern correlation with acute cardiovascular distress vectors. Immediate intervention protocols recommended.",
				Recommendations: []string{
					"Initiate Emergency Protocol (Code Red)",
					"Avoid Exertion",
					"Contact 911",
				},
				Confidence: 0.94,
			}
		}
	}
	return Assessment{
		Risk:    RiskLow,
		Summary: "Symptom cluster aligns with seasonal viral markers (ICD-10-J00). No acute anomalies detected in vector space.",
		Recommendations: []string{
			"Hydration Protocol: +20% Intake",
			"Rest Cycle: 8h Minimum",
			"Monitor Thermal Output",
		},
		Confidence: 0.88,
	}
}
