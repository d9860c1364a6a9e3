package out_test

import (
	"context"
	"strings"
	"testing"
	"time"

	out "sehat/internal/modules/chat/adapter/out"
	"sehat/internal/modules/chat/domain"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type staticID struct{ v string }

func (s staticID) New() string { return s.v }

func TestSimAssistantRepliesPerMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode        domain.Mode
		wantPhrase  string
		wantSource  string
		wantThought string
	}{
		{domain.ModeGeneral, "physiological response", "Healthline Medical Review", "Generating response..."},
		{domain.ModeTriage, "Triage Protocols", "SehatAI Triage Protocols v2.1", "Calculating urgency score..."},
		{domain.ModeSecondOpinion, "differential diagnosis", "PubMed (2024)", "Comparing differential diagnoses..."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			assistant := out.NewSimAssistant(fixedClock{at: time.Now()}, staticID{v: "7"})

			msg, err := assistant.Query(context.Background(), domain.Query{Text: "dizzy spells", Mode: tt.mode})
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if msg.ID != "MSG-7" {
				t.Fatalf("ID = %q, want MSG-7", msg.ID)
			}
			if msg.Role != domain.RoleAssistant {
				t.Fatalf("Role = %q, want assistant", msg.Role)
			}
			if !strings.Contains(msg.Content, tt.wantPhrase) {
				t.Fatalf("Content = %q, want phrase %q", msg.Content, tt.wantPhrase)
			}
			if !strings.Contains(msg.Content, "dizzy spells") {
				t.Fatalf("Content = %q, want the question echoed", msg.Content)
			}
			if msg.Sources[0] != tt.wantSource {
				t.Fatalf("Sources[0] = %q, want %q", msg.Sources[0], tt.wantSource)
			}
			found := false
			for _, th := range msg.Thoughts {
				if th == tt.wantThought {
					found = true
				}
			}
			if !found {
				t.Fatalf("Thoughts = %v, want %q", msg.Thoughts, tt.wantThought)
			}
			if msg.Mode != tt.mode {
				t.Fatalf("Mode = %q, want %q", msg.Mode, tt.mode)
			}
		})
	}
}
