package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mode steers how the assistant frames its answer.
type Mode string

const (
	ModeGeneral       Mode = "general"
	ModeTriage        Mode = "triage"
	ModeSecondOpinion Mode = "second_opinion"
)

func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "general":
		return ModeGeneral, nil
	case "triage":
		return ModeTriage, nil
	case "second_opinion", "second-opinion":
		return ModeSecondOpinion, nil
	default:
		return "", fmt.Errorf("unknown chat mode %q", raw)
	}
}

func (m Mode) Validate() error {
	switch m {
	case ModeGeneral, ModeTriage, ModeSecondOpinion:
		return nil
	default:
		return fmt.Errorf("unknown chat mode %q", m)
	}
}

// MessageRole distinguishes the two sides of a conversation turn.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn in the assistant transcript. Immutable once created.
type Message struct {
	ID        string
	Role      MessageRole
	Content   string
	Thoughts  []string
	Sources   []string
	Mode      Mode
	Timestamp time.Time
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("message id is required")
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("unknown message role %q", m.Role)
	}
	return nil
}

// Query is an outgoing assistant question. ContextID carries the displayed
// diagnosis id so the service can correlate the conversation.
type Query struct {
	Text      string
	Mode      Mode
	ContextID string
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("query text is required")
	}
	return q.Mode.Validate()
}
