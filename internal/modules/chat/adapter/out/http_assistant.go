package out

import (
	"context"
	"time"

	"sehat/internal/modules/chat/domain"
	"sehat/internal/platform/rest"
)

// HTTPAssistant calls the SehatAI LLM query endpoint.
type HTTPAssistant struct {
	client *rest.Client
}

func NewHTTPAssistant(client *rest.Client) *HTTPAssistant {
	return &HTTPAssistant{client: client}
}

type queryRequest struct {
	Query     string `json:"query"`
	Mode      string `json:"mode"`
	ContextID string `json:"context_id,omitempty"`
}

type queryResponse struct {
	ID        string   `json:"id"`
	QueryID   string   `json:"query_id"`
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	Answer    string   `json:"answer"`
	Thoughts  []string `json:"thoughts"`
	Sources   []string `json:"sources"`
	Timestamp string   `json:"timestamp"`
}

func (a *HTTPAssistant) Query(ctx context.Context, q domain.Query) (domain.Message, error) {
	var resp queryResponse
	err := a.client.PostJSON(ctx, "/api/v1/llm/query", queryRequest{
		Query:     q.Text,
		Mode:      string(q.Mode),
		ContextID: q.ContextID,
	}, &resp)
	if err != nil {
		return domain.Message{}, err
	}

	// The gateway and the raw service disagree on field names; accept both.
	id := resp.ID
	if id == "" {
		id = resp.QueryID
	}
	content := resp.Content
	if content == "" {
		content = resp.Answer
	}
	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}
	return domain.Message{
		ID:        id,
		Role:      domain.RoleAssistant,
		Content:   content,
		Thoughts:  resp.Thoughts,
		Sources:   resp.Sources,
		Mode:      q.Mode,
		Timestamp: ts,
	}, nil
}
