package out

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"sehat/internal/modules/chat/domain"
	"sehat/internal/platform/clock"
	apperrors "sehat/internal/platform/errors"
	"sehat/internal/platform/id"
)

// system prompts per mode; the remote service applies equivalent framing on
// its side, this adapter reproduces it when talking to OpenAI directly.
var modePrompts = map[domain.Mode]string{
	domain.ModeGeneral:       "You are a cautious health information assistant. Answer plainly, remind the user you are not a substitute for a clinician.",
	domain.ModeTriage:        "You are a triage assistant. Classify urgency conservatively and always advise contacting emergency services for red-flag symptoms.",
	domain.ModeSecondOpinion: "You are reviewing an existing assessment. Discuss differential considerations and recommend specialist confirmation.",
}

// OpenAIAssistant answers queries straight from the OpenAI chat API instead
// of the SehatAI service. Selected by `mode: openai`.
type OpenAIAssistant struct {
	client *openai.Client
	model  string
	clock  clock.Clock
	idGen  id.Generator
}

func NewOpenAIAssistant(apiKey, model string, clk clock.Clock, idGen id.Generator) *OpenAIAssistant {
	return &OpenAIAssistant{
		client: openai.NewClient(apiKey),
		model:  model,
		clock:  clk,
		idGen:  idGen,
	}
}

func (a *OpenAIAssistant) Query(ctx context.Context, q domain.Query) (domain.Message, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: modePrompts[q.Mode]},
	}
	if q.ContextID != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "The user is asking about analysis " + q.ContextID + " from their history.",
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: q.Text,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: 0.2,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: openai: %v", apperrors.ErrRemoteService, err)
	}
	if len(resp.Choices) == 0 {
		return domain.Message{}, fmt.Errorf("%w: openai returned no choices", apperrors.ErrRemoteService)
	}

	return domain.Message{
		ID:        a.idGen.New(),
		Role:      domain.RoleAssistant,
		Content:   resp.Choices[0].Message.Content,
		Mode:      q.Mode,
		Timestamp: a.clock.Now(),
	}, nil
}
