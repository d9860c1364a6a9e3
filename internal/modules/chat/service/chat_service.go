package service

import (
	"context"
	"fmt"

	"sehat/internal/modules/chat/domain"
	chatout "sehat/internal/modules/chat/port/out"
	apperrors "sehat/internal/platform/errors"
)

type ChatService struct {
	assistant chatout.Assistant
}

func NewChatService(assistant chatout.Assistant) *ChatService {
	return &ChatService{assistant: assistant}
}

func (s *ChatService) Query(ctx context.Context, q domain.Query) (domain.Message, error) {
	if err := q.Validate(); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	msg, err := s.assistant.Query(ctx, q)
	if err != nil {
		return domain.Message{}, err
	}
	// Replies echo the outgoing mode so the transcript can group turns even
	// when the backend omits it.
	if msg.Mode == "" {
		msg.Mode = q.Mode
	}
	if err := msg.Validate(); err != nil {
		return domain.Message{}, fmt.Errorf("%w: assistant returned invalid message: %v", apperrors.ErrRemoteService, err)
	}
	return msg, nil
}
