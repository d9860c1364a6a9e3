package usecase

import (
	"context"

	"sehat/internal/modules/chat/domain"
	"sehat/internal/modules/chat/dto"
	chatin "sehat/internal/modules/chat/port/in"
	"sehat/internal/modules/chat/service"
)

type Interactor struct {
	svc *service.ChatService
}

func NewInteractor(svc *service.ChatService) chatin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Query(ctx context.Context, input dto.QueryInput) (dto.MessageOutput, error) {
	mode, err := domain.ParseMode(input.Mode)
	if err != nil {
		return dto.MessageOutput{}, err
	}
	msg, err := i.svc.Query(ctx, domain.Query{Text: input.Text, Mode: mode, ContextID: input.ContextID})
	if err != nil {
		return dto.MessageOutput{}, err
	}
	return dto.MessageOutput{
		ID:        msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Thoughts:  msg.Thoughts,
		Sources:   msg.Sources,
		Mode:      string(msg.Mode),
		Timestamp: msg.Timestamp,
	}, nil
}
