package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sehat/internal/modules/chat/domain"
	"sehat/internal/modules/chat/service"
	apperrors "sehat/internal/platform/errors"
)

type fakeAssistant struct {
	got   domain.Query
	reply domain.Message
	err   error
}

func (f *fakeAssistant) Query(_ context.Context, q domain.Query) (domain.Message, error) {
	f.got = q
	return f.reply, f.err
}

func validReply() domain.Message {
	return domain.Message{
		ID:        "MSG-1",
		Role:      domain.RoleAssistant,
		Content:   "drink water",
		Mode:      domain.ModeGeneral,
		Timestamp: time.Now(),
	}
}

func TestQueryPassesContextID(t *testing.T) {
	t.Parallel()
	assistant := &fakeAssistant{reply: validReply()}
	svc := service.NewChatService(assistant)

	_, err := svc.Query(context.Background(), domain.Query{
		Text:      "should I worry",
		Mode:      domain.ModeTriage,
		ContextID: "REQ-7",
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if assistant.got.ContextID != "REQ-7" {
		t.Fatalf("port got context %q, want REQ-7", assistant.got.ContextID)
	}
}

func TestQueryEchoesModeOntoReply(t *testing.T) {
	t.Parallel()
	reply := validReply()
	reply.Mode = ""
	svc := service.NewChatService(&fakeAssistant{reply: reply})

	msg, err := svc.Query(context.Background(), domain.Query{Text: "hi", Mode: domain.ModeSecondOpinion})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if msg.Mode != domain.ModeSecondOpinion {
		t.Fatalf("Mode = %q, want second_opinion", msg.Mode)
	}
}

func TestQueryRejectsBlankText(t *testing.T) {
	t.Parallel()
	svc := service.NewChatService(&fakeAssistant{reply: validReply()})
	_, err := svc.Query(context.Background(), domain.Query{Text: " ", Mode: domain.ModeGeneral})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestQueryWrapsInvalidReply(t *testing.T) {
	t.Parallel()
	reply := validReply()
	reply.ID = ""
	svc := service.NewChatService(&fakeAssistant{reply: reply})
	_, err := svc.Query(context.Background(), domain.Query{Text: "hi", Mode: domain.ModeGeneral})
	if !errors.Is(err, apperrors.ErrRemoteService) {
		t.Fatalf("err = %v, want ErrRemoteService", err)
	}
}
