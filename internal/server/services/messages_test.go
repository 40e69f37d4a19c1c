package services

import (
	"context"
	"errors"
	"testing"

	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/server/models"
)

func TestMessageSend_UnknownRecipient(t *testing.T) {
	m := newFakeManager()
	svc := NewMessageService(nil, m)

	_, err := svc.Send(context.Background(), "u-sender", "nobody", "hi")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMessageSend_ResolvesRecipient(t *testing.T) {
	m := newFakeManager()
	m.users.byUsername = map[string]*models.User{
		"bobby": {ID: "u-bob", Username: "bobby"},
	}
	svc := NewMessageService(nil, m)

	msg, err := svc.Send(context.Background(), "u-alice", "bobby", "hello there")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if msg.RecipientID != "u-bob" || msg.SenderID != "u-alice" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestMessageDelete_RecipientOnly(t *testing.T) {
	m := newFakeManager()
	svc := NewMessageService(nil, m)

	m.messages.byID["m-1"] = &models.Message{ID: "m-1", SenderID: "u-a", RecipientID: "u-b"}

	if err := svc.Delete(context.Background(), "u-a", "m-1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("sender delete: want common.ErrorUnauthorized, got %v", err)
	}
	if _, ok := m.messages.byID["m-1"]; !ok {
		t.Fatal("message should survive an unauthorized delete")
	}

	if err := svc.Delete(context.Background(), "u-b", "m-1"); err != nil {
		t.Fatalf("recipient delete error: %v", err)
	}
	if _, ok := m.messages.byID["m-1"]; ok {
		t.Fatal("message should be gone after recipient delete")
	}
}

func TestMessageDelete_NotFound(t *testing.T) {
	m := newFakeManager()
	svc := NewMessageService(nil, m)

	if err := svc.Delete(context.Background(), "u-b", "m-404"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
