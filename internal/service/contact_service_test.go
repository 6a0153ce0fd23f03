package service

import (
	"context"
	"errors"
	"testing"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type recordingMailer struct {
	sent []domain.ContactMessage
	err  error
}

func (m *recordingMailer) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func validContact() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    " Ana ",
		Email:   "ana@example.com",
		Subject: "Group booking",
		Message: "We are six people travelling in May.",
	}
}

func TestContactService_SendTrimsAndDelivers(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewContactService(mailer)

	if err := svc.Send(context.Background(), validContact()); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Name != "Ana" {
		t.Fatalf("expected trimmed message to be sent, got %#v", mailer.sent)
	}
}

func TestContactService_Validation(t *testing.T) {
	svc := NewContactService(&recordingMailer{})

	mutations := map[string]func(*domain.ContactMessage){
		"short name":        func(m *domain.ContactMessage) { m.Name = "A" },
		"bad email":         func(m *domain.ContactMessage) { m.Email = "ana.example.com" },
		"display email":     func(m *domain.ContactMessage) { m.Email = "Ana <ana@example.com>" },
		"short subject":     func(m *domain.ContactMessage) { m.Subject = "Hi" },
		"short message":     func(m *domain.ContactMessage) { m.Message = "Thanks" },
		"multiline subject": func(m *domain.ContactMessage) { m.Subject = "Group\r\nBcc: x@y.z" },
	}
	for name, mutate := range mutations {
		msg := validContact()
		mutate(&msg)
		if err := svc.Send(context.Background(), msg); !errors.Is(err, ErrContactValidation) {
			t.Fatalf("%s: expected ErrContactValidation, got %v", name, err)
		}
	}
}

func TestContactService_NoMailer(t *testing.T) {
	if err := NewContactService(nil).Send(context.Background(), validContact()); !errors.Is(err, ErrContactUnavailable) {
		t.Fatalf("expected ErrContactUnavailable, got %v", err)
	}
}
