package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

func TestContactMailer_SendContact(t *testing.T) {
	m := NewContactMailer("smtp.example.com", "587", "", "", "planner@example.com", "support@example.com", false)
	m.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }

	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		if auth != nil {
			t.Errorf("expected no auth without credentials")
		}
		return nil
	}

	err := m.SendContact(context.Background(), domain.ContactMessage{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Group booking",
		Message: "Hello\nWe are six.",
	})
	if err != nil {
		t.Fatalf("SendContact returned error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" || len(gotTo) != 1 || gotTo[0] != "support@example.com" {
		t.Fatalf("unexpected envelope %s %v", gotAddr, gotTo)
	}
	for _, want := range []string{"Reply-To: ana@example.com\r\n", "Subject: [Contact] Group booking\r\n", "Hello\r\nWe are six."} {
		if !strings.Contains(gotMsg, want) {
			t.Fatalf("expected message to contain %q, got %q", want, gotMsg)
		}
	}
}

func TestContactMailer_Unconfigured(t *testing.T) {
	m := NewContactMailer("", "", "", "", "", "", false)
	if m.Configured() {
		t.Fatalf("expected mailer to be unconfigured")
	}
	if err := m.SendContact(context.Background(), domain.ContactMessage{}); err == nil {
		t.Fatalf("expected error from unconfigured mailer")
	}
}
