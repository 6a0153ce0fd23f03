package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// ContactMailer forwards contact form messages to a fixed inbox.
type ContactMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	inbox    string
	useTLS   bool
	send     sendFunc
	now      func() time.Time
}

var _ ports.ContactMailer = (*ContactMailer)(nil)

func NewContactMailer(host, port, username, password, from, inbox string, useTLS bool) *ContactMailer {
	m := &ContactMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		inbox:    strings.TrimSpace(inbox),
		useTLS:   useTLS,
		now:      time.Now,
	}
	m.send = smtp.SendMail
	if useTLS {
		m.send = m.sendImplicitTLS
	}
	return m
}

// Configured reports whether enough settings are present to deliver mail.
func (m *ContactMailer) Configured() bool {
	return m != nil && m.host != "" && m.port != "" && m.from != "" && m.inbox != ""
}

func (m *ContactMailer) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	if !m.Configured() {
		return errors.New("mailer missing configuration")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	addr := net.JoinHostPort(m.host, m.port)
	return m.send(addr, auth, m.from, []string{m.inbox}, m.compose(msg))
}

func (m *ContactMailer) compose(msg domain.ContactMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", m.inbox)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", "[Contact] "+msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", m.now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\n\r\n", msg.Name, msg.Email)
	b.WriteString(strings.ReplaceAll(msg.Message, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

func (m *ContactMailer) sendImplicitTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12})
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
