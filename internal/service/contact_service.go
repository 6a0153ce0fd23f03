package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

var (
	ErrContactValidation  = errors.New("contact message validation failed")
	ErrContactUnavailable = errors.New("contact mailer not configured")
)

type ContactService struct {
	mailer ports.ContactMailer
}

func NewContactService(mailer ports.ContactMailer) *ContactService {
	return &ContactService{mailer: mailer}
}

func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := validateContact(msg); err != nil {
		return err
	}
	if s.mailer == nil {
		return ErrContactUnavailable
	}
	return s.mailer.SendContact(ctx, msg)
}

func validateContact(msg domain.ContactMessage) error {
	switch {
	case utf8.RuneCountInString(msg.Name) < 2:
		return fmt.Errorf("%w: name must be at least 2 characters", ErrContactValidation)
	case !validEmail(msg.Email):
		return fmt.Errorf("%w: please enter a valid email address", ErrContactValidation)
	case utf8.RuneCountInString(msg.Subject) < 5:
		return fmt.Errorf("%w: subject must be at least 5 characters", ErrContactValidation)
	case utf8.RuneCountInString(msg.Message) < 10:
		return fmt.Errorf("%w: message must be at least 10 characters", ErrContactValidation)
	case strings.ContainsAny(msg.Subject, "\r\n"):
		return fmt.Errorf("%w: subject must be a single line", ErrContactValidation)
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, "@")
}
