package ports

import (
	"context"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type ContactMailer interface {
	SendContact(ctx context.Context, msg domain.ContactMessage) error
}
