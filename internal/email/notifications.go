package email

import (
	"context"
	"log"

	"github.com/google/uuid"

	"campusshare/internal/config"
	"campusshare/internal/models"
)

// UserGetter is the slice of the database the notifier needs.
type UserGetter interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Notifier sends email notifications for resource events. All sends are
// best-effort: failures are logged and never surfaced to the user.
type Notifier struct {
	service   *Service
	templates *Templates
	db        UserGetter
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, db UserGetter) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		db:        db,
	}
}

// NotifyResourceRequested emails the owner that their resource was requested.
func (n *Notifier) NotifyResourceRequested(ctx context.Context, res *models.Resource, requester *models.User) {
	if !n.service.IsEnabled() {
		return
	}

	owner, err := n.db.GetUserByID(ctx, res.OwnerID)
	if err != nil {
		log.Printf("Failed to look up resource owner for notification: %v", err)
		return
	}

	subject, htmlBody, textBody := n.templates.ResourceRequested(res, requester)
	if err := n.service.SendEmail([]string{owner.Email}, subject, htmlBody, textBody); err != nil {
		log.Printf("Failed to send request notification: %v", err)
	}
}

// NotifyResourceRejected emails the submitter that the safety screen flagged
// their posting.
func (n *Notifier) NotifyResourceRejected(ctx context.Context, res *models.Resource, reason string) {
	if !n.service.IsEnabled() {
		return
	}

	subject, htmlBody, textBody := n.templates.ResourceRejected(res, reason)
	if err := n.service.SendEmail([]string{res.OwnerEmail}, subject, htmlBody, textBody); err != nil {
		log.Printf("Failed to send rejection notification: %v", err)
	}
}
