package notification

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// Inbox groups the per-user notification operations.
type Inbox struct {
	repo notification.Repository
}

func NewInbox(repo notification.Repository) *Inbox {
	return &Inbox{repo: repo}
}

// List returns the user's notifications, newest first.
func (uc *Inbox) List(ctx context.Context, userID uint, onlyUnread bool) ([]models.Notification, error) {
	return uc.repo.ListNotifications(ctx, userID, onlyUnread)
}

func (uc *Inbox) MarkRead(ctx context.Context, userID, id uint) error {
	if err := uc.repo.MarkNotificationRead(ctx, userID, id); err != nil {
		if persistence.IsNotFound(err) {
			return httperr.ErrBusiness("notification_not_found")
		}
		return err
	}
	return nil
}

// MarkAllRead returns how many notifications changed.
func (uc *Inbox) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return uc.repo.MarkAllNotificationsRead(ctx, userID)
}
