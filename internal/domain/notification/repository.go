package notification

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Repository interface {
	CreateNotifications(ctx context.Context, ns []models.Notification) error

	// ListNotifications returns the user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uint, onlyUnread bool) ([]models.Notification, error)

	// MarkNotificationRead fails with persistence.ErrNotFound when the
	// notification does not belong to userID.
	MarkNotificationRead(ctx context.Context, userID, id uint) error
	MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error)
}
