package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type NotificationGormRepository struct {
	base
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{base{db: db}}
}

func (r *NotificationGormRepository) CreateNotifications(ctx context.Context, ns []models.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return translate(r.conn(ctx).Create(&ns).Error, "create notifications")
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
	userID uint,
	onlyUnread bool,
) ([]models.Notification, error) {

	q := r.conn(ctx).Where("usuario_id = ?", userID)
	if onlyUnread {
		q = q.Where("lida = ?", false)
	}

	ns := []models.Notification{}
	if err := q.Order("id DESC").Find(&ns).Error; err != nil {
		return nil, translate(err, "list notifications of %d", userID)
	}
	return ns, nil
}

func (r *NotificationGormRepository) MarkNotificationRead(ctx context.Context, userID, id uint) error {
	res := r.conn(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND usuario_id = ?", id, userID).
		Update("lida", true)
	if res.Error != nil {
		return translate(res.Error, "mark notification %d", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(persistence.ErrNotFound, "notification %d", id)
	}
	return nil
}

func (r *NotificationGormRepository) MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error) {
	res := r.conn(ctx).
		Model(&models.Notification{}).
		Where("usuario_id = ? AND lida = ?", userID, false).
		Update("lida", true)
	if res.Error != nil {
		return 0, translate(res.Error, "mark notifications of %d", userID)
	}
	return res.RowsAffected, nil
}

var _ notification.Repository = (*NotificationGormRepository)(nil)
