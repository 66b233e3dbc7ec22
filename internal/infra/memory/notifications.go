package memory

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateNotifications(ctx context.Context, ns []models.Notification) error {
	defer s.lock(ctx)()

	now := s.stamp()
	for i := range ns {
		ns[i].ID = s.t.next("notifications")
		ns[i].CreatedAt = now
		s.t.notifications[ns[i].ID] = ns[i]
	}
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID uint, onlyUnread bool) ([]models.Notification, error) {
	defer s.lock(ctx)()

	out := []models.Notification{}
	for _, n := range s.t.notifications {
		if n.UserID != userID || (onlyUnread && n.Read) {
			continue
		}
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, userID, id uint) error {
	defer s.lock(ctx)()

	n, ok := s.t.notifications[id]
	if !ok || n.UserID != userID {
		return errors.Wrapf(persistence.ErrNotFound, "notification %d", id)
	}
	n.Read = true
	s.t.notifications[id] = n
	return nil
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error) {
	defer s.lock(ctx)()

	var n int64
	for id, item := range s.t.notifications {
		if item.UserID == userID && !item.Read {
			item.Read = true
			s.t.notifications[id] = item
			n++
		}
	}
	return n, nil
}
