package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type SendReminder struct {
	Deps
}

func NewSendReminder(deps Deps) *SendReminder {
	return &SendReminder{Deps: deps}
}

// Execute notifies the client about an upcoming appointment. Only pending
// or confirmed appointments can be reminded.
func (uc *SendReminder) Execute(
	ctx context.Context,
	actor user.Actor,
	appointmentID uint,
) (*models.Notification, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.load(ctx, appointmentID, actor)
	if err != nil {
		return nil, err
	}

	st, ok := domain.ParseStatus(ap.Status)
	if !ok || st.Terminal() {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	n := notification.Reminder(ap, ap.ClientID)
	batch := []models.Notification{n}
	if err := uc.Notifications.CreateNotifications(ctx, batch); err != nil {
		return nil, err
	}

	uc.dispatch(&actor, ap, "appointment_reminder_sent", nil)

	return &batch[0], nil
}
