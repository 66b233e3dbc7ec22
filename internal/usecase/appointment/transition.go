package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type transitionStep struct {
	apply  func(ap *models.Appointment, now time.Time) error
	notify func(ap *models.Appointment) []models.Notification
	action string
	meta   func(ap *models.Appointment) any
}

// transition reloads the appointment inside a transaction, applies the status
// change, persists it together with its notifications and audits it.
func (d Deps) transition(
	ctx context.Context,
	actor user.Actor,
	id uint,
	step transitionStep,
) (*models.Appointment, error) {

	var ap *models.Appointment
	err := d.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		ap, err = d.load(ctx, id, actor)
		if err != nil {
			return err
		}

		if err := step.apply(ap, d.now().UTC()); err != nil {
			return err
		}
		if err := d.Appointments.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if step.notify == nil {
			return nil
		}
		return d.Notifications.CreateNotifications(ctx, step.notify(ap))
	})
	if err != nil {
		return nil, err
	}

	var meta any
	if step.meta != nil {
		meta = step.meta(ap)
	}
	d.dispatch(&actor, ap, step.action, meta)

	return ap, nil
}
