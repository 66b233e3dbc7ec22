package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type CancelAppointment struct {
	Deps
}

func NewCancelAppointment(deps Deps) *CancelAppointment {
	return &CancelAppointment{Deps: deps}
}

// Execute cancels on behalf of either side. The cancel attribution follows
// the actor role and the other side is notified.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor user.Actor,
	appointmentID uint,
	justification string,
) (*models.Appointment, error) {

	by := domain.CanceledByEmployee
	if actor.IsClient() {
		by = domain.CanceledByClient
	}

	return uc.transition(ctx, actor, appointmentID, transitionStep{
		apply: func(ap *models.Appointment, now time.Time) error {
			return domain.Cancel(ap, by, justification, now)
		},
		action: "appointment_canceled",
		notify: func(ap *models.Appointment) []models.Notification {
			if by == domain.CanceledByClient {
				out := []models.Notification{}
				for _, recipient := range staffSide(ap) {
					out = append(out, notification.Canceled(ap, recipient))
				}
				return out
			}
			return []models.Notification{notification.Canceled(ap, ap.ClientID)}
		},
		meta: func(ap *models.Appointment) any {
			return map[string]any{
				"cancelado_por": ap.CanceledBy,
				"justificativa": ap.CancelJustification,
			}
		},
	})
}
