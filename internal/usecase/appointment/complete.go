package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type CompleteAppointment struct {
	Deps
}

func NewCompleteAppointment(deps Deps) *CompleteAppointment {
	return &CompleteAppointment{Deps: deps}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor user.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return uc.transition(ctx, actor, appointmentID, transitionStep{
		apply:  domain.Complete,
		action: "appointment_completed",
		notify: func(ap *models.Appointment) []models.Notification {
			return []models.Notification{notification.Completed(ap, ap.ClientID)}
		},
	})
}
