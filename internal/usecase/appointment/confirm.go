package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type ConfirmAppointment struct {
	Deps
}

func NewConfirmAppointment(deps Deps) *ConfirmAppointment {
	return &ConfirmAppointment{Deps: deps}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actor user.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return uc.transition(ctx, actor, appointmentID, transitionStep{
		apply:  domain.Confirm,
		action: "appointment_confirmed",
		notify: func(ap *models.Appointment) []models.Notification {
			return []models.Notification{notification.Confirmed(ap, ap.ClientID)}
		},
	})
}
