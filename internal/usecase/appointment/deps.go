package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/agenda"
	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/catalog"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// Deps are the collaborators shared by the appointment use cases.
type Deps struct {
	Tx            persistence.Transactor
	Appointments  domain.Repository
	Users         user.Repository
	Companies     company.Repository
	Services      catalog.Repository
	Agendas       agenda.Repository
	Notifications notification.Repository
	Audit         *audit.Dispatcher

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// visibleTo applies the tenancy rule: clients see their own appointments,
// employees the ones they attend, companies all of their company.
func visibleTo(ap *models.Appointment, actor user.Actor) bool {
	switch actor.Role {
	case models.RoleClient:
		return ap.ClientID == actor.UserID
	case models.RoleEmployee:
		return ap.EmployeeID == actor.UserID
	case models.RoleCompany:
		return ap.CompanyID == actor.UserID
	}
	return false
}

// load fetches an appointment the actor may see. Anything else is reported
// as not found.
func (d Deps) load(ctx context.Context, id uint, actor user.Actor) (*models.Appointment, error) {
	ap, err := d.Appointments.GetAppointment(ctx, id)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	if !visibleTo(ap, actor) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

// staffSide lists who is told about client-side changes: the employee and,
// when someone else, the company.
func staffSide(ap *models.Appointment) []uint {
	if ap.CompanyID == ap.EmployeeID {
		return []uint{ap.EmployeeID}
	}
	return []uint{ap.EmployeeID, ap.CompanyID}
}

func (d Deps) dispatch(actor *user.Actor, ap *models.Appointment, action string, meta any) {
	var userID *uint
	if actor != nil {
		id := actor.UserID
		userID = &id
	}
	id := ap.ID
	d.Audit.Dispatch(audit.Event{
		CompanyID: ap.CompanyID,
		UserID:    userID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  &id,
		Metadata:  meta,
	})
}
