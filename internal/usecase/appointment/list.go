package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/timezone"
)

const monthLayout = "2006-01"

type ListAppointmentsInput struct {
	Status string
	// Date (YYYY-MM-DD) wins over Month (YYYY-MM) when both are set.
	Date  string
	Month string
}

type ListAppointments struct {
	Deps
}

func NewListAppointments(deps Deps) *ListAppointments {
	return &ListAppointments{Deps: deps}
}

// Execute lists what the actor may see, ordered by start time.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor user.Actor,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	filter := domain.ListFilter{}
	switch actor.Role {
	case models.RoleClient:
		filter.ClientID = actor.UserID
	case models.RoleEmployee:
		filter.EmployeeID = actor.UserID
	case models.RoleCompany:
		filter.CompanyID = actor.UserID
	default:
		return nil, httperr.ErrBusiness("forbidden")
	}

	if s := strings.TrimSpace(in.Status); s != "" {
		st, ok := domain.ParseStatus(s)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		filter.Statuses = []domain.Status{st}
	}

	loc := uc.location(ctx, actor)

	switch {
	case in.Date != "":
		day, err := time.ParseInLocation(timezone.DateLayout, in.Date, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.From = day
		filter.To = day.AddDate(0, 0, 1)

	case in.Month != "":
		first, err := time.ParseInLocation(monthLayout, in.Month, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.From = first
		filter.To = first.AddDate(0, 1, 0)
	}

	return uc.Appointments.ListAppointments(ctx, filter)
}

// location is the company timezone for staff and the default one for
// clients.
func (uc *ListAppointments) location(ctx context.Context, actor user.Actor) *time.Location {
	if actor.CompanyID == 0 {
		return timezone.Location(timezone.DefaultTimezone)
	}
	profile, err := uc.Companies.GetCompanyProfile(ctx, actor.CompanyID)
	if err != nil {
		return timezone.Location(timezone.DefaultTimezone)
	}
	return timezone.Location(profile.Timezone)
}

type GetAppointment struct {
	Deps
}

func NewGetAppointment(deps Deps) *GetAppointment {
	return &GetAppointment{Deps: deps}
}

func (uc *GetAppointment) Execute(ctx context.Context, actor user.Actor, id uint) (*models.Appointment, error) {
	return uc.load(ctx, id, actor)
}
