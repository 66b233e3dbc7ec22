package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/timezone"
)

type AvailabilityInput struct {
	EmployeeID uint
	Date       string
	ServiceIDs []uint
}

type GetAvailability struct {
	Deps
}

func NewGetAvailability(deps Deps) *GetAvailability {
	return &GetAvailability{Deps: deps}
}

// Execute returns the free slots of the employee on the given day. The slot
// length is the sum of the requested services or, without services, the
// agenda slot length.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	provider, companyID, err := user.ResolveProvider(ctx, uc.Users, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	profile, err := company.LoadActive(ctx, uc.Companies, companyID)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(profile.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := uc.now().In(day.Location())
	if !day.AddDate(0, 0, 1).After(now) {
		return []domain.TimeSlot{}, nil
	}

	agendas, err := uc.Agendas.ListAgendasByEmployee(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	duration, err := uc.slotDuration(ctx, companyID, in.ServiceIDs, agendas, day)
	if err != nil {
		return nil, err
	}

	busy, err := uc.Appointments.ListAppointments(ctx, domain.ListFilter{
		EmployeeID: provider.ID,
		Statuses:   domain.ActiveStatuses(),
		From:       day,
		To:         day.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, err
	}

	slots := domain.FreeSlots(day, agendas, busy, duration)

	// Today: only what is still ahead.
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		start, err := timezone.ParseDateTime(profile.Timezone, in.Date, s.Start)
		if err != nil || start.Before(now) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (uc *GetAvailability) slotDuration(
	ctx context.Context,
	companyID uint,
	serviceIDs []uint,
	agendas []models.Agenda,
	day time.Time,
) (time.Duration, error) {

	var total time.Duration
	for _, id := range serviceIDs {
		svc, err := uc.Services.GetService(ctx, companyID, id)
		if err != nil {
			if persistence.IsNotFound(err) {
				return 0, httperr.ErrBusiness("service_not_found")
			}
			return 0, err
		}
		if !svc.Active {
			return 0, httperr.ErrBusiness("service_not_found")
		}
		total += time.Duration(svc.DurationMin) * time.Minute
	}
	if total > 0 {
		return total, nil
	}

	for _, ag := range agendas {
		if ag.Active && ag.Weekday == int(day.Weekday()) && ag.SlotMin > 0 {
			return time.Duration(ag.SlotMin) * time.Minute, nil
		}
	}
	return defaultSlotMin * time.Minute, nil
}
