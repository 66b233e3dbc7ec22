package appointment

import (
	"context"
	"math"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/timezone"
)

const (
	defaultSlotMin = 30
	maxQuantity    = 20
)

// ======================================================
// INPUT
// ======================================================

type ServiceItem struct {
	ServiceID uint
	Quantity  int
}

type CreateAppointmentInput struct {
	// Nil on the public booking page.
	Actor *user.Actor

	// Staff may name an existing client; otherwise the client is found or
	// created by email.
	ClientID    uint
	ClientName  string
	ClientEmail string
	ClientPhone string

	AgendaID   uint
	EmployeeID uint

	Date  string
	Time  string
	Notes string

	Services []ServiceItem
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	Deps
}

func NewCreateAppointment(deps Deps) *CreateAppointment {
	return &CreateAppointment{Deps: deps}
}

type target struct {
	provider  *models.User
	companyID uint
	agenda    *models.Agenda
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Agenda / employee
	// --------------------------------------------------
	tgt, err := uc.resolveTarget(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.Actor != nil && in.Actor.IsStaff() && in.Actor.CompanyID != tgt.companyID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	profile, err := company.LoadActive(ctx, uc.Companies, tgt.companyID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / time in the company timezone
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(profile.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if start.Before(uc.now().In(start.Location())) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Services (price snapshot)
	// --------------------------------------------------
	links, total, duration, err := uc.resolveServices(ctx, tgt.companyID, in.Services)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Agenda window + break
	// --------------------------------------------------
	candidates, err := uc.agendasFor(ctx, tgt, start)
	if err != nil {
		return nil, err
	}
	if duration == 0 {
		duration = defaultSlotMin * time.Minute
		if len(candidates) > 0 && candidates[0].SlotMin > 0 {
			duration = time.Duration(candidates[0].SlotMin) * time.Minute
		}
	}
	end := start.Add(duration)

	var agendaID *uint
	if tgt.agenda != nil || len(candidates) > 0 {
		fit := fittingAgenda(candidates, start, end)
		if fit == nil {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}
		id := fit.ID
		agendaID = &id
	}

	// --------------------------------------------------
	// Client + conflict + insert, atomically
	// --------------------------------------------------
	ap := &models.Appointment{
		EmployeeID: tgt.provider.ID,
		CompanyID:  tgt.companyID,
		AgendaID:   agendaID,
		Date:       start.Format(timezone.DateLayout),
		Time:       start.Format("15:04"),
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      strings.TrimSpace(in.Notes),
		TotalValue: total,
	}

	err = uc.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		client, err := uc.resolveClient(ctx, in)
		if err != nil {
			return err
		}
		ap.ClientID = client.ID

		conflict, err := uc.Appointments.HasTimeConflict(ctx, tgt.provider.ID, start, end)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := uc.Appointments.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		for i := range links {
			links[i].AppointmentID = ap.ID
		}
		if err := uc.Appointments.CreateAppointmentServices(ctx, links); err != nil {
			return err
		}

		notes := []models.Notification{}
		for _, recipient := range staffSide(ap) {
			notes = append(notes, notification.Booked(ap, recipient, client.Name))
		}
		return uc.Notifications.CreateNotifications(ctx, notes)
	})
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.dispatch(in.Actor, ap, "appointment_conflict", map[string]any{
				"start": start,
				"end":   end,
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.dispatch(in.Actor, ap, "appointment_created", nil)

	return uc.Appointments.GetAppointment(ctx, ap.ID)
}

// ======================================================
// HELPERS
// ======================================================

func (uc *CreateAppointment) resolveTarget(ctx context.Context, in CreateAppointmentInput) (*target, error) {
	switch {
	case in.AgendaID != 0:
		ag, err := uc.Agendas.GetAgendaByID(ctx, in.AgendaID)
		if err != nil {
			if persistence.IsNotFound(err) {
				return nil, httperr.ErrBusiness("agenda_not_found")
			}
			return nil, err
		}
		if !ag.Active {
			return nil, httperr.ErrBusiness("agenda_not_found")
		}
		provider, companyID, err := user.ResolveProvider(ctx, uc.Users, ag.EmployeeID)
		if err != nil {
			return nil, err
		}
		return &target{provider: provider, companyID: companyID, agenda: ag}, nil

	case in.EmployeeID != 0:
		provider, companyID, err := user.ResolveProvider(ctx, uc.Users, in.EmployeeID)
		if err != nil {
			return nil, err
		}
		return &target{provider: provider, companyID: companyID}, nil

	case in.Actor != nil && in.Actor.IsStaff():
		provider, companyID, err := user.ResolveProvider(ctx, uc.Users, in.Actor.UserID)
		if err != nil {
			return nil, err
		}
		return &target{provider: provider, companyID: companyID}, nil
	}

	return nil, httperr.ErrBusiness("missing_target")
}

func (uc *CreateAppointment) resolveServices(
	ctx context.Context,
	companyID uint,
	items []ServiceItem,
) ([]models.AppointmentService, float64, time.Duration, error) {

	links := make([]models.AppointmentService, 0, len(items))
	var (
		total    float64
		duration time.Duration
	)

	for _, item := range items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 || qty > maxQuantity {
			return nil, 0, 0, httperr.ErrBusiness("invalid_quantity")
		}

		svc, err := uc.Services.GetService(ctx, companyID, item.ServiceID)
		if err != nil {
			if persistence.IsNotFound(err) {
				return nil, 0, 0, httperr.ErrBusiness("service_not_found")
			}
			return nil, 0, 0, err
		}
		if !svc.Active {
			return nil, 0, 0, httperr.ErrBusiness("service_not_found")
		}

		links = append(links, models.AppointmentService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Quantity:    qty,
			UnitPrice:   svc.Price,
		})
		total += svc.Price * float64(qty)
		duration += time.Duration(svc.DurationMin*qty) * time.Minute
	}

	return links, math.Round(total*100) / 100, duration, nil
}

// agendasFor returns the agendas the booking may fall into: the named one,
// or the provider's active agendas for that weekday.
func (uc *CreateAppointment) agendasFor(ctx context.Context, tgt *target, start time.Time) ([]models.Agenda, error) {
	if tgt.agenda != nil {
		return []models.Agenda{*tgt.agenda}, nil
	}

	all, err := uc.Agendas.ListAgendasByEmployee(ctx, tgt.provider.ID)
	if err != nil {
		return nil, err
	}

	out := []models.Agenda{}
	for _, ag := range all {
		if ag.Active && ag.Weekday == int(start.Weekday()) {
			out = append(out, ag)
		}
	}
	return out, nil
}

func fittingAgenda(candidates []models.Agenda, start, end time.Time) *models.Agenda {
	for i := range candidates {
		if domain.FitsAgenda(candidates[i], start, end) {
			return &candidates[i]
		}
	}
	return nil
}

func (uc *CreateAppointment) resolveClient(ctx context.Context, in CreateAppointmentInput) (*models.User, error) {
	if in.Actor != nil && in.Actor.IsClient() {
		return uc.activeClient(ctx, in.Actor.UserID)
	}
	if in.Actor != nil && in.ClientID != 0 {
		return uc.activeClient(ctx, in.ClientID)
	}

	email := user.NormalizeEmail(in.ClientEmail)
	if !strings.Contains(email, "@") {
		return nil, httperr.ErrBusiness("missing_client")
	}

	existing, err := uc.Users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != models.RoleClient {
			return nil, httperr.ErrBusiness("email_in_use")
		}
		if !existing.Active {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return existing, nil
	case !persistence.IsNotFound(err):
		return nil, err
	}

	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	// Booked without an account: no password until the client registers.
	client := &models.User{
		Name:   name,
		Email:  email,
		Phone:  user.Digits(in.ClientPhone),
		Role:   models.RoleClient,
		Active: true,
	}
	if err := uc.Users.CreateUser(ctx, client); err != nil {
		if persistence.IsDuplicate(err) {
			return nil, httperr.ErrBusiness("email_in_use")
		}
		return nil, err
	}
	return client, nil
}

func (uc *CreateAppointment) activeClient(ctx context.Context, id uint) (*models.User, error) {
	u, err := uc.Users.GetUserByID(ctx, id)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	if u.Role != models.RoleClient || !u.Active {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return u, nil
}
