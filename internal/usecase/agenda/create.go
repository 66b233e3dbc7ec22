package agenda

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/agenda"
	"github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

const (
	defaultSlotMin = 30
	maxSlotMin     = 8 * 60
)

type CreateAgendaInput struct {
	// Required for companies; employees always create their own agendas.
	EmployeeID uint

	Weekday    int
	StartTime  string
	EndTime    string
	BreakStart string
	BreakEnd   string
	SlotMin    int
}

type CreateAgenda struct {
	agendas agenda.Repository
	users   user.Repository
	audit   *audit.Dispatcher
}

func NewCreateAgenda(agendas agenda.Repository, users user.Repository, audit *audit.Dispatcher) *CreateAgenda {
	return &CreateAgenda{agendas: agendas, users: users, audit: audit}
}

func (uc *CreateAgenda) Execute(ctx context.Context, actor user.Actor, in CreateAgendaInput) (*models.Agenda, error) {
	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ownerID := actor.UserID
	if actor.IsCompany() {
		if in.EmployeeID == 0 {
			return nil, httperr.ErrBusiness("missing_target")
		}
		ownerID = in.EmployeeID
	}

	provider, companyID, err := user.ResolveProvider(ctx, uc.users, ownerID)
	if err != nil {
		return nil, err
	}
	if companyID != actor.CompanyID {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	slot := in.SlotMin
	if slot == 0 {
		slot = defaultSlotMin
	}

	ag := &models.Agenda{
		EmployeeID: provider.ID,
		CompanyID:  companyID,
		Weekday:    in.Weekday,
		StartTime:  strings.TrimSpace(in.StartTime),
		EndTime:    strings.TrimSpace(in.EndTime),
		BreakStart: strings.TrimSpace(in.BreakStart),
		BreakEnd:   strings.TrimSpace(in.BreakEnd),
		SlotMin:    slot,
		Active:     true,
	}
	if slot < 0 || slot > maxSlotMin || !appointment.ValidWindow(*ag) {
		return nil, httperr.ErrBusiness("invalid_agenda_window")
	}

	if err := uc.agendas.CreateAgenda(ctx, ag); err != nil {
		return nil, err
	}

	id := ag.ID
	uc.audit.Dispatch(audit.Event{
		CompanyID: companyID,
		UserID:    &actor.UserID,
		Action:    "agenda_created",
		Entity:    "agenda",
		EntityID:  &id,
	})

	return ag, nil
}

// ListAgendas returns the employee's own agendas, or every agenda of the
// company for company actors.
type ListAgendas struct {
	agendas agenda.Repository
}

func NewListAgendas(agendas agenda.Repository) *ListAgendas {
	return &ListAgendas{agendas: agendas}
}

func (uc *ListAgendas) Execute(ctx context.Context, actor user.Actor) ([]models.Agenda, error) {
	switch {
	case actor.IsCompany():
		return uc.agendas.ListAgendasByCompany(ctx, actor.UserID)
	case actor.IsStaff():
		return uc.agendas.ListAgendasByEmployee(ctx, actor.UserID)
	}
	return nil, httperr.ErrBusiness("forbidden")
}
