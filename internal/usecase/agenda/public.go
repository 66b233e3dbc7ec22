package agenda

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/domain/agenda"
	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/catalog"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/models"
	appointmentuc "github.com/BruksfildServices01/agendapro/internal/usecase/appointment"
	companyuc "github.com/BruksfildServices01/agendapro/internal/usecase/company"
)

// PublicView is what the booking page of one employee needs.
type PublicView struct {
	Employee  *models.User      `json:"funcionario"`
	Company   *companyuc.Detail `json:"empresa"`
	Agendas   []models.Agenda   `json:"agendas"`
	Services  []models.Service  `json:"servicos"`
	Date      string            `json:"data,omitempty"`
	FreeSlots []domain.TimeSlot `json:"horarios_livres,omitempty"`
}

type GetPublicView struct {
	users        user.Repository
	agendas      agenda.Repository
	services     catalog.Repository
	company      *companyuc.GetCompany
	availability *appointmentuc.GetAvailability
}

func NewGetPublicView(
	users user.Repository,
	agendas agenda.Repository,
	services catalog.Repository,
	company *companyuc.GetCompany,
	availability *appointmentuc.GetAvailability,
) *GetPublicView {
	return &GetPublicView{
		users:        users,
		agendas:      agendas,
		services:     services,
		company:      company,
		availability: availability,
	}
}

// Execute loads the employee's active agendas and the company's active
// services. Free slots are only computed when date is given.
func (uc *GetPublicView) Execute(ctx context.Context, userID uint, date string) (*PublicView, error) {
	provider, companyID, err := user.ResolveProvider(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	detail, err := uc.company.Execute(ctx, companyID)
	if err != nil {
		return nil, err
	}

	all, err := uc.agendas.ListAgendasByEmployee(ctx, provider.ID)
	if err != nil {
		return nil, err
	}
	active := []models.Agenda{}
	for _, ag := range all {
		if ag.Active {
			active = append(active, ag)
		}
	}

	services, err := uc.services.ListServices(ctx, companyID, true)
	if err != nil {
		return nil, err
	}

	view := &PublicView{
		Employee: provider,
		Company:  detail,
		Agendas:  active,
		Services: services,
	}

	if date != "" {
		slots, err := uc.availability.Execute(ctx, appointmentuc.AvailabilityInput{
			EmployeeID: provider.ID,
			Date:       date,
		})
		if err != nil {
			return nil, err
		}
		view.Date = date
		view.FreeSlots = slots
	}

	return view, nil
}
