package catalog

import (
	"context"
	"math"
	"strings"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/catalog"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

const maxDurationMin = 8 * 60

func validDuration(min int) bool {
	return min > 0 && min <= maxDurationMin
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}

// ======================================================
// LIST
// ======================================================

type ListServices struct {
	services  catalog.Repository
	companies company.Repository
}

func NewListServices(services catalog.Repository, companies company.Repository) *ListServices {
	return &ListServices{services: services, companies: companies}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	companyID uint,
	includeInactive bool,
) ([]models.Service, error) {

	if _, err := company.LoadActive(ctx, uc.companies, companyID); err != nil {
		return nil, err
	}
	return uc.services.ListServices(ctx, companyID, !includeInactive)
}

// ======================================================
// CREATE
// ======================================================

type CreateServiceInput struct {
	Name        string
	Description string
	DurationMin int
	Price       float64
	Category    string
}

type CreateService struct {
	services catalog.Repository
	audit    *audit.Dispatcher
}

func NewCreateService(services catalog.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{services: services, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor user.Actor,
	in CreateServiceInput,
) (*models.Service, error) {

	if !actor.IsCompany() {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if !validDuration(in.DurationMin) {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	if !validPrice(in.Price) {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	svc := &models.Service{
		CompanyID:   actor.UserID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		DurationMin: in.DurationMin,
		Price:       math.Round(in.Price*100) / 100,
		Category:    strings.TrimSpace(in.Category),
		Active:      true,
	}

	if err := uc.services.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.UserID,
		UserID:    &actor.UserID,
		Action:    "service_created",
		Entity:    "servico",
		EntityID:  &svc.ID,
	})

	return svc, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateServiceInput struct {
	Name        *string
	Description *string
	DurationMin *int
	Price       *float64
	Category    *string
	Active      *bool
}

type UpdateService struct {
	services catalog.Repository
	audit    *audit.Dispatcher
}

func NewUpdateService(services catalog.Repository, audit *audit.Dispatcher) *UpdateService {
	return &UpdateService{services: services, audit: audit}
}

// Execute applies a partial update. Only the owning company sees the service.
func (uc *UpdateService) Execute(
	ctx context.Context,
	actor user.Actor,
	serviceID uint,
	in UpdateServiceInput,
) (*models.Service, error) {

	if !actor.IsCompany() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	svc, err := uc.services.GetService(ctx, actor.UserID, serviceID)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		svc.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		svc.Description = strings.TrimSpace(*in.Description)
	}
	if in.DurationMin != nil {
		if !validDuration(*in.DurationMin) {
			return nil, httperr.ErrBusiness("invalid_duration")
		}
		svc.DurationMin = *in.DurationMin
	}
	if in.Price != nil {
		if !validPrice(*in.Price) {
			return nil, httperr.ErrBusiness("invalid_price")
		}
		svc.Price = math.Round(*in.Price*100) / 100
	}
	if in.Category != nil {
		svc.Category = strings.TrimSpace(*in.Category)
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}

	if err := uc.services.UpdateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.UserID,
		UserID:    &actor.UserID,
		Action:    "service_updated",
		Entity:    "servico",
		EntityID:  &svc.ID,
	})

	return svc, nil
}
