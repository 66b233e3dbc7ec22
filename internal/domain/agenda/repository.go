package agenda

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Repository interface {
	CreateAgenda(ctx context.Context, ag *models.Agenda) error
	GetAgendaByID(ctx context.Context, id uint) (*models.Agenda, error)

	// ListAgendasByEmployee returns the employee's agendas ordered by weekday
	// and start time.
	ListAgendasByEmployee(ctx context.Context, employeeID uint) ([]models.Agenda, error)
	ListAgendasByCompany(ctx context.Context, companyID uint) ([]models.Agenda, error)
}
