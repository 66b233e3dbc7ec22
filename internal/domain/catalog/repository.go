package catalog

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Repository interface {
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error

	GetService(ctx context.Context, companyID, serviceID uint) (*models.Service, error)
	ListServices(ctx context.Context, companyID uint, onlyActive bool) ([]models.Service, error)
}
