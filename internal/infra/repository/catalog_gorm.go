package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/catalog"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type CatalogGormRepository struct {
	base
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{base{db: db}}
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return translate(r.conn(ctx).Omit("Company").Create(s).Error, "create service %s", s.Name)
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	return translate(r.conn(ctx).Omit("Company").Save(s).Error, "update service %d", s.ID)
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	companyID uint,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.conn(ctx).
		Where("id = ? AND empresa_id = ?", serviceID, companyID).
		First(&s).Error; err != nil {
		return nil, translate(err, "service %d", serviceID)
	}
	return &s, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	companyID uint,
	onlyActive bool,
) ([]models.Service, error) {

	services := []models.Service{}
	q := r.conn(ctx).Where("empresa_id = ?", companyID)
	if onlyActive {
		q = q.Where("ativo = ?", true)
	}
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, translate(err, "list services of %d", companyID)
	}
	return services, nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
