package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type CompanyGormRepository struct {
	base
}

func NewCompanyGormRepository(db *gorm.DB) *CompanyGormRepository {
	return &CompanyGormRepository{base{db: db}}
}

func (r *CompanyGormRepository) CreateCompanyProfile(ctx context.Context, p *models.CompanyProfile) error {
	return translate(r.conn(ctx).Omit("User").Create(p).Error, "create company profile %d", p.UserID)
}

func (r *CompanyGormRepository) UpdateCompanyProfile(ctx context.Context, p *models.CompanyProfile) error {
	return translate(r.conn(ctx).Omit("User").Save(p).Error, "update company profile %d", p.UserID)
}

func (r *CompanyGormRepository) GetCompanyProfile(ctx context.Context, companyID uint) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	if err := r.conn(ctx).
		Preload("User").
		Where("user_id = ?", companyID).
		First(&p).Error; err != nil {
		return nil, translate(err, "company profile %d", companyID)
	}
	return &p, nil
}

func (r *CompanyGormRepository) ListActiveCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	profiles := []models.CompanyProfile{}
	if err := r.conn(ctx).
		Joins("User").
		Where("empresas.ativo = ?", true).
		Where(`"User".ativo = ? AND "User".tipo = ?`, true, models.RoleCompany).
		Order("empresas.user_id ASC").
		Find(&profiles).Error; err != nil {
		return nil, translate(err, "list companies")
	}
	return profiles, nil
}

var _ company.Repository = (*CompanyGormRepository)(nil)
