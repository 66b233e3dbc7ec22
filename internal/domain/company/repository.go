package company

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Repository interface {
	CreateCompanyProfile(ctx context.Context, p *models.CompanyProfile) error
	UpdateCompanyProfile(ctx context.Context, p *models.CompanyProfile) error

	// GetCompanyProfile loads the profile with its User.
	GetCompanyProfile(ctx context.Context, companyID uint) (*models.CompanyProfile, error)

	// ListActiveCompanies returns active profiles of active company users,
	// with their User, ordered by id.
	ListActiveCompanies(ctx context.Context) ([]models.CompanyProfile, error)
}
