package company

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// LoadActive returns the profile of an active company, or company_not_found.
func LoadActive(ctx context.Context, repo Repository, id uint) (*models.CompanyProfile, error) {
	p, err := repo.GetCompanyProfile(ctx, id)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, httperr.ErrBusiness("company_not_found")
		}
		return nil, err
	}
	if !p.Active || !p.User.Active || p.User.Role != models.RoleCompany {
		return nil, httperr.ErrBusiness("company_not_found")
	}
	return p, nil
}
