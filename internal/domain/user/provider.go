package user

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// ResolveProvider loads the user that attends appointments: an active
// employee, or an active company attending by itself. It returns the provider
// and the company it works for.
func ResolveProvider(ctx context.Context, repo Repository, id uint) (*models.User, uint, error) {
	u, err := repo.GetUserByID(ctx, id)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, 0, httperr.ErrBusiness("employee_not_found")
		}
		return nil, 0, err
	}

	if !u.Active || !u.Role.Staff() {
		return nil, 0, httperr.ErrBusiness("employee_not_found")
	}

	companyID := u.ScopeCompanyID()
	if companyID == 0 {
		return nil, 0, httperr.ErrBusiness("employee_not_found")
	}
	return u, companyID, nil
}
