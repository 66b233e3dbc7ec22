package auth

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type MeOutput struct {
	User    *models.User           `json:"user"`
	Company *models.CompanyProfile `json:"empresa,omitempty"`
}

type Me struct {
	users     user.Repository
	companies company.Repository
}

func NewMe(users user.Repository, companies company.Repository) *Me {
	return &Me{users: users, companies: companies}
}

func (uc *Me) Execute(ctx context.Context, actor user.Actor) (*MeOutput, error) {
	u, err := uc.users.GetUserByID(ctx, actor.UserID)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	if !u.Active {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	out := &MeOutput{User: u}

	if companyID := u.ScopeCompanyID(); companyID != 0 {
		profile, err := uc.companies.GetCompanyProfile(ctx, companyID)
		switch {
		case err == nil:
			out.Company = profile
		case !persistence.IsNotFound(err):
			return nil, err
		}
	}

	return out, nil
}
