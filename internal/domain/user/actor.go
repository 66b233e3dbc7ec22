package user

import "github.com/BruksfildServices01/agendapro/internal/models"

// Actor is the authenticated caller as carried by the session token.
type Actor struct {
	UserID    uint
	Email     string
	Role      models.UserRole
	CompanyID uint
}

func (a Actor) IsClient() bool {
	return a.Role == models.RoleClient
}

func (a Actor) IsCompany() bool {
	return a.Role == models.RoleCompany
}

func (a Actor) IsStaff() bool {
	return a.Role.Staff()
}
