package user

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Repository interface {
	// CreateUser fails with persistence.ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error

	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUsersByIdentifier returns every user whose email equals email or
	// whose phone or tax id equals digits. Empty arguments match nothing.
	FindUsersByIdentifier(ctx context.Context, email, digits string) ([]models.User, error)

	ListEmployees(ctx context.Context, companyID uint) ([]models.User, error)
}
