package rating

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Repository interface {
	// CreateRating fails with persistence.ErrDuplicate when the appointment
	// was already rated.
	CreateRating(ctx context.Context, r *models.Rating) error
	ListRatingsByCompany(ctx context.Context, companyID uint) ([]models.Rating, error)
}
