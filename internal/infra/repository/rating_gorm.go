package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/rating"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type RatingGormRepository struct {
	base
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{base{db: db}}
}

func (r *RatingGormRepository) CreateRating(ctx context.Context, rt *models.Rating) error {
	return translate(r.conn(ctx).Create(rt).Error, "rating for appointment %d", rt.AppointmentID)
}

func (r *RatingGormRepository) ListRatingsByCompany(ctx context.Context, companyID uint) ([]models.Rating, error) {
	ratings := []models.Rating{}
	if err := r.conn(ctx).
		Where("empresa_id = ?", companyID).
		Order("id DESC").
		Find(&ratings).Error; err != nil {
		return nil, translate(err, "list ratings of %d", companyID)
	}
	return ratings, nil
}

var _ rating.Repository = (*RatingGormRepository)(nil)
