package memory

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateRating(ctx context.Context, r *models.Rating) error {
	defer s.lock(ctx)()

	for _, existing := range s.t.ratings {
		if existing.AppointmentID == r.AppointmentID {
			return errors.Wrapf(persistence.ErrDuplicate, "rating for appointment %d", r.AppointmentID)
		}
	}

	r.ID = s.t.next("ratings")
	r.CreatedAt = s.stamp()
	s.t.ratings[r.ID] = *r
	return nil
}

func (s *Store) ListRatingsByCompany(ctx context.Context, companyID uint) ([]models.Rating, error) {
	defer s.lock(ctx)()

	out := []models.Rating{}
	for _, r := range s.t.ratings {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
