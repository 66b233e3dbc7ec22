package memory

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	defer s.lock(ctx)()

	svc.ID = s.t.next("services")
	now := s.stamp()
	svc.CreatedAt, svc.UpdatedAt = now, now
	s.t.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	defer s.lock(ctx)()

	if _, ok := s.t.services[svc.ID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "service %d", svc.ID)
	}

	svc.UpdatedAt = s.stamp()
	s.t.services[svc.ID] = *svc
	return nil
}

func (s *Store) GetService(ctx context.Context, companyID, serviceID uint) (*models.Service, error) {
	defer s.lock(ctx)()

	svc, ok := s.t.services[serviceID]
	if !ok || svc.CompanyID != companyID {
		return nil, errors.Wrapf(persistence.ErrNotFound, "service %d", serviceID)
	}
	return &svc, nil
}

func (s *Store) ListServices(ctx context.Context, companyID uint, onlyActive bool) ([]models.Service, error) {
	defer s.lock(ctx)()

	out := []models.Service{}
	for _, svc := range s.t.services {
		if svc.CompanyID != companyID || (onlyActive && !svc.Active) {
			continue
		}
		out = append(out, svc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
