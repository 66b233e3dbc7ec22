package memory

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateCompanyProfile(ctx context.Context, p *models.CompanyProfile) error {
	defer s.lock(ctx)()

	if _, ok := s.t.users[p.UserID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "company user %d", p.UserID)
	}
	if _, ok := s.t.profiles[p.UserID]; ok {
		return errors.Wrapf(persistence.ErrDuplicate, "company profile %d", p.UserID)
	}

	now := s.stamp()
	p.CreatedAt, p.UpdatedAt = now, now
	stored := *p
	stored.User = models.User{}
	s.t.profiles[p.UserID] = stored
	return nil
}

func (s *Store) UpdateCompanyProfile(ctx context.Context, p *models.CompanyProfile) error {
	defer s.lock(ctx)()

	if _, ok := s.t.profiles[p.UserID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "company profile %d", p.UserID)
	}

	p.UpdatedAt = s.stamp()
	stored := *p
	stored.User = models.User{}
	s.t.profiles[p.UserID] = stored
	return nil
}

func (s *Store) GetCompanyProfile(ctx context.Context, companyID uint) (*models.CompanyProfile, error) {
	defer s.lock(ctx)()

	p, ok := s.t.profiles[companyID]
	if !ok {
		return nil, errors.Wrapf(persistence.ErrNotFound, "company profile %d", companyID)
	}
	p.User = s.t.users[companyID]
	return &p, nil
}

func (s *Store) ListActiveCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	defer s.lock(ctx)()

	out := []models.CompanyProfile{}
	for id, p := range s.t.profiles {
		u, ok := s.t.users[id]
		if !ok || !p.Active || !u.Active || u.Role != models.RoleCompany {
			continue
		}
		p.User = u
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}
