package memory

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	defer s.lock(ctx)()

	for _, existing := range s.t.users {
		if existing.Email == u.Email {
			return errors.Wrapf(persistence.ErrDuplicate, "email %s", u.Email)
		}
	}

	u.ID = s.t.next("users")
	now := s.stamp()
	u.CreatedAt, u.UpdatedAt = now, now
	s.t.users[u.ID] = *u
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	defer s.lock(ctx)()

	if _, ok := s.t.users[u.ID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "user %d", u.ID)
	}
	for id, existing := range s.t.users {
		if id != u.ID && existing.Email == u.Email {
			return errors.Wrapf(persistence.ErrDuplicate, "email %s", u.Email)
		}
	}

	u.UpdatedAt = s.stamp()
	s.t.users[u.ID] = *u
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	defer s.lock(ctx)()

	u, ok := s.t.users[id]
	if !ok {
		return nil, errors.Wrapf(persistence.ErrNotFound, "user %d", id)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer s.lock(ctx)()

	for _, u := range s.t.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errors.Wrapf(persistence.ErrNotFound, "user %s", email)
}

func (s *Store) FindUsersByIdentifier(ctx context.Context, email, digits string) ([]models.User, error) {
	defer s.lock(ctx)()

	out := []models.User{}
	for _, u := range s.t.users {
		byEmail := email != "" && u.Email == email
		byDigits := digits != "" && (u.Phone == digits || u.TaxID == digits)
		if byEmail || byDigits {
			out = append(out, u)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListEmployees(ctx context.Context, companyID uint) ([]models.User, error) {
	defer s.lock(ctx)()

	out := []models.User{}
	for _, u := range s.t.users {
		if u.Role == models.RoleEmployee && u.Active && u.CompanyID != nil && *u.CompanyID == companyID {
			out = append(out, u)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
