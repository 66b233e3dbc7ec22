package memory

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateAgenda(ctx context.Context, ag *models.Agenda) error {
	defer s.lock(ctx)()

	ag.ID = s.t.next("agendas")
	now := s.stamp()
	ag.CreatedAt, ag.UpdatedAt = now, now
	s.t.agendas[ag.ID] = *ag
	return nil
}

func (s *Store) GetAgendaByID(ctx context.Context, id uint) (*models.Agenda, error) {
	defer s.lock(ctx)()

	ag, ok := s.t.agendas[id]
	if !ok {
		return nil, errors.Wrapf(persistence.ErrNotFound, "agenda %d", id)
	}
	return &ag, nil
}

func (s *Store) ListAgendasByEmployee(ctx context.Context, employeeID uint) ([]models.Agenda, error) {
	defer s.lock(ctx)()

	return s.filterAgendas(func(ag models.Agenda) bool { return ag.EmployeeID == employeeID }), nil
}

func (s *Store) ListAgendasByCompany(ctx context.Context, companyID uint) ([]models.Agenda, error) {
	defer s.lock(ctx)()

	return s.filterAgendas(func(ag models.Agenda) bool { return ag.CompanyID == companyID }), nil
}

func (s *Store) filterAgendas(keep func(models.Agenda) bool) []models.Agenda {
	out := []models.Agenda{}
	for _, ag := range s.t.agendas {
		if keep(ag) {
			out = append(out, ag)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weekday != out[j].Weekday {
			return out[i].Weekday < out[j].Weekday
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}
