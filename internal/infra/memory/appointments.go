package memory

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	defer s.lock(ctx)()

	if _, ok := s.t.users[ap.ClientID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "client %d", ap.ClientID)
	}
	if _, ok := s.t.users[ap.EmployeeID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "employee %d", ap.EmployeeID)
	}

	ap.ID = s.t.next("appointments")
	now := s.stamp()
	ap.CreatedAt, ap.UpdatedAt = now, now
	s.t.appointments[ap.ID] = s.bare(*ap)
	return nil
}

func (s *Store) CreateAppointmentServices(ctx context.Context, links []models.AppointmentService) error {
	defer s.lock(ctx)()

	for i := range links {
		if _, ok := s.t.appointments[links[i].AppointmentID]; !ok {
			return errors.Wrapf(persistence.ErrNotFound, "appointment %d", links[i].AppointmentID)
		}
		if _, ok := s.t.services[links[i].ServiceID]; !ok {
			return errors.Wrapf(persistence.ErrNotFound, "service %d", links[i].ServiceID)
		}
		links[i].ID = s.t.next("appointment_services")
		link := links[i]
		link.Service = models.Service{}
		s.t.apServices[link.ID] = link
	}
	return nil
}

func (s *Store) HasTimeConflict(ctx context.Context, employeeID uint, start, end time.Time) (bool, error) {
	defer s.lock(ctx)()

	for _, ap := range s.t.appointments {
		if ap.EmployeeID != employeeID || !holdsSlot(ap.Status) {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	defer s.lock(ctx)()

	ap, ok := s.t.appointments[id]
	if !ok {
		return nil, errors.Wrapf(persistence.ErrNotFound, "appointment %d", id)
	}
	full := s.hydrate(ap)
	return &full, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	defer s.lock(ctx)()

	if _, ok := s.t.appointments[ap.ID]; !ok {
		return errors.Wrapf(persistence.ErrNotFound, "appointment %d", ap.ID)
	}

	ap.UpdatedAt = s.stamp()
	s.t.appointments[ap.ID] = s.bare(*ap)
	return nil
}

func (s *Store) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	defer s.lock(ctx)()

	out := []models.Appointment{}
	for _, ap := range s.t.appointments {
		if !matches(ap, f) {
			continue
		}
		out = append(out, s.hydrate(ap))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func holdsSlot(status string) bool {
	st, ok := domain.ParseStatus(status)
	return ok && !st.Terminal()
}

func matches(ap models.Appointment, f domain.ListFilter) bool {
	if f.ClientID != 0 && ap.ClientID != f.ClientID {
		return false
	}
	if f.EmployeeID != 0 && ap.EmployeeID != f.EmployeeID {
		return false
	}
	if f.CompanyID != 0 && ap.CompanyID != f.CompanyID {
		return false
	}
	if !f.From.IsZero() && ap.StartTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !ap.StartTime.Before(f.To) {
		return false
	}
	if len(f.Statuses) > 0 {
		st, _ := domain.ParseStatus(ap.Status)
		found := false
		for _, want := range f.Statuses {
			if st == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// bare drops associations before storing a row.
func (s *Store) bare(ap models.Appointment) models.Appointment {
	ap.Client = models.User{}
	ap.Employee = models.User{}
	ap.Services = nil
	return ap
}

// hydrate fills the associations a preload would.
func (s *Store) hydrate(ap models.Appointment) models.Appointment {
	ap.Client = s.t.users[ap.ClientID]
	ap.Employee = s.t.users[ap.EmployeeID]

	links := []models.AppointmentService{}
	for _, link := range s.t.apServices {
		if link.AppointmentID != ap.ID {
			continue
		}
		link.ServiceName = s.t.services[link.ServiceID].Name
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	ap.Services = links
	return ap
}
