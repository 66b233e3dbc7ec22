package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

// ListFilter narrows appointment listings. Zero values mean "any".
type ListFilter struct {
	ClientID   uint
	EmployeeID uint
	CompanyID  uint
	Statuses   []Status
	From       time.Time
	To         time.Time
}

type Repository interface {
	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CreateAppointmentServices(
		ctx context.Context,
		links []models.AppointmentService,
	) error

	// HasTimeConflict looks for slot-holding appointments of the employee
	// intersecting [start, end). Inside a transaction it also locks the
	// employee, so concurrent bookings of the same employee run one at a time.
	HasTimeConflict(
		ctx context.Context,
		employeeID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
