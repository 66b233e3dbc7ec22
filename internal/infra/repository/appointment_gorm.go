package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type AppointmentGormRepository struct {
	base
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{base{db: db}}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(
		r.conn(ctx).Omit(clause.Associations).Create(ap).Error,
		"create appointment",
	)
}

func (r *AppointmentGormRepository) CreateAppointmentServices(
	ctx context.Context,
	links []models.AppointmentService,
) error {
	if len(links) == 0 {
		return nil
	}
	return translate(
		r.conn(ctx).Omit("Service").Create(&links).Error,
		"create appointment services",
	)
}

func (r *AppointmentGormRepository) HasTimeConflict(
	ctx context.Context,
	employeeID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	// Bookings of one employee serialize on the employee row. Locking only
	// the overlapping rows would let two inserts into an empty slot pass.
	var locked []uint
	if err := r.conn(ctx).
		Model(&models.User{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", employeeID).
		Pluck("id", &locked).Error; err != nil {
		return false, translate(err, "lock employee %d", employeeID)
	}

	// FOR UPDATE cannot be combined with count(*), so the ids are locked
	// and counted here.
	var ids []uint
	if err := r.conn(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"funcionario_id = ? AND status IN ? AND inicio < ? AND fim > ?",
			employeeID,
			slotHolding(),
			end,
			start,
		).
		Pluck("id", &ids).Error; err != nil {
		return false, translate(err, "time conflict of employee %d", employeeID)
	}

	return len(ids) > 0, nil
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.preloaded(ctx).First(&ap, id).Error; err != nil {
		return nil, translate(err, "appointment %d", id)
	}
	fillServiceNames(&ap)
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(
		r.conn(ctx).Omit(clause.Associations).Save(ap).Error,
		"update appointment %d", ap.ID,
	)
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.preloaded(ctx)
	if f.ClientID != 0 {
		q = q.Where("cliente_id = ?", f.ClientID)
	}
	if f.EmployeeID != 0 {
		q = q.Where("funcionario_id = ?", f.EmployeeID)
	}
	if f.CompanyID != 0 {
		q = q.Where("empresa_id = ?", f.CompanyID)
	}
	if !f.From.IsZero() {
		q = q.Where("inicio >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("inicio < ?", f.To)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", withAliases(f.Statuses))
	}

	apps := []models.Appointment{}
	if err := q.Order("inicio ASC, id ASC").Find(&apps).Error; err != nil {
		return nil, translate(err, "list appointments")
	}
	for i := range apps {
		fillServiceNames(&apps[i])
	}
	return apps, nil
}

func (r *AppointmentGormRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Services.Service")
}

func fillServiceNames(ap *models.Appointment) {
	for i := range ap.Services {
		ap.Services[i].ServiceName = ap.Services[i].Service.Name
	}
}

var legacyAliases = map[domain.Status][]string{
	domain.StatusPending: {"em_aprovacao", "agendado", "pending", "scheduled"},
}

// withAliases expands statuses with the legacy values older rows may hold.
func withAliases(statuses []domain.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, string(st))
		out = append(out, legacyAliases[st]...)
	}
	return out
}

func slotHolding() []string {
	return withAliases(domain.ActiveStatuses())
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
