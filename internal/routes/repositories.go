package routes

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/agenda"
	"github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/catalog"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/rating"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
	"github.com/BruksfildServices01/agendapro/internal/infra/repository"
)

// Repositories groups one implementation of every port, all sharing the
// same transactor.
type Repositories struct {
	Tx            persistence.Transactor
	Users         user.Repository
	Companies     company.Repository
	Services      catalog.Repository
	Agendas       agenda.Repository
	Appointments  appointment.Repository
	Ratings       rating.Repository
	Notifications notification.Repository
	Audit         audit.Store
}

func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Tx:            repository.NewGormTransactor(db),
		Users:         repository.NewUserGormRepository(db),
		Companies:     repository.NewCompanyGormRepository(db),
		Services:      repository.NewCatalogGormRepository(db),
		Agendas:       repository.NewAgendaGormRepository(db),
		Appointments:  repository.NewAppointmentGormRepository(db),
		Ratings:       repository.NewRatingGormRepository(db),
		Notifications: repository.NewNotificationGormRepository(db),
		Audit:         repository.NewAuditGormRepository(db),
	}
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Tx:            s,
		Users:         s,
		Companies:     s,
		Services:      s,
		Agendas:       s,
		Appointments:  s,
		Ratings:       s,
		Notifications: s,
		Audit:         s,
	}
}
