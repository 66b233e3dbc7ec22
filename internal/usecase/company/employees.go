package company

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Title    string
}

type CreateEmployee struct {
	users     user.Repository
	companies company.Repository
	audit     *audit.Dispatcher
}

func NewCreateEmployee(
	users user.Repository,
	companies company.Repository,
	audit *audit.Dispatcher,
) *CreateEmployee {
	return &CreateEmployee{users: users, companies: companies, audit: audit}
}

func (uc *CreateEmployee) Execute(
	ctx context.Context,
	actor user.Actor,
	in CreateEmployeeInput,
) (*models.User, error) {

	if !actor.IsCompany() {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if _, err := company.LoadActive(ctx, uc.companies, actor.UserID); err != nil {
		return nil, err
	}

	if !user.PasswordFits(in.Password) {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	companyID := actor.UserID
	emp := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        user.NormalizeEmail(in.Email),
		PasswordHash: string(hashed),
		Phone:        user.Digits(in.Phone),
		Role:         models.RoleEmployee,
		CompanyID:    &companyID,
		Title:        strings.TrimSpace(in.Title),
		Active:       true,
	}

	if err := uc.users.CreateUser(ctx, emp); err != nil {
		if persistence.IsDuplicate(err) {
			return nil, httperr.ErrBusiness("email_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: companyID,
		UserID:    &actor.UserID,
		Action:    "employee_created",
		Entity:    "user",
		EntityID:  &emp.ID,
	})

	return emp, nil
}

// ======================================================
// LIST
// ======================================================

type ListEmployees struct {
	users     user.Repository
	companies company.Repository
}

func NewListEmployees(users user.Repository, companies company.Repository) *ListEmployees {
	return &ListEmployees{users: users, companies: companies}
}

func (uc *ListEmployees) Execute(ctx context.Context, companyID uint) ([]models.User, error) {
	if _, err := company.LoadActive(ctx, uc.companies, companyID); err != nil {
		return nil, err
	}
	return uc.users.ListEmployees(ctx, companyID)
}

// ======================================================
// DEACTIVATE
// ======================================================

const deactivationReason = "Profissional desativado pela empresa."

type DeactivateEmployee struct {
	tx            persistence.Transactor
	users         user.Repository
	appointments  appointment.Repository
	notifications notification.Repository
	audit         *audit.Dispatcher
	now           func() time.Time
}

func NewDeactivateEmployee(
	tx persistence.Transactor,
	users user.Repository,
	appointments appointment.Repository,
	notifications notification.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *DeactivateEmployee {
	if now == nil {
		now = time.Now
	}
	return &DeactivateEmployee{
		tx:            tx,
		users:         users,
		appointments:  appointments,
		notifications: notifications,
		audit:         audit,
		now:           now,
	}
}

// Execute switches the employee off and cancels, as the system, every
// appointment still holding one of their slots.
func (uc *DeactivateEmployee) Execute(ctx context.Context, actor user.Actor, employeeID uint) (*models.User, error) {
	if !actor.IsCompany() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	var (
		emp      *models.User
		canceled int
	)

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		emp, err = uc.users.GetUserByID(ctx, employeeID)
		if err != nil {
			if persistence.IsNotFound(err) {
				return httperr.ErrBusiness("employee_not_found")
			}
			return err
		}
		if emp.Role != models.RoleEmployee || emp.ScopeCompanyID() != actor.UserID {
			return httperr.ErrBusiness("employee_not_found")
		}
		if !emp.Active {
			return nil
		}

		emp.Active = false
		if err := uc.users.UpdateUser(ctx, emp); err != nil {
			return err
		}

		now := uc.now()
		pending, err := uc.appointments.ListAppointments(ctx, appointment.ListFilter{
			EmployeeID: emp.ID,
			Statuses:   appointment.ActiveStatuses(),
			From:       now,
		})
		if err != nil {
			return err
		}

		var notes []models.Notification
		for i := range pending {
			ap := &pending[i]
			if err := appointment.Cancel(ap, appointment.CanceledBySystem, deactivationReason, now); err != nil {
				return err
			}
			if err := uc.appointments.UpdateAppointment(ctx, ap); err != nil {
				return err
			}
			notes = append(notes, notification.Canceled(ap, ap.ClientID))
			canceled++
		}

		return uc.notifications.CreateNotifications(ctx, notes)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.UserID,
		UserID:    &actor.UserID,
		Action:    "employee_deactivated",
		Entity:    "user",
		EntityID:  &emp.ID,
		Metadata:  map[string]any{"canceled_appointments": canceled},
	})

	return emp, nil
}
