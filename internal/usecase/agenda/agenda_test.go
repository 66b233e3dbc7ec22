package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
	"github.com/BruksfildServices01/agendapro/internal/models"
	appointmentuc "github.com/BruksfildServices01/agendapro/internal/usecase/appointment"
	companyuc "github.com/BruksfildServices01/agendapro/internal/usecase/company"
)

func seed(t *testing.T) (*memory.Store, *models.User, *models.User) {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	company := &models.User{Name: "Studio", Email: "studio@x.com", Role: models.RoleCompany, Active: true}
	require.NoError(t, s.CreateUser(ctx, company))
	require.NoError(t, s.CreateCompanyProfile(ctx, &models.CompanyProfile{
		UserID:   company.ID,
		Timezone: "America/Sao_Paulo",
		Active:   true,
	}))

	employee := &models.User{Name: "Ana", Email: "ana@x.com", Role: models.RoleEmployee, CompanyID: &company.ID, Active: true}
	require.NoError(t, s.CreateUser(ctx, employee))

	return s, company, employee
}

func window() CreateAgendaInput {
	return CreateAgendaInput{
		Weekday:    int(time.Monday),
		StartTime:  "08:00",
		EndTime:    "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}
}

func TestCreateAgenda(t *testing.T) {
	s, company, employee := seed(t)
	ctx := context.Background()
	uc := NewCreateAgenda(s, s, nil)

	empActor := user.Actor{UserID: employee.ID, Role: models.RoleEmployee, CompanyID: company.ID}
	ag, err := uc.Execute(ctx, empActor, window())
	require.NoError(t, err)
	assert.Equal(t, employee.ID, ag.EmployeeID)
	assert.Equal(t, company.ID, ag.CompanyID)
	assert.Equal(t, 30, ag.SlotMin)
	assert.True(t, ag.Active)

	compActor := user.Actor{UserID: company.ID, Role: models.RoleCompany, CompanyID: company.ID}
	_, err = uc.Execute(ctx, compActor, window())
	assert.True(t, httperr.IsBusiness(err, "missing_target"))

	in := window()
	in.EmployeeID = employee.ID
	in.Weekday = int(time.Tuesday)
	_, err = uc.Execute(ctx, compActor, in)
	require.NoError(t, err)

	stranger := user.Actor{UserID: 50, Role: models.RoleCompany, CompanyID: 50}
	in.EmployeeID = employee.ID
	_, err = uc.Execute(ctx, stranger, in)
	assert.True(t, httperr.IsBusiness(err, "employee_not_found"))

	bad := window()
	bad.BreakStart, bad.BreakEnd = "19:00", "20:00"
	_, err = uc.Execute(ctx, empActor, bad)
	assert.True(t, httperr.IsBusiness(err, "invalid_agenda_window"))

	bad = window()
	bad.StartTime = "18:00"
	bad.EndTime = "08:00"
	_, err = uc.Execute(ctx, empActor, bad)
	assert.True(t, httperr.IsBusiness(err, "invalid_agenda_window"))

	_, err = uc.Execute(ctx, user.Actor{UserID: 9, Role: models.RoleClient}, window())
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	own, err := NewListAgendas(s).Execute(ctx, empActor)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := NewListAgendas(s).Execute(ctx, compActor)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetPublicView(t *testing.T) {
	s, company, employee := seed(t)
	ctx := context.Background()

	empActor := user.Actor{UserID: employee.ID, Role: models.RoleEmployee, CompanyID: company.ID}
	_, err := NewCreateAgenda(s, s, nil).Execute(ctx, empActor, window())
	require.NoError(t, err)

	require.NoError(t, s.CreateService(ctx, &models.Service{CompanyID: company.ID, Name: "Corte", DurationMin: 30, Price: 50, Active: true}))
	require.NoError(t, s.CreateService(ctx, &models.Service{CompanyID: company.ID, Name: "Antigo", DurationMin: 30, Price: 10, Active: false}))

	deps := appointmentuc.Deps{
		Tx:            s,
		Appointments:  s,
		Users:         s,
		Companies:     s,
		Services:      s,
		Agendas:       s,
		Notifications: s,
		Now:           func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) },
	}
	uc := NewGetPublicView(s, s, s, companyuc.NewGetCompany(s), appointmentuc.NewGetAvailability(deps))

	view, err := uc.Execute(ctx, employee.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Employee.Name)
	assert.Equal(t, company.ID, view.Company.ID)
	assert.Len(t, view.Agendas, 1)
	require.Len(t, view.Services, 1)
	assert.Equal(t, "Corte", view.Services[0].Name)
	assert.Empty(t, view.FreeSlots)

	withDay, err := uc.Execute(ctx, employee.ID, "2024-01-15")
	require.NoError(t, err)
	assert.Len(t, withDay.FreeSlots, 18)

	_, err = uc.Execute(ctx, 404, "")
	assert.True(t, httperr.IsBusiness(err, "employee_not_found"))
}
