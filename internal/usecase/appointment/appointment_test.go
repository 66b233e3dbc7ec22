package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type fixture struct {
	store    *memory.Store
	deps     Deps
	company  *models.User
	employee *models.User
	service  *models.Service
}

var (
	fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	monday   = "2024-01-15"
)

func newFixture(t *testing.T) *fixture {
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

	employee := &models.User{
		Name:      "Ana",
		Email:     "ana@x.com",
		Role:      models.RoleEmployee,
		CompanyID: &company.ID,
		Active:    true,
	}
	require.NoError(t, s.CreateUser(ctx, employee))

	require.NoError(t, s.CreateAgenda(ctx, &models.Agenda{
		EmployeeID: employee.ID,
		CompanyID:  company.ID,
		Weekday:    int(time.Monday),
		StartTime:  "08:00",
		EndTime:    "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		SlotMin:    30,
		Active:     true,
	}))

	svc := &models.Service{CompanyID: company.ID, Name: "Corte", DurationMin: 30, Price: 50, Active: true}
	require.NoError(t, s.CreateService(ctx, svc))

	return &fixture{
		store: s,
		deps: Deps{
			Tx:            s,
			Appointments:  s,
			Users:         s,
			Companies:     s,
			Services:      s,
			Agendas:       s,
			Notifications: s,
			Now:           func() time.Time { return fixedNow },
		},
		company:  company,
		employee: employee,
		service:  svc,
	}
}

func (f *fixture) companyActor() user.Actor {
	return user.Actor{UserID: f.company.ID, Role: models.RoleCompany, CompanyID: f.company.ID}
}

func (f *fixture) book(t *testing.T, email, hm string) (*models.Appointment, error) {
	t.Helper()
	return NewCreateAppointment(f.deps).Execute(context.Background(), CreateAppointmentInput{
		ClientName:  "Maria",
		ClientEmail: email,
		EmployeeID:  f.employee.ID,
		Date:        monday,
		Time:        hm,
		Services:    []ServiceItem{{ServiceID: f.service.ID}},
	})
}

func clientActor(ap *models.Appointment) user.Actor {
	return user.Actor{UserID: ap.ClientID, Role: models.RoleClient}
}

func TestCreateAppointment_PublicBooking(t *testing.T) {
	f := newFixture(t)

	ap, err := f.book(t, "Maria@Example.com", "09:00")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, monday, ap.Date)
	assert.Equal(t, "09:00", ap.Time)
	assert.Equal(t, 30*time.Minute, ap.EndTime.Sub(ap.StartTime))
	assert.Equal(t, 50.0, ap.TotalValue)
	assert.Equal(t, "maria@example.com", ap.Client.Email)
	require.Len(t, ap.Services, 1)
	assert.Equal(t, "Corte", ap.Services[0].ServiceName)
	require.NotNil(t, ap.AgendaID)

	for _, recipient := range []uint{f.employee.ID, f.company.ID} {
		ns, err := f.store.ListNotifications(context.Background(), recipient, false)
		require.NoError(t, err)
		require.Len(t, ns, 1)
		assert.Equal(t, models.NotificationAppointment, ns[0].Kind)
	}

	// the same client books again without creating a second account
	again, err := f.book(t, "maria@example.com", "10:00")
	require.NoError(t, err)
	assert.Equal(t, ap.ClientID, again.ClientID)
}

func TestCreateAppointment_TimeConflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	_, err = f.book(t, "joao@example.com", "09:00")
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	_, err = f.book(t, "joao@example.com", "09:15")
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// the failed attempts left no client behind
	_, err = f.store.GetUserByEmail(context.Background(), "joao@example.com")
	assert.Error(t, err)

	_, err = f.book(t, "joao@example.com", "09:30")
	assert.NoError(t, err)
}

func TestCreateAppointment_CanceledFreesTheSlot(t *testing.T) {
	f := newFixture(t)

	ap, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	_, err = NewCancelAppointment(f.deps).Execute(context.Background(), clientActor(ap), ap.ID, "")
	require.NoError(t, err)

	_, err = f.book(t, "joao@example.com", "09:00")
	assert.NoError(t, err)
}

func TestCreateAppointment_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{
			name: "past date",
			in:   CreateAppointmentInput{ClientEmail: "m@x.com", EmployeeID: f.employee.ID, Date: "2024-01-08", Time: "09:00"},
			code: "too_soon",
		},
		{
			name: "bad time",
			in:   CreateAppointmentInput{ClientEmail: "m@x.com", EmployeeID: f.employee.ID, Date: monday, Time: "9h"},
			code: "invalid_date_or_time",
		},
		{
			name: "during break",
			in:   CreateAppointmentInput{ClientEmail: "m@x.com", EmployeeID: f.employee.ID, Date: monday, Time: "12:00"},
			code: "outside_working_hours",
		},
		{
			name: "before opening",
			in:   CreateAppointmentInput{ClientEmail: "m@x.com", EmployeeID: f.employee.ID, Date: monday, Time: "07:30"},
			code: "outside_working_hours",
		},
		{
			name: "no target",
			in:   CreateAppointmentInput{ClientEmail: "m@x.com", Date: monday, Time: "09:00"},
			code: "missing_target",
		},
		{
			name: "unknown agenda",
			in:   CreateAppointmentInput{ClientEmail: "m@x.com", AgendaID: 99, Date: monday, Time: "09:00"},
			code: "agenda_not_found",
		},
		{
			name: "unknown service",
			in: CreateAppointmentInput{
				ClientEmail: "m@x.com", EmployeeID: f.employee.ID, Date: monday, Time: "09:00",
				Services: []ServiceItem{{ServiceID: 42}},
			},
			code: "service_not_found",
		},
		{
			name: "quantity",
			in: CreateAppointmentInput{
				ClientEmail: "m@x.com", EmployeeID: f.employee.ID, Date: monday, Time: "09:00",
				Services: []ServiceItem{{ServiceID: f.service.ID, Quantity: 21}},
			},
			code: "invalid_quantity",
		},
		{
			name: "no client",
			in:   CreateAppointmentInput{EmployeeID: f.employee.ID, Date: monday, Time: "09:00"},
			code: "missing_client",
		},
		{
			name: "staff email",
			in:   CreateAppointmentInput{ClientEmail: "ana@x.com", EmployeeID: f.employee.ID, Date: monday, Time: "09:00"},
			code: "email_in_use",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCreateAppointment(f.deps).Execute(ctx, tc.in)
			code, ok := httperr.BusinessCode(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestCreateAppointment_OtherCompanyForbidden(t *testing.T) {
	f := newFixture(t)

	other := user.Actor{UserID: 99, Role: models.RoleCompany, CompanyID: 99}
	_, err := NewCreateAppointment(f.deps).Execute(context.Background(), CreateAppointmentInput{
		Actor:       &other,
		ClientEmail: "m@x.com",
		EmployeeID:  f.employee.ID,
		Date:        monday,
		Time:        "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	_, err = NewConfirmAppointment(f.deps).Execute(ctx, clientActor(ap), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = NewCompleteAppointment(f.deps).Execute(ctx, f.companyActor(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	confirmed, err := NewConfirmAppointment(f.deps).Execute(ctx, f.companyActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	completed, err := NewCompleteAppointment(f.deps).Execute(ctx, f.companyActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), completed.Status)

	_, err = NewCancelAppointment(f.deps).Execute(ctx, clientActor(ap), ap.ID, "")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	ns, err := f.store.ListNotifications(ctx, ap.ClientID, false)
	require.NoError(t, err)
	assert.Len(t, ns, 2)
}

func TestCancel_AttributionAndNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	canceled, err := NewCancelAppointment(f.deps).Execute(ctx, clientActor(ap), ap.ID, "  imprevisto ")
	require.NoError(t, err)
	assert.Equal(t, string(domain.CanceledByClient), canceled.CanceledBy)
	assert.Equal(t, "imprevisto", canceled.CancelJustification)

	ns, err := f.store.ListNotifications(ctx, f.employee.ID, false)
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, models.NotificationCancellation, ns[0].Kind)

	other, err := f.book(t, "joao@example.com", "10:00")
	require.NoError(t, err)
	byStaff, err := NewCancelAppointment(f.deps).Execute(ctx, f.companyActor(), other.ID, "")
	require.NoError(t, err)
	assert.Equal(t, string(domain.CanceledByEmployee), byStaff.CanceledBy)
}

func TestGetAppointment_Visibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	got, err := NewGetAppointment(f.deps).Execute(ctx, clientActor(ap), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)

	stranger := user.Actor{UserID: 999, Role: models.RoleClient}
	_, err = NewGetAppointment(f.deps).Execute(ctx, stranger, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	employee := user.Actor{UserID: f.employee.ID, Role: models.RoleEmployee, CompanyID: f.company.ID}
	_, err = NewGetAppointment(f.deps).Execute(ctx, employee, ap.ID)
	assert.NoError(t, err)
}

func TestSendReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	n, err := NewSendReminder(f.deps).Execute(ctx, f.companyActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationReminder, n.Kind)
	assert.Equal(t, ap.ClientID, n.UserID)
	assert.NotZero(t, n.ID)

	_, err = NewCancelAppointment(f.deps).Execute(ctx, f.companyActor(), ap.ID, "")
	require.NoError(t, err)

	_, err = NewSendReminder(f.deps).Execute(ctx, f.companyActor(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestListAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.book(t, "maria@example.com", "10:00")
	require.NoError(t, err)
	_, err = f.book(t, "joao@example.com", "09:00")
	require.NoError(t, err)
	_, err = NewConfirmAppointment(f.deps).Execute(ctx, f.companyActor(), first.ID)
	require.NoError(t, err)

	uc := NewListAppointments(f.deps)

	all, err := uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "09:00", all[0].Time)

	confirmed, err := uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{Status: "confirmado"})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, first.ID, confirmed[0].ID)

	// legacy alias
	pending, err := uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{Status: "em_aprovacao"})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	byDay, err := uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{Date: "2024-01-16"})
	require.NoError(t, err)
	assert.Empty(t, byDay)

	byMonth, err := uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{Month: "2024-01"})
	require.NoError(t, err)
	assert.Len(t, byMonth, 2)

	mine, err := uc.Execute(ctx, clientActor(first), ListAppointmentsInput{})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{Status: "whatever"})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(ctx, f.companyActor(), ListAppointmentsInput{Month: "jan"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.book(t, "maria@example.com", "09:00")
	require.NoError(t, err)

	slots, err := NewGetAvailability(f.deps).Execute(ctx, AvailabilityInput{
		EmployeeID: f.employee.ID,
		Date:       monday,
		ServiceIDs: []uint{f.service.ID},
	})
	require.NoError(t, err)

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start] = true
	}
	// 08:00-12:00 and 13:00-18:00 in 30 minute steps, minus the booking
	assert.Len(t, slots, 17)
	assert.True(t, starts["08:00"])
	assert.False(t, starts["09:00"])
	assert.False(t, starts["12:00"])
	assert.True(t, starts["13:00"])

	// a Tuesday has no agenda
	none, err := NewGetAvailability(f.deps).Execute(ctx, AvailabilityInput{EmployeeID: f.employee.ID, Date: "2024-01-16"})
	require.NoError(t, err)
	assert.Empty(t, none)

	past, err := NewGetAvailability(f.deps).Execute(ctx, AvailabilityInput{EmployeeID: f.employee.ID, Date: "2024-01-08"})
	require.NoError(t, err)
	assert.Empty(t, past)

	_, err = NewGetAvailability(f.deps).Execute(ctx, AvailabilityInput{EmployeeID: f.employee.ID, Date: "15/01/2024"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
