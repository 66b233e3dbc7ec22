package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func seedUser(t *testing.T, s *Store, email string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{Name: email, Email: email, Role: role, Active: true}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := NewStore()
	seedUser(t, s, "a@x.com", models.RoleClient)

	err := s.CreateUser(context.Background(), &models.User{Email: "a@x.com", Role: models.RoleClient})
	assert.True(t, persistence.IsDuplicate(err))
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.CreateUser(ctx, &models.User{Email: "tx@x.com", Role: models.RoleClient}); err != nil {
			return err
		}
		// nested calls reuse the open transaction
		return s.WithinTransaction(ctx, func(ctx context.Context) error {
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	_, err = s.GetUserByEmail(ctx, "tx@x.com")
	assert.True(t, persistence.IsNotFound(err))
}

func TestWithinTransaction_Commits(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.CreateUser(ctx, &models.User{Email: "ok@x.com", Role: models.RoleClient})
	})
	require.NoError(t, err)

	u, err := s.GetUserByEmail(ctx, "ok@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
}

func TestAppointments_ConflictIgnoresTerminal(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	client := seedUser(t, s, "c@x.com", models.RoleClient)
	emp := seedUser(t, s, "e@x.com", models.RoleEmployee)

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{
		ClientID:   client.ID,
		EmployeeID: emp.ID,
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Status:     string(domain.StatusPending),
	}
	require.NoError(t, s.CreateAppointment(ctx, ap))

	conflict, err := s.HasTimeConflict(ctx, emp.ID, start.Add(15*time.Minute), start.Add(45*time.Minute))
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = s.HasTimeConflict(ctx, emp.ID, start.Add(30*time.Minute), start.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, conflict, "back-to-back bookings do not overlap")

	ap.Status = string(domain.StatusCanceled)
	require.NoError(t, s.UpdateAppointment(ctx, ap))

	conflict, err = s.HasTimeConflict(ctx, emp.ID, start, start.Add(30*time.Minute))
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestGetAppointment_HydratesServices(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	company := seedUser(t, s, "co@x.com", models.RoleCompany)
	client := seedUser(t, s, "c@x.com", models.RoleClient)

	svc := &models.Service{CompanyID: company.ID, Name: "Corte", DurationMin: 30, Price: 50, Active: true}
	require.NoError(t, s.CreateService(ctx, svc))

	ap := &models.Appointment{ClientID: client.ID, EmployeeID: company.ID, CompanyID: company.ID}
	require.NoError(t, s.CreateAppointment(ctx, ap))
	require.NoError(t, s.CreateAppointmentServices(ctx, []models.AppointmentService{
		{AppointmentID: ap.ID, ServiceID: svc.ID, Quantity: 2, UnitPrice: 50},
	}))

	got, err := s.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "c@x.com", got.Client.Email)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Corte", got.Services[0].ServiceName)
	assert.Equal(t, 2, got.Services[0].Quantity)
}

func TestCreateRating_OncePerAppointment(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.CreateRating(ctx, &models.Rating{AppointmentID: 7, CompanyID: 1, Score: 5}))
	err := s.CreateRating(ctx, &models.Rating{AppointmentID: 7, CompanyID: 1, Score: 3})
	assert.True(t, persistence.IsDuplicate(err))

	list, err := s.ListRatingsByCompany(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotifications_ReadFlags(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.CreateNotifications(ctx, []models.Notification{
		{UserID: 1, Kind: models.NotificationAppointment, Title: "a"},
		{UserID: 1, Kind: models.NotificationReminder, Title: "b"},
		{UserID: 2, Kind: models.NotificationAppointment, Title: "c"},
	}))

	assert.True(t, persistence.IsNotFound(s.MarkNotificationRead(ctx, 2, 1)))
	require.NoError(t, s.MarkNotificationRead(ctx, 1, 1))

	unread, err := s.ListNotifications(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "b", unread[0].Title)

	n, err := s.MarkAllNotificationsRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
