package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func seedCompany(t *testing.T, s *memory.Store, email string) user.Actor {
	t.Helper()
	ctx := context.Background()
	u := &models.User{Name: email, Email: email, Role: models.RoleCompany, Active: true}
	require.NoError(t, s.CreateUser(ctx, u))
	require.NoError(t, s.CreateCompanyProfile(ctx, &models.CompanyProfile{UserID: u.ID, Active: true}))
	return user.Actor{UserID: u.ID, Role: models.RoleCompany, CompanyID: u.ID}
}

func TestCreateAndListServices(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	actor := seedCompany(t, s, "a@x.com")
	create := NewCreateService(s, nil)

	svc, err := create.Execute(ctx, actor, CreateServiceInput{Name: " Corte ", DurationMin: 30, Price: 49.999})
	require.NoError(t, err)
	assert.Equal(t, "Corte", svc.Name)
	assert.Equal(t, 50.0, svc.Price)
	assert.True(t, svc.Active)

	_, err = create.Execute(ctx, actor, CreateServiceInput{Name: "Barba", DurationMin: 0, Price: 10})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = create.Execute(ctx, actor, CreateServiceInput{Name: "Barba", DurationMin: 20, Price: -1})
	assert.True(t, httperr.IsBusiness(err, "invalid_price"))

	_, err = create.Execute(ctx, user.Actor{UserID: 9, Role: models.RoleClient}, CreateServiceInput{Name: "x", DurationMin: 5})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	off := false
	_, err = NewUpdateService(s, nil).Execute(ctx, actor, svc.ID, UpdateServiceInput{Active: &off})
	require.NoError(t, err)

	public, err := NewListServices(s, s).Execute(ctx, actor.UserID, false)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := NewListServices(s, s).Execute(ctx, actor.UserID, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateService_ScopedToOwner(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	owner := seedCompany(t, s, "a@x.com")
	other := seedCompany(t, s, "b@x.com")

	svc, err := NewCreateService(s, nil).Execute(ctx, owner, CreateServiceInput{Name: "Corte", DurationMin: 30, Price: 50})
	require.NoError(t, err)

	price := 60.0
	_, err = NewUpdateService(s, nil).Execute(ctx, other, svc.ID, UpdateServiceInput{Price: &price})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	dur := 45
	updated, err := NewUpdateService(s, nil).Execute(ctx, owner, svc.ID, UpdateServiceInput{Price: &price, DurationMin: &dur})
	require.NoError(t, err)
	assert.Equal(t, 60.0, updated.Price)
	assert.Equal(t, 45, updated.DurationMin)

	bad := 0
	_, err = NewUpdateService(s, nil).Execute(ctx, owner, svc.ID, UpdateServiceInput{DurationMin: &bad})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = NewListServices(s, s).Execute(ctx, 99, false)
	assert.True(t, httperr.IsBusiness(err, "company_not_found"))
}
