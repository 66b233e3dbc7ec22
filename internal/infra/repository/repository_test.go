package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
)

// dryRunDB renders SQL without a server and records every query statement.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=agenda dbname=agendapro sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	var queries []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	}))
	return db, &queries
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{"record not found", gorm.ErrRecordNotFound, true, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, false, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false, true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), false, true},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, false, false},
		{"other", errors.New("connection reset"), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := translate(tc.err, "user %d", 7)

			require.Error(t, err)
			assert.Equal(t, tc.notFound, persistence.IsNotFound(err))
			assert.Equal(t, tc.duplicate, persistence.IsDuplicate(err))
			assert.Contains(t, err.Error(), "user 7")
		})
	}

	assert.NoError(t, translate(nil, "user %d", 7))
}

func TestWithAliases(t *testing.T) {
	assert.Equal(t,
		[]string{"pendente", "em_aprovacao", "agendado", "pending", "scheduled", "confirmado"},
		withAliases(domain.ActiveStatuses()),
	)
	assert.Equal(t, []string{"cancelado"}, withAliases([]domain.Status{domain.StatusCanceled}))
	assert.Empty(t, withAliases(nil))
}

func TestHasTimeConflict_LocksEmployeeFirst(t *testing.T) {
	db, queries := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)
	start := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	conflict, err := repo.HasTimeConflict(context.Background(), 2, start, start.Add(30*time.Minute))
	require.NoError(t, err)
	assert.False(t, conflict)

	require.Len(t, *queries, 2)
	lock, overlap := (*queries)[0], (*queries)[1]

	assert.Contains(t, lock, `FROM "users"`)
	assert.True(t, strings.HasSuffix(lock, "FOR UPDATE"), lock)
	assert.Contains(t, overlap, `FROM "agendamentos"`)
	assert.Contains(t, overlap, "FOR UPDATE")
}
