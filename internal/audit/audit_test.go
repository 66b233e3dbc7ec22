package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
)

func TestDispatcher_WritesAndDrains(t *testing.T) {
	store := memory.NewStore()
	logger := audit.New(store)
	d := audit.NewDispatcher(logger, zap.NewNop())

	id := uint(9)
	for i := 0; i < 3; i++ {
		d.Dispatch(audit.Event{
			CompanyID: 1,
			Action:    "appointment_created",
			Entity:    "appointment",
			EntityID:  &id,
			Metadata:  map[string]any{"n": i},
		})
	}
	d.Close()

	page, err := logger.List(context.Background(), audit.Filter{CompanyID: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, `{"n":2}`, page.Data[0].Metadata)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *audit.Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(audit.Event{Action: "x"}) })
}

func TestList_ClampsLimit(t *testing.T) {
	logger := audit.New(memory.NewStore())

	page, err := logger.List(context.Background(), audit.Filter{CompanyID: 1, Limit: 5000, Page: -1})
	require.NoError(t, err)
	assert.Equal(t, 200, page.Limit)
	assert.Equal(t, 1, page.Page)
	assert.Empty(t, page.Data)
}
