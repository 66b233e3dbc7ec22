package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}
