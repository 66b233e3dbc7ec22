package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/City").String())
	assert.Equal(t, "America/Manaus", Location("America/Manaus").String())
}

func TestParseDateTime(t *testing.T) {
	start, err := ParseDateTime("", "2024-01-15", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, "2024-01-15T12:00:00Z", start.UTC().Format("2006-01-02T15:04:05Z"))

	_, err = ParseDateTime("", "15/01/2024", "09:00")
	assert.Error(t, err)
}
