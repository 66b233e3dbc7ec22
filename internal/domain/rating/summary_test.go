package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]models.Rating{{Score: 4}, {Score: 5}, {Score: 5}})
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 4.67, s.Average)
}
