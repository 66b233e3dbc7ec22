package rating

import (
	"math"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type Summary struct {
	Average float64 `json:"media"`
	Total   int     `json:"total"`
}

// Summarize averages the scores, rounded to two decimals.
func Summarize(ratings []models.Rating) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}

	avg := float64(sum) / float64(len(ratings))
	return Summary{
		Average: math.Round(avg*100) / 100,
		Total:   len(ratings),
	}
}
