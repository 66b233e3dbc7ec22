package company

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func TestValidOperatingHours(t *testing.T) {
	ok := models.OperatingHours{
		"segunda": {Start: "09:00", End: "18:00"},
		"domingo": nil,
	}
	assert.True(t, ValidOperatingHours(ok))
	assert.True(t, ValidOperatingHours(nil))

	assert.False(t, ValidOperatingHours(models.OperatingHours{
		"feriado": {Start: "09:00", End: "12:00"},
	}))
	assert.False(t, ValidOperatingHours(models.OperatingHours{
		"sabado": {Start: "14:00", End: "08:00"},
	}))
	assert.False(t, ValidOperatingHours(models.OperatingHours{
		"sabado": {Start: "9h", End: "12:00"},
	}))
}

func TestProfilePatch_Apply(t *testing.T) {
	city, state, tz := " Campinas ", "sp", ""
	p := &models.CompanyProfile{Address: "Rua A", Timezone: "America/Manaus"}

	ProfilePatch{City: &city, State: &state, Timezone: &tz}.Apply(p)

	assert.Equal(t, "Rua A", p.Address)
	assert.Equal(t, "Campinas", p.City)
	assert.Equal(t, "SP", p.State)
	assert.Equal(t, "America/Sao_Paulo", p.Timezone)
}

func TestProfilePatch_Validate(t *testing.T) {
	bad := "Mars/Olympus"
	assert.Error(t, ProfilePatch{Timezone: &bad}.Validate())

	hours := models.OperatingHours{"segunda": {Start: "18:00", End: "09:00"}}
	assert.True(t, httperr.IsBusiness(ProfilePatch{OperatingHours: hours}.Validate(), "invalid_operating_hours"))

	assert.NoError(t, ProfilePatch{}.Validate())
}
