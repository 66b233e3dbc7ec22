package company

import (
	"strings"

	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/timezone"
)

// ProfilePatch carries optional profile fields. Nil means unchanged.
type ProfilePatch struct {
	Address        *string
	City           *string
	State          *string
	PostalCode     *string
	Description    *string
	OperatingHours models.OperatingHours
	WhatsApp       *string
	Instagram      *string
	Website        *string
	Latitude       *float64
	Longitude      *float64
	Timezone       *string
}

// Validate checks the fields that have rules.
func (p ProfilePatch) Validate() error {
	if p.OperatingHours != nil && !ValidOperatingHours(p.OperatingHours) {
		return httperr.ErrBusiness("invalid_operating_hours")
	}
	if p.Timezone != nil && *p.Timezone != "" && !timezone.IsValid(*p.Timezone) {
		return httperr.ErrBusiness("invalid_request")
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return httperr.ErrBusiness("invalid_request")
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return httperr.ErrBusiness("invalid_request")
	}
	return nil
}

func (p ProfilePatch) Apply(dst *models.CompanyProfile) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&dst.Address, p.Address)
	set(&dst.City, p.City)
	set(&dst.State, p.State)
	set(&dst.PostalCode, p.PostalCode)
	set(&dst.Description, p.Description)
	set(&dst.WhatsApp, p.WhatsApp)
	set(&dst.Instagram, p.Instagram)
	set(&dst.Website, p.Website)
	set(&dst.Timezone, p.Timezone)

	if dst.State != "" {
		dst.State = strings.ToUpper(dst.State)
	}
	if dst.Timezone == "" {
		dst.Timezone = timezone.DefaultTimezone
	}
	if p.OperatingHours != nil {
		dst.OperatingHours = p.OperatingHours
	}
	if p.Latitude != nil {
		dst.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		dst.Longitude = p.Longitude
	}
}
