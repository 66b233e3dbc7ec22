package httperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBusinessCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating: %w", ErrBusiness("time_conflict"))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "time_conflict", code)
	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "too_soon"))
}

func TestBusinessCode_ThroughPkgErrorsWrap(t *testing.T) {
	err := errors.Wrap(errors.WithMessage(ErrBusiness("agenda_not_found"), "agenda 9"), "create appointment")

	assert.True(t, IsBusiness(err, "agenda_not_found"))

	_, ok := BusinessCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"invalid_credentials", http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden},
		{"agenda_not_found", http.StatusNotFound},
		{"email_already_exists", http.StatusConflict},
		{"rating_already_exists", http.StatusConflict},
		{"invalid_state", http.StatusConflict},
		{"too_soon", http.StatusBadRequest},
		{"something_new", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, msg := Describe(tt.code)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}
