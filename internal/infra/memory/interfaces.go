package memory

import (
	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/agenda"
	"github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/catalog"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/notification"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/rating"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
)

// Compile-time checks
var (
	_ persistence.Transactor  = (*Store)(nil)
	_ user.Repository         = (*Store)(nil)
	_ company.Repository      = (*Store)(nil)
	_ catalog.Repository      = (*Store)(nil)
	_ agenda.Repository       = (*Store)(nil)
	_ appointment.Repository  = (*Store)(nil)
	_ rating.Repository       = (*Store)(nil)
	_ notification.Repository = (*Store)(nil)
	_ audit.Store             = (*Store)(nil)
)
