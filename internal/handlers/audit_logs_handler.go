package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	"github.com/BruksfildServices01/agendapro/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
	log    *zap.Logger
}

func NewAuditLogsHandler(logger *audit.Logger, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, log: log}
}

// List is always scoped to the caller's company. Optional filters: action,
// entity, from and to (YYYY-MM-DD, inclusive), page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := audit.Filter{
		CompanyID: actor.UserID,
		Action:    c.Query("action"),
		Entity:    c.Query("entity"),
		Page:      page,
		Limit:     limit,
	}

	// --------------------------------------------------
	// Filtros de data
	// --------------------------------------------------
	if s := c.Query("from"); s != "" {
		from, err := time.Parse(timezone.DateLayout, s)
		if err != nil {
			httperr.Business(c, "invalid_date")
			return
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := time.Parse(timezone.DateLayout, s)
		if err != nil {
			httperr.Business(c, "invalid_date")
			return
		}
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	out, err := h.logger.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}
