package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
)

var errInvalidRequest = httperr.ErrBusiness("invalid_request")

// respondError writes business errors with their registered status. Anything
// else is logged and hidden behind a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.Business(c, code)
		return
	}

	log.Error("request failed",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_request", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
