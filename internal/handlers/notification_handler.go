package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	"github.com/BruksfildServices01/agendapro/internal/usecase/notification"
)

type NotificationHandler struct {
	inbox *notification.Inbox
	log   *zap.Logger
}

func NewNotificationHandler(inbox *notification.Inbox, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{inbox: inbox, log: log}
}

// List accepts ?nao_lidas=true.
func (h *NotificationHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	list, err := h.inbox.List(c.Request.Context(), actor.UserID, c.Query("nao_lidas") == "true")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.inbox.MarkRead(c.Request.Context(), middleware.Actor(c).UserID, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"id": id, "lida": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.inbox.MarkAllRead(c.Request.Context(), middleware.Actor(c).UserID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"atualizadas": n})
}
