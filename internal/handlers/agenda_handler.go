package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	agendauc "github.com/BruksfildServices01/agendapro/internal/usecase/agenda"
	appointmentuc "github.com/BruksfildServices01/agendapro/internal/usecase/appointment"
)

type AgendaHandler struct {
	create *agendauc.CreateAgenda
	list   *agendauc.ListAgendas
	public *agendauc.GetPublicView
	book   *appointmentuc.CreateAppointment
	log    *zap.Logger
}

func NewAgendaHandler(
	create *agendauc.CreateAgenda,
	list *agendauc.ListAgendas,
	public *agendauc.GetPublicView,
	book *appointmentuc.CreateAppointment,
	log *zap.Logger,
) *AgendaHandler {
	return &AgendaHandler{create: create, list: list, public: public, book: book, log: log}
}

// --------- Requests ---------

type CreateAgendaRequest struct {
	EmployeeID uint   `json:"funcionario_id"`
	Weekday    *int   `json:"dia_semana" binding:"required,min=0,max=6"`
	StartTime  string `json:"inicio" binding:"required,hhmm"`
	EndTime    string `json:"fim" binding:"required,hhmm"`
	BreakStart string `json:"intervalo_inicio" binding:"omitempty,hhmm"`
	BreakEnd   string `json:"intervalo_fim" binding:"omitempty,hhmm"`
	SlotMin    int    `json:"duracao_slot_minutos"`
}

type PublicBookingRequest struct {
	AgendaID    uint                 `json:"agenda_id"`
	ClientName  string               `json:"cliente_nome" binding:"required"`
	ClientEmail string               `json:"cliente_email" binding:"required,email"`
	ClientPhone string               `json:"cliente_telefone"`
	Date        string               `json:"data" binding:"required"`
	Time        string               `json:"hora" binding:"required"`
	Services    []ServiceItemRequest `json:"servicos" binding:"dive"`
	Notes       string               `json:"observacoes"`
}

// --------- Handlers ---------

func (h *AgendaHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AgendaHandler) Create(c *gin.Context) {
	var req CreateAgendaRequest
	if !bindJSON(c, &req) {
		return
	}

	ag, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), agendauc.CreateAgendaInput{
		EmployeeID: req.EmployeeID,
		Weekday:    *req.Weekday,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		SlotMin:    req.SlotMin,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, ag)
}

// PublicView serves the booking page of one employee; ?data=YYYY-MM-DD adds
// the free slots of that day.
func (h *AgendaHandler) PublicView(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	view, err := h.public.Execute(c.Request.Context(), userID, c.Query("data"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *AgendaHandler) PublicBook(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	var req PublicBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		AgendaID:    req.AgendaID,
		EmployeeID:  userID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Services:    serviceItems(req.Services),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, ap)
}
