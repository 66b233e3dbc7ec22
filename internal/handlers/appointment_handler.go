package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/agendapro/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	listUC         *ucAppointment.ListAppointments
	getUC          *ucAppointment.GetAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	completeUC     *ucAppointment.CompleteAppointment
	cancelUC       *ucAppointment.CancelAppointment
	reminderUC     *ucAppointment.SendReminder
	availabilityUC *ucAppointment.GetAvailability
	log            *zap.Logger
}

type AppointmentUseCases struct {
	Create       *ucAppointment.CreateAppointment
	List         *ucAppointment.ListAppointments
	Get          *ucAppointment.GetAppointment
	Confirm      *ucAppointment.ConfirmAppointment
	Complete     *ucAppointment.CompleteAppointment
	Cancel       *ucAppointment.CancelAppointment
	Reminder     *ucAppointment.SendReminder
	Availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(uc AppointmentUseCases, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       uc.Create,
		listUC:         uc.List,
		getUC:          uc.Get,
		confirmUC:      uc.Confirm,
		completeUC:     uc.Complete,
		cancelUC:       uc.Cancel,
		reminderUC:     uc.Reminder,
		availabilityUC: uc.Availability,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceItemRequest struct {
	ServiceID uint `json:"servico_id" binding:"required"`
	Quantity  int  `json:"quantidade"`
}

func serviceItems(in []ServiceItemRequest) []ucAppointment.ServiceItem {
	out := make([]ucAppointment.ServiceItem, 0, len(in))
	for _, s := range in {
		out = append(out, ucAppointment.ServiceItem{ServiceID: s.ServiceID, Quantity: s.Quantity})
	}
	return out
}

type CreateAppointmentRequest struct {
	AgendaID   uint `json:"agenda_id"`
	EmployeeID uint `json:"funcionario_id"`

	ClientID    uint   `json:"cliente_id"`
	ClientName  string `json:"cliente_nome"`
	ClientEmail string `json:"cliente_email" binding:"omitempty,email"`
	ClientPhone string `json:"cliente_telefone"`

	Date     string               `json:"data" binding:"required"`
	Time     string               `json:"hora" binding:"required"`
	Services []ServiceItemRequest `json:"servicos" binding:"dive"`
	Notes    string               `json:"observacoes"`
}

type CancelAppointmentRequest struct {
	Justification string `json:"justificativa"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	actor := middleware.Actor(c)
	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:       &actor,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		AgendaID:    req.AgendaID,
		EmployeeID:  req.EmployeeID,
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

// ======================================================
// READ
// ======================================================

// List accepts ?status=, ?data=YYYY-MM-DD and ?mes=YYYY-MM.
func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.listUC.Execute(c.Request.Context(), middleware.Actor(c), ucAppointment.ListAppointmentsInput{
		Status: c.Query("status"),
		Date:   c.Query("data"),
		Month:  c.Query("mes"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// Availability is public: ?data=YYYY-MM-DD and optional ?servicos=1,2.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	employeeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var serviceIDs []uint
	for _, raw := range strings.Split(c.Query("servicos"), ",") {
		if raw = strings.TrimSpace(raw); raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, h.log, errInvalidRequest)
			return
		}
		serviceIDs = append(serviceIDs, uint(id))
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		EmployeeID: employeeID,
		Date:       c.Query("data"),
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, slots)
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// Cancel takes an optional {"justificativa": "..."} body.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), middleware.Actor(c), id, req.Justification)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SendReminder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	n, err := h.reminderUC.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, n)
}
