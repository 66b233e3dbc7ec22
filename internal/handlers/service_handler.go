package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	"github.com/BruksfildServices01/agendapro/internal/usecase/catalog"
)

type ServiceHandler struct {
	list   *catalog.ListServices
	create *catalog.CreateService
	update *catalog.UpdateService
	log    *zap.Logger
}

func NewServiceHandler(
	list *catalog.ListServices,
	create *catalog.CreateService,
	update *catalog.UpdateService,
	log *zap.Logger,
) *ServiceHandler {
	return &ServiceHandler{list: list, create: create, update: update, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descricao"`
	DurationMin int     `json:"duracao_minutos"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"nome,omitempty"`
	Description *string  `json:"descricao,omitempty"`
	DurationMin *int     `json:"duracao_minutos,omitempty"`
	Price       *float64 `json:"preco,omitempty"`
	Category    *string  `json:"categoria,omitempty"`
	Active      *bool    `json:"ativo,omitempty"`
}

// --------- Handlers ---------

// ListByCompany returns the active services. The owner may pass
// ?inativos=true to see all of them.
func (h *ServiceHandler) ListByCompany(c *gin.Context) {
	companyID, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), companyID, c.Query("inativos") == "true")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), catalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), id, catalog.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
		Active:      req.Active,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}
