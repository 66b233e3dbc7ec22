package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	companyuc "github.com/BruksfildServices01/agendapro/internal/usecase/company"
)

type EmployeeHandler struct {
	create     *companyuc.CreateEmployee
	list       *companyuc.ListEmployees
	deactivate *companyuc.DeactivateEmployee
	log        *zap.Logger
}

func NewEmployeeHandler(
	create *companyuc.CreateEmployee,
	list *companyuc.ListEmployees,
	deactivate *companyuc.DeactivateEmployee,
	log *zap.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{create: create, list: list, deactivate: deactivate, log: log}
}

type CreateEmployeeRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6,max=72"`
	Phone    string `json:"telefone"`
	Title    string `json:"cargo"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	emp, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), companyuc.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Title:    req.Title,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, emp)
}

// ListByCompany is public: the booking page shows who attends.
func (h *EmployeeHandler) ListByCompany(c *gin.Context) {
	companyID, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	emp, err := h.deactivate.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, emp)
}
