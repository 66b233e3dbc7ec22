package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/imaging"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	companyuc "github.com/BruksfildServices01/agendapro/internal/usecase/company"
)

type CompanyHandler struct {
	list   *companyuc.ListCompanies
	get    *companyuc.GetCompany
	update *companyuc.UpdateProfile
	logo   *companyuc.UploadLogo
	log    *zap.Logger
}

func NewCompanyHandler(
	list *companyuc.ListCompanies,
	get *companyuc.GetCompany,
	update *companyuc.UpdateProfile,
	logo *companyuc.UploadLogo,
	log *zap.Logger,
) *CompanyHandler {
	return &CompanyHandler{list: list, get: get, update: update, logo: logo, log: log}
}

type UpdateCompanyRequest struct {
	Name  *string `json:"nome"`
	Phone *string `json:"telefone"`

	ProfileRequest
}

func (h *CompanyHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, list)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, detail)
}

func (h *CompanyHandler) UpdateMe(c *gin.Context) {
	var req UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	detail, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), companyuc.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Profile: req.patch(),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, detail)
}

// UploadLogo expects a multipart form with the image in the "logo" field.
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Envie a imagem no campo logo.")
		return
	}
	if fh.Size > imaging.MaxUploadBytes {
		httperr.Business(c, "image_too_large")
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer f.Close()

	detail, err := h.logo.Execute(c.Request.Context(), middleware.Actor(c), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, detail)
}
