package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	"github.com/BruksfildServices01/agendapro/internal/usecase/rating"
)

type RatingHandler struct {
	submit *rating.SubmitRating
	list   *rating.ListCompanyRatings
	log    *zap.Logger
}

func NewRatingHandler(submit *rating.SubmitRating, list *rating.ListCompanyRatings, log *zap.Logger) *RatingHandler {
	return &RatingHandler{submit: submit, list: list, log: log}
}

type SubmitRatingRequest struct {
	AppointmentID uint   `json:"agendamento_id" binding:"required"`
	Score         int    `json:"nota"`
	Comment       string `json:"comentario"`
}

func (h *RatingHandler) Submit(c *gin.Context) {
	var req SubmitRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.submit.Execute(c.Request.Context(), middleware.Actor(c), rating.SubmitInput{
		AppointmentID: req.AppointmentID,
		Score:         req.Score,
		Comment:       req.Comment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *RatingHandler) ListByCompany(c *gin.Context) {
	companyID, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}
