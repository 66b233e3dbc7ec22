package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/httpresp"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/usecase/auth"
)

type AuthHandler struct {
	register *auth.Register
	login    *auth.Login
	me       *auth.Me
	log      *zap.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, me *auth.Me, log *zap.Logger) *AuthHandler {
	return &AuthHandler{register: register, login: login, me: me, log: log}
}

// --------- Requests ---------

// ProfileRequest carries the optional company profile fields.
type ProfileRequest struct {
	Address        *string               `json:"endereco"`
	City           *string               `json:"cidade"`
	State          *string               `json:"estado" binding:"omitempty,len=2"`
	PostalCode     *string               `json:"cep"`
	Description    *string               `json:"descricao"`
	OperatingHours models.OperatingHours `json:"horario_funcionamento"`
	WhatsApp       *string               `json:"whatsapp"`
	Instagram      *string               `json:"instagram"`
	Website        *string               `json:"site"`
	Latitude       *float64              `json:"latitude"`
	Longitude      *float64              `json:"longitude"`
	Timezone       *string               `json:"timezone"`
}

func (p ProfileRequest) patch() company.ProfilePatch {
	return company.ProfilePatch{
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		PostalCode:     p.PostalCode,
		Description:    p.Description,
		OperatingHours: p.OperatingHours,
		WhatsApp:       p.WhatsApp,
		Instagram:      p.Instagram,
		Website:        p.Website,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Timezone:       p.Timezone,
	}
}

type RegisterRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6,max=72"`
	Phone    string `json:"telefone"`
	TaxID    string `json:"cpf_cnpj" binding:"omitempty,cpfcnpj"`
	Role     string `json:"tipo" binding:"required"`

	ProfileRequest
}

// Every field is optional so that any bad combination ends as
// invalid_credentials.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"senha"`
	Role       string `json:"tipo"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.register.Execute(c.Request.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		TaxID:    req.TaxID,
		Role:     models.UserRole(req.Role),
		Profile:  req.patch(),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, sess)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}

	sess, err := h.login.Execute(c.Request.Context(), auth.LoginInput{
		Identifier: identifier,
		Password:   req.Password,
		Role:       models.UserRole(req.Role),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, sess)
}

func (h *AuthHandler) Me(c *gin.Context) {
	out, err := h.me.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}
