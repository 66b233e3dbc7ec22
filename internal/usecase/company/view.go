package company

import (
	"context"

	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// Summary is the public listing shape.
type Summary struct {
	ID             uint                  `json:"id"`
	Name           string                `json:"nome"`
	Email          string                `json:"email"`
	Phone          string                `json:"telefone"`
	TaxID          string                `json:"cnpj"`
	Address        string                `json:"endereco"`
	City           string                `json:"cidade"`
	State          string                `json:"estado"`
	OperatingHours models.OperatingHours `json:"horario_funcionamento"`
}

type Detail struct {
	Summary

	PostalCode  string   `json:"cep"`
	Description string   `json:"descricao"`
	WhatsApp    string   `json:"whatsapp"`
	Instagram   string   `json:"instagram"`
	Website     string   `json:"site"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Timezone    string   `json:"timezone"`
	LogoURL     string   `json:"logo_url"`
}

func summaryOf(p *models.CompanyProfile) Summary {
	return Summary{
		ID:             p.UserID,
		Name:           p.User.Name,
		Email:          p.User.Email,
		Phone:          p.User.Phone,
		TaxID:          p.User.TaxID,
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		OperatingHours: p.OperatingHours,
	}
}

func detailOf(p *models.CompanyProfile) *Detail {
	return &Detail{
		Summary:     summaryOf(p),
		PostalCode:  p.PostalCode,
		Description: p.Description,
		WhatsApp:    p.WhatsApp,
		Instagram:   p.Instagram,
		Website:     p.Website,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Timezone:    p.Timezone,
		LogoURL:     p.LogoURL,
	}
}

// ======================================================
// LIST
// ======================================================

type ListCompanies struct {
	repo      company.Repository
	directory *Directory
}

func NewListCompanies(repo company.Repository, directory *Directory) *ListCompanies {
	return &ListCompanies{repo: repo, directory: directory}
}

func (uc *ListCompanies) Execute(ctx context.Context) ([]Summary, error) {
	if cached, ok := uc.directory.load(ctx); ok {
		return cached, nil
	}

	profiles, err := uc.repo.ListActiveCompanies(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(profiles))
	for i := range profiles {
		out = append(out, summaryOf(&profiles[i]))
	}

	uc.directory.store(ctx, out)
	return out, nil
}

// ======================================================
// GET
// ======================================================

type GetCompany struct {
	repo company.Repository
}

func NewGetCompany(repo company.Repository) *GetCompany {
	return &GetCompany{repo: repo}
}

func (uc *GetCompany) Execute(ctx context.Context, id uint) (*Detail, error) {
	p, err := company.LoadActive(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return detailOf(p), nil
}
