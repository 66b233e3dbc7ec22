package models

import "time"

type UserRole string

const (
	RoleCompany  UserRole = "empresa"
	RoleEmployee UserRole = "funcionario"
	RoleClient   UserRole = "cliente"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCompany, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// Staff reports whether the role acts on behalf of a company.
func (r UserRole) Staff() bool {
	return r == RoleCompany || r == RoleEmployee
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string   `gorm:"column:nome;size:100;not null" json:"nome"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"column:senha_hash;size:255" json:"-"`
	Phone        string   `gorm:"column:telefone;size:20;index" json:"telefone"`
	TaxID        string   `gorm:"column:cpf_cnpj;size:14;index" json:"cpf_cnpj"`
	Role         UserRole `gorm:"column:tipo;size:20;not null;index" json:"tipo"`

	// Parent company, only set for employees.
	CompanyID *uint  `gorm:"column:empresa_id;index" json:"empresa_id,omitempty"`
	Company   *User  `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title     string `gorm:"column:cargo;size:60" json:"cargo,omitempty"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScopeCompanyID returns the company a user acts for: itself for companies,
// the parent for employees and zero for clients.
func (u *User) ScopeCompanyID() uint {
	switch u.Role {
	case RoleCompany:
		return u.ID
	case RoleEmployee:
		if u.CompanyID != nil {
			return *u.CompanyID
		}
	}
	return 0
}
