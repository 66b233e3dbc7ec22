package models

import "time"

type Service struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"column:empresa_id;index;not null" json:"empresa_id"`
	Company   User `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Description string  `gorm:"column:descricao;size:255" json:"descricao"`
	DurationMin int     `gorm:"column:duracao_minutos;not null;check:duracao_minutos > 0" json:"duracao_minutos"`
	Price       float64 `gorm:"column:preco;type:decimal(10,2);not null;check:preco >= 0" json:"preco"`
	Category    string  `gorm:"column:categoria;size:50" json:"categoria"`
	Active      bool    `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "servicos"
}
