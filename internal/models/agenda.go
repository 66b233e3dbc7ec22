package models

import "time"

// Agenda is a weekly bookable window of one employee.
type Agenda struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"column:funcionario_id;index;not null" json:"funcionario_id"`
	Employee   User `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CompanyID  uint `gorm:"column:empresa_id;index;not null" json:"empresa_id"`

	Weekday int `gorm:"column:dia_semana" json:"dia_semana"`

	StartTime  string `gorm:"column:inicio;size:5" json:"inicio"`
	EndTime    string `gorm:"column:fim;size:5" json:"fim"`
	BreakStart string `gorm:"column:intervalo_inicio;size:5" json:"intervalo_inicio"`
	BreakEnd   string `gorm:"column:intervalo_fim;size:5" json:"intervalo_fim"`
	SlotMin    int    `gorm:"column:duracao_slot_minutos;default:30" json:"duracao_slot_minutos"`
	Active     bool   `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Agenda) TableName() string {
	return "agendas"
}
