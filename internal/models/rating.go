package models

import "time"

type Rating struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AppointmentID uint   `gorm:"column:agendamento_id;uniqueIndex;not null" json:"agendamento_id"`
	ClientID      uint   `gorm:"column:cliente_id;index;not null" json:"cliente_id"`
	CompanyID     uint   `gorm:"column:empresa_id;index;not null" json:"empresa_id"`
	Score         int    `gorm:"column:nota;not null;check:nota BETWEEN 1 AND 5" json:"nota"`
	Comment       string `gorm:"column:comentario;type:text" json:"comentario"`

	CreatedAt time.Time `json:"created_at"`
}

func (Rating) TableName() string {
	return "avaliacoes"
}
