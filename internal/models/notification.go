package models

import "time"

type NotificationKind string

const (
	NotificationAppointment  NotificationKind = "agendamento"
	NotificationConfirmation NotificationKind = "confirmacao"
	NotificationCancellation NotificationKind = "cancelamento"
	NotificationReminder     NotificationKind = "lembrete"
)

type Notification struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	UserID        uint             `gorm:"column:usuario_id;index;not null" json:"usuario_id"`
	Kind          NotificationKind `gorm:"column:tipo;size:20;not null" json:"tipo"`
	Title         string           `gorm:"column:titulo;size:120" json:"titulo"`
	Body          string           `gorm:"column:mensagem;type:text" json:"mensagem"`
	Read          bool             `gorm:"column:lida;default:false" json:"lida"`
	AppointmentID *uint            `gorm:"column:agendamento_id" json:"agendamento_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notificacoes"
}
