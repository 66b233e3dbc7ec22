package models

import "time"

// AuditLog is append-only. Rows are scoped to the company that owns the
// affected entity.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint   `gorm:"column:empresa_id;index:idx_audit_empresa_data,priority:1" json:"empresa_id"`
	UserID    *uint  `gorm:"column:usuario_id" json:"usuario_id"`
	Action    string `gorm:"column:action;size:50;not null;index" json:"acao"`

	Entity   string `gorm:"column:entity;size:50" json:"entidade"`
	EntityID *uint  `gorm:"column:entity_id" json:"entidade_id"`
	Metadata string `gorm:"column:metadata;type:text" json:"metadados,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_audit_empresa_data,priority:2" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
