package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID   uint  `gorm:"column:cliente_id;index;not null" json:"cliente_id"`
	Client     User  `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente"`
	EmployeeID uint  `gorm:"column:funcionario_id;index;not null" json:"funcionario_id"`
	Employee   User  `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"funcionario"`
	CompanyID  uint  `gorm:"column:empresa_id;index;not null" json:"empresa_id"`
	AgendaID   *uint `gorm:"column:agenda_id" json:"agenda_id,omitempty"`

	Date string `gorm:"column:data;size:10;not null" json:"data"`
	Time string `gorm:"column:hora;size:5;not null" json:"hora"`

	StartTime time.Time `gorm:"column:inicio;index" json:"inicio"`
	EndTime   time.Time `gorm:"column:fim" json:"fim"`

	Status     string  `gorm:"size:20;default:'pendente';index" json:"status"`
	Notes      string  `gorm:"column:observacoes;size:255" json:"observacoes"`
	TotalValue float64 `gorm:"column:valor_total;type:decimal(10,2)" json:"valor_total"`

	CanceledBy          string     `gorm:"column:cancelado_por;size:20" json:"cancelado_por,omitempty"`
	CancelJustification string     `gorm:"column:justificativa_cancelamento;size:255" json:"justificativa_cancelamento,omitempty"`
	CanceledAt          *time.Time `gorm:"column:cancelado_em" json:"cancelado_em,omitempty"`
	ConfirmedAt         *time.Time `gorm:"column:confirmado_em" json:"confirmado_em,omitempty"`
	CompletedAt         *time.Time `gorm:"column:concluido_em" json:"concluido_em,omitempty"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID" json:"servicos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "agendamentos"
}

// AppointmentService links an appointment to a service with the price charged
// at booking time.
type AppointmentService struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	AppointmentID uint    `gorm:"column:agendamento_id;index;not null" json:"agendamento_id"`
	ServiceID     uint    `gorm:"column:servico_id;index;not null" json:"servico_id"`
	Service       Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ServiceName   string  `gorm:"-" json:"nome,omitempty"`
	Quantity      int     `gorm:"column:quantidade;default:1" json:"quantidade"`
	UnitPrice     float64 `gorm:"column:preco_unitario;type:decimal(10,2)" json:"preco_unitario"`
}

func (AppointmentService) TableName() string {
	return "agendamento_servicos"
}
