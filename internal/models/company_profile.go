package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// DayHours is an opening window; a nil entry in OperatingHours means closed.
type DayHours struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// OperatingHours maps weekday keys (domingo..sabado) to opening windows.
type OperatingHours map[string]*DayHours

func (h OperatingHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (h *OperatingHours) Scan(src any) error {
	if src == nil {
		*h = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("operating hours: unsupported column type")
	}

	if len(raw) == 0 {
		*h = nil
		return nil
	}
	return json.Unmarshal(raw, h)
}

func (OperatingHours) GormDataType() string {
	return "text"
}

type CompanyProfile struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Address     string `gorm:"column:endereco;size:255" json:"endereco"`
	City        string `gorm:"column:cidade;size:100" json:"cidade"`
	State       string `gorm:"column:estado;size:2" json:"estado"`
	PostalCode  string `gorm:"column:cep;size:9" json:"cep"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`

	OperatingHours OperatingHours `gorm:"column:horario_funcionamento" json:"horario_funcionamento"`

	WhatsApp  string `gorm:"size:20" json:"whatsapp"`
	Instagram string `gorm:"size:100" json:"instagram"`
	Website   string `gorm:"column:site;size:255" json:"site"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Timezone string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`
	LogoURL  string `gorm:"size:255" json:"logo_url"`

	Active bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyProfile) TableName() string {
	return "empresas"
}
