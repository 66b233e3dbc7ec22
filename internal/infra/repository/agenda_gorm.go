package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/agenda"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type AgendaGormRepository struct {
	base
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{base{db: db}}
}

func (r *AgendaGormRepository) CreateAgenda(ctx context.Context, ag *models.Agenda) error {
	return translate(r.conn(ctx).Omit("Employee").Create(ag).Error, "create agenda")
}

func (r *AgendaGormRepository) GetAgendaByID(ctx context.Context, id uint) (*models.Agenda, error) {
	var ag models.Agenda
	if err := r.conn(ctx).First(&ag, id).Error; err != nil {
		return nil, translate(err, "agenda %d", id)
	}
	return &ag, nil
}

func (r *AgendaGormRepository) ListAgendasByEmployee(ctx context.Context, employeeID uint) ([]models.Agenda, error) {
	agendas := []models.Agenda{}
	if err := r.conn(ctx).
		Where("funcionario_id = ?", employeeID).
		Order("dia_semana ASC, inicio ASC, id ASC").
		Find(&agendas).Error; err != nil {
		return nil, translate(err, "list agendas of employee %d", employeeID)
	}
	return agendas, nil
}

func (r *AgendaGormRepository) ListAgendasByCompany(ctx context.Context, companyID uint) ([]models.Agenda, error) {
	agendas := []models.Agenda{}
	if err := r.conn(ctx).
		Where("empresa_id = ?", companyID).
		Order("dia_semana ASC, inicio ASC, id ASC").
		Find(&agendas).Error; err != nil {
		return nil, translate(err, "list agendas of company %d", companyID)
	}
	return agendas, nil
}

var _ agenda.Repository = (*AgendaGormRepository)(nil)
