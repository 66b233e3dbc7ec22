package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type AuditGormRepository struct {
	base
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{base{db: db}}
}

func (r *AuditGormRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return translate(r.conn(ctx).Create(log).Error, "create audit log %s", log.Action)
}

func (r *AuditGormRepository) ListAuditLogs(
	ctx context.Context,
	f audit.Filter,
) ([]models.AuditLog, int64, error) {

	q := r.conn(ctx).
		Model(&models.AuditLog{}).
		Where("empresa_id = ?", f.CompanyID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count audit logs")
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("id DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, translate(err, "list audit logs")
	}

	return logs, total, nil
}

var _ audit.Store = (*AuditGormRepository)(nil)
