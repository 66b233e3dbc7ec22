package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func (s *Store) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	defer s.lock(ctx)()

	log.ID = s.t.next("audit_logs")
	log.CreatedAt = s.stamp()
	s.t.auditLogs[log.ID] = *log
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	defer s.lock(ctx)()

	matched := []models.AuditLog{}
	for _, l := range s.t.auditLogs {
		if l.CompanyID != f.CompanyID {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && l.CreatedAt.After(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := f.Offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := len(matched)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}
