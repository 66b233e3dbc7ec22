package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

// Filter selects audit entries of one company. Page starts at 1.
type Filter struct {
	CompanyID uint
	Action    string
	Entity    string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type Store interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	// ListAuditLogs returns one page, newest first, and the total count.
	ListAuditLogs(ctx context.Context, filter Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	ctx context.Context,
	companyID uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		CompanyID: companyID,
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Page is one listing page of audit entries.
type Page struct {
	Data  []models.AuditLog `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// List clamps paging to sane bounds and reads one page.
func (l *Logger) List(ctx context.Context, f Filter) (*Page, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	logs, total, err := l.store.ListAuditLogs(ctx, f)
	if err != nil {
		return nil, err
	}

	return &Page{Data: logs, Total: total, Page: f.Page, Limit: f.Limit}, nil
}
