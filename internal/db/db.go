package db

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/config"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.CompanyProfile{},
		&models.Service{},
		&models.Agenda{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.Notification{},
		&models.Rating{},
		&models.AuditLog{},
	); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}

	// Rows written before the status vocabulary settled.
	res := db.Exec(`
        UPDATE agendamentos
        SET status = 'pendente'
        WHERE status IN ('em_aprovacao', 'agendado', 'pending', 'scheduled')
    `)
	if res.Error != nil {
		log.Warn("legacy status normalization failed", zap.Error(res.Error))
	} else if res.RowsAffected > 0 {
		log.Info("normalized legacy appointment statuses", zap.Int64("rows", res.RowsAffected))
	}

	db.Exec(`
        UPDATE empresas
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Backs the overlap check, which only looks at active appointments.
	if err := db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_agendamentos_ativos
        ON agendamentos (funcionario_id, inicio)
        WHERE status IN ('pendente', 'confirmado')
    `).Error; err != nil {
		return nil, errors.Wrap(err, "create active appointments index")
	}

	return db, nil
}
