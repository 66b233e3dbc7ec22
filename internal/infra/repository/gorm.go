package repository

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
)

type txKey struct{}

// GormTransactor opens a database transaction and hands it to repositories
// through the context.
type GormTransactor struct {
	db *gorm.DB
}

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {

	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// base is embedded by every repository.
type base struct {
	db *gorm.DB
}

// conn returns the transaction carried by ctx, or the pool.
func (b base) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return b.db.WithContext(ctx)
}

const uniqueViolation = "23505"

// translate maps driver errors onto persistence errors.
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(persistence.ErrNotFound, format, args...)
	}
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrapf(persistence.ErrDuplicate, format, args...)
	}
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Wrapf(persistence.ErrDuplicate, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
