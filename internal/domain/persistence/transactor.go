package persistence

import "context"

// Transactor runs fn inside one unit of work. Repositories called with the
// ctx handed to fn take part in the same transaction; any error rolls it back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
