package model

import "context"

// Transactor runs fn inside a single transaction. Stores called with the
// context passed to fn take part in that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
