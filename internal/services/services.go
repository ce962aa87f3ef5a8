package services

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxRunner runs a function inside a single store transaction. *database.DB
// satisfies it; tests substitute a fake. Every multi-step balance mutation
// goes through this boundary so either all of its writes commit or none do.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
