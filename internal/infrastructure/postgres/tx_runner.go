package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/billing"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

// Ensure TxRunner implements the billing port.
var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. The bill
// commit and cancel sequences run through it so "upsert bill → upsert linked
// sales → delete removed sales" is atomic instead of three client calls.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling begins a transaction, runs fn with bill and sale repositories
// bound to it, and commits or rolls back.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	billRepo repository.BillRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	billRepo := NewBillRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(billRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
