package billing

import (
	"context"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

// TxRunner runs the bill commit and cancel sequences inside one store
// transaction, so the bill header and its sale rows change together or not
// at all.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
