package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// SaleFilter narrows List results.
type SaleFilter struct {
	Q            string // substring match on SID / PID / BID
	UnbilledOnly bool   // only sales with no bill attached
}

// SaleRepository is the persistence port for Sale. ListByBill and
// UnlinkAllFromBill exist for the bill relationship maintainer and are meant
// to run inside the bill transaction.
type SaleRepository interface {
	List(f SaleFilter) ([]*entity.Sale, error)
	ListByBill(bid string) ([]*entity.Sale, error)
	GetByID(id string) (*entity.Sale, error)
	GetTimestamp(id string) (time.Time, error)
	Save(s *entity.Sale, baseline *time.Time) error
	// Upsert writes the full row keyed by SID with no baseline check. The
	// bill commit uses it because line rows are revalidated by the bill's
	// own baseline.
	Upsert(s *entity.Sale) error
	// UnlinkAllFromBill clears BID on every sale of the bill and returns
	// the affected SIDs. The rows survive (unlink, not delete).
	UnlinkAllFromBill(bid string) ([]string, error)
	Delete(id string) error
}
