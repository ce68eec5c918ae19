package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/id"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/logger"
)

// Service coordinates bill headers and their sale line items. Commit and
// Cancel run through the transaction runner so the bill and its sales change
// together.
type Service struct {
	tx    TxRunner
	bills repository.BillRepository
	sales repository.SaleRepository
	hub   *events.Hub
	log   *logger.Logger
}

// NewService wires the billing service.
func NewService(tx TxRunner, bills repository.BillRepository, sales repository.SaleRepository, hub *events.Hub, log *logger.Logger) *Service {
	return &Service{tx: tx, bills: bills, sales: sales, hub: hub, log: log}
}

// Detail is a bill header together with its linked sales and derived totals.
type Detail struct {
	Bill   *entity.Bill
	Sales  []*entity.Sale
	Totals entity.BillTotals
}

// List returns bill headers matching the query.
func (s *Service) List(q string) ([]*entity.Bill, error) {
	return s.bills.List(q)
}

// Get loads one bill with its linked sales and recomputed totals.
func (s *Service) Get(bid string) (*Detail, error) {
	b, err := s.bills.GetByID(bid)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	linked, err := s.sales.ListByBill(bid)
	if err != nil {
		return nil, err
	}
	return &Detail{Bill: b, Sales: linked, Totals: b.ComputeTotals(linked)}, nil
}

// CommitInput carries one bill save: the header, the working set of sale
// lines, the sale keys linked when the form opened, and the header's
// baseline timestamp (nil for a new bill).
type CommitInput struct {
	Bill       *entity.Bill
	WorkingSet []*entity.Sale
	PrevLinked []string
	Baseline   *time.Time
	Actor      string
}

// Commit saves the bill and reconciles its sale rows in one transaction:
// the header is upserted, every working-set sale gets this bill's key, and
// sales dropped from the working set are deleted outright. The working set
// is capped before any write happens.
func (s *Service) Commit(ctx context.Context, in CommitInput) (*Detail, error) {
	b := in.Bill
	if b.CID == "" {
		return nil, fmt.Errorf("%w: bill customer is required", domain.ErrInvalidInput)
	}
	if len(in.WorkingSet) == 0 {
		return nil, fmt.Errorf("%w: bill needs at least one sale line", domain.ErrInvalidInput)
	}
	if len(in.WorkingSet) > entity.MaxBillLines {
		return nil, domain.ErrBillFull
	}

	now := time.Now()
	isNew := b.BID == ""
	if isNew {
		b.BID = id.Bill(now)
		in.Baseline = nil
	}
	b.Timestamp = now
	b.RecBy = in.Actor

	inSet := make(map[string]bool, len(in.WorkingSet))
	for i, sale := range in.WorkingSet {
		if sale.SID == "" {
			// New lines created inside the bill form get keys here. The
			// second offset keeps keys distinct within one commit.
			sale.SID = id.Sale(now.Add(time.Duration(i) * time.Second))
		} else if prev, err := s.sales.GetByID(sale.SID); err == nil && prev != nil &&
			prev.Billed() && *prev.BID != b.BID {
			// The form does not send the stored bill link, so the stored row
			// decides. Last editor wins when a sale already belongs to
			// another bill.
			s.log.Warn().Str("sid", sale.SID).Str("from", *prev.BID).Str("to", b.BID).
				Msg("re-parenting sale to another bill")
		}
		bid := b.BID
		sale.BID = &bid
		sale.Timestamp = now
		sale.RecBy = in.Actor
		sale.RecomputeSumPrice()
		inSet[sale.SID] = true
	}

	// Lines removed from the bill are deleted, not unlinked: removal means
	// the line item never happened.
	var dropped []string
	for _, sid := range in.PrevLinked {
		if !inSet[sid] {
			dropped = append(dropped, sid)
		}
	}

	err := s.tx.RunBilling(ctx, func(billRepo repository.BillRepository, saleRepo repository.SaleRepository) error {
		if err := billRepo.Save(b, in.Baseline); err != nil {
			return err
		}
		for _, sale := range in.WorkingSet {
			if err := saleRepo.Upsert(sale); err != nil {
				return err
			}
		}
		for _, sid := range dropped {
			if err := saleRepo.Delete(sid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "update"
	if isNew {
		action = "insert"
	}
	s.hub.Publish(events.Event{Table: "Bill", Action: action, ID: b.BID})
	for _, sale := range in.WorkingSet {
		s.hub.Publish(events.Event{Table: "Sale", Action: "update", ID: sale.SID})
	}
	for _, sid := range dropped {
		s.hub.Publish(events.Event{Table: "Sale", Action: "delete", ID: sid})
	}
	s.log.Info().Str("bid", b.BID).Int("lines", len(in.WorkingSet)).Str("actor", in.Actor).Msg("bill committed")

	return &Detail{Bill: b, Sales: in.WorkingSet, Totals: b.ComputeTotals(in.WorkingSet)}, nil
}

// Cancel unlinks every sale from the bill and deletes the bill header, in
// one transaction. The sales facts survive and become billable again.
func (s *Service) Cancel(ctx context.Context, bid string, actor string) error {
	existing, err := s.bills.GetByID(bid)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	var unlinked []string
	err = s.tx.RunBilling(ctx, func(billRepo repository.BillRepository, saleRepo repository.SaleRepository) error {
		unlinked, err = saleRepo.UnlinkAllFromBill(bid)
		if err != nil {
			return err
		}
		return billRepo.Delete(bid)
	})
	if err != nil {
		return err
	}

	s.hub.Publish(events.Event{Table: "Bill", Action: "delete", ID: bid})
	for _, sid := range unlinked {
		s.hub.Publish(events.Event{Table: "Sale", Action: "update", ID: sid})
	}
	s.log.Info().Str("bid", bid).Int("unlinked", len(unlinked)).Str("actor", actor).Msg("bill canceled")
	return nil
}
