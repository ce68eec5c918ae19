package billing

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/logger"
)

type fakeStore struct {
	bills map[string]*entity.Bill
	sales map[string]*entity.Sale
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bills: make(map[string]*entity.Bill),
		sales: make(map[string]*entity.Sale),
	}
}

type fakeBillRepo struct{ st *fakeStore }

func (r *fakeBillRepo) List(q string) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range r.st.bills {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBillRepo) GetByID(id string) (*entity.Bill, error) {
	return r.st.bills[id], nil
}

func (r *fakeBillRepo) GetTimestamp(id string) (time.Time, error) {
	b, ok := r.st.bills[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	return b.Timestamp, nil
}

func (r *fakeBillRepo) Save(b *entity.Bill, baseline *time.Time) error {
	if existing, ok := r.st.bills[b.BID]; ok && baseline != nil {
		if existing.Timestamp.After(baseline.Add(time.Second)) {
			return domain.ErrConflict
		}
	}
	cp := *b
	r.st.bills[b.BID] = &cp
	return nil
}

func (r *fakeBillRepo) Delete(id string) error {
	delete(r.st.bills, id)
	return nil
}

type fakeSaleRepo struct{ st *fakeStore }

func (r *fakeSaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.st.sales {
		if f.UnbilledOnly && s.Billed() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByBill(bid string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.st.sales {
		if s.BID != nil && *s.BID == bid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.st.sales[id], nil
}

func (r *fakeSaleRepo) GetTimestamp(id string) (time.Time, error) {
	s, ok := r.st.sales[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	return s.Timestamp, nil
}

func (r *fakeSaleRepo) Save(s *entity.Sale, baseline *time.Time) error {
	return r.Upsert(s)
}

func (r *fakeSaleRepo) Upsert(s *entity.Sale) error {
	cp := *s
	r.st.sales[s.SID] = &cp
	return nil
}

func (r *fakeSaleRepo) UnlinkAllFromBill(bid string) ([]string, error) {
	var sids []string
	for _, s := range r.st.sales {
		if s.BID != nil && *s.BID == bid {
			s.BID = nil
			sids = append(sids, s.SID)
		}
	}
	return sids, nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.st.sales, id)
	return nil
}

type fakeTxRunner struct {
	st    *fakeStore
	calls int
}

func (f *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	billRepo repository.BillRepository,
	saleRepo repository.SaleRepository,
) error) error {
	f.calls++
	return fn(&fakeBillRepo{st: f.st}, &fakeSaleRepo{st: f.st})
}

func newTestService(st *fakeStore) (*Service, *fakeTxRunner) {
	tx := &fakeTxRunner{st: st}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewService(tx, &fakeBillRepo{st: st}, &fakeSaleRepo{st: st}, events.NewHub(), log), tx
}

func saleLine(sid string, price int64, qty int64) *entity.Sale {
	return &entity.Sale{
		SID:   sid,
		PID:   "PN251129120000",
		Price: decimal.NewFromInt(price),
		Qty:   qty,
	}
}

func TestCommitNewBill(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	detail, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C251129100000", Seller: "EID0001", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S251129120001", 1000, 2), saleLine("S251129120002", 500, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(detail.Bill.BID, "BD"), "new bill key gets the BD prefix")
	require.Len(t, st.bills, 1)
	require.Len(t, st.sales, 2)
	for _, s := range st.sales {
		require.NotNil(t, s.BID)
		assert.Equal(t, detail.Bill.BID, *s.BID)
		assert.Equal(t, "Admin", s.RecBy)
	}

	// subtotal 2500, vat 7% = 175, total 2675
	assert.True(t, detail.Totals.Subtotal.Equal(decimal.NewFromInt(2500)))
	assert.True(t, detail.Totals.VatAmount.Equal(decimal.NewFromInt(175)))
	assert.True(t, detail.Totals.Total.Equal(decimal.NewFromInt(2675)))
}

func TestCommitRecomputesSumPrice(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	line := saleLine("S251129120001", 1000, 3)
	line.Discount = decimal.NewFromInt(100)
	line.ShipPrice = decimal.NewFromInt(50)
	line.InstallationPrice = decimal.NewFromInt(200)
	line.SumPrice = decimal.NewFromInt(999999) // stale client value

	_, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{line},
		Actor:      "Admin",
	})
	require.NoError(t, err)

	stored := st.sales["S251129120001"]
	require.NotNil(t, stored)
	// 1000*3 - 100 + 50 + 200 = 3150
	assert.True(t, stored.SumPrice.Equal(decimal.NewFromInt(3150)))
}

func TestCommitDeletesDroppedLines(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	// Bill with three lines already persisted.
	first, err := svc.Commit(context.Background(), CommitInput{
		Bill: &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{
			saleLine("S1", 100, 1), saleLine("S2", 200, 1), saleLine("S3", 300, 1),
		},
		Actor: "Admin",
	})
	require.NoError(t, err)
	bid := first.Bill.BID

	// Edit drops S3 from the working set.
	baseline := st.bills[bid].Timestamp
	kept := []*entity.Sale{st.sales["S1"], st.sales["S2"]}
	_, err = svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{BID: bid, CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: kept,
		PrevLinked: []string{"S1", "S2", "S3"},
		Baseline:   &baseline,
		Actor:      "Admin",
	})
	require.NoError(t, err)

	assert.Nil(t, st.sales["S3"], "dropped line is deleted, not unlinked")
	require.NotNil(t, st.sales["S1"])
	require.NotNil(t, st.sales["S2"])
	assert.Equal(t, bid, *st.sales["S1"].BID)
	assert.Equal(t, bid, *st.sales["S2"].BID)
}

func TestCommitRejectsOverCapBeforeWriting(t *testing.T) {
	st := newFakeStore()
	svc, tx := newTestService(st)

	ws := make([]*entity.Sale, 0, entity.MaxBillLines+1)
	for i := 0; i <= entity.MaxBillLines; i++ {
		ws = append(ws, saleLine(fmt.Sprintf("S%02d", i), 100, 1))
	}

	_, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: ws,
		Actor:      "Admin",
	})
	require.ErrorIs(t, err, domain.ErrBillFull)
	assert.Zero(t, tx.calls, "no transaction starts when the cap is exceeded")
	assert.Empty(t, st.bills)
	assert.Empty(t, st.sales)
}

func TestCommitRequiresCustomerAndLines(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	_, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1)},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Commit(context.Background(), CommitInput{
		Bill: &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCommitAssignsKeysToNewLines(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	detail, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("", 100, 1), saleLine("", 200, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range detail.Sales {
		assert.True(t, strings.HasPrefix(s.SID, "S"))
		assert.False(t, seen[s.SID], "keys within one commit must be distinct")
		seen[s.SID] = true
	}
}

func TestCancelUnlinksSalesAndDeletesBill(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	detail, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1), saleLine("S2", 200, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)
	bid := detail.Bill.BID

	require.NoError(t, svc.Cancel(context.Background(), bid, "Admin"))

	assert.Nil(t, st.bills[bid], "bill header is gone")
	require.NotNil(t, st.sales["S1"], "sales facts survive")
	require.NotNil(t, st.sales["S2"])
	assert.Nil(t, st.sales["S1"].BID)
	assert.Nil(t, st.sales["S2"].BID)
}

func TestCancelMissingBill(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	err := svc.Cancel(context.Background(), "BD000000000000", "Admin")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommitWarnsWhenReparentingLinkedSale(t *testing.T) {
	st := newFakeStore()
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf, logger.Config{Level: "warn"})
	svc := NewService(&fakeTxRunner{st: st}, &fakeBillRepo{st: st}, &fakeSaleRepo{st: st}, events.NewHub(), log)

	otherBID := "BD250101000000"
	linked := saleLine("S1", 100, 1)
	linked.BID = &otherBID
	st.sales["S1"] = linked
	st.bills[otherBID] = &entity.Bill{BID: otherBID, CID: "C1"}

	// The bill form sends working-set lines without their stored bill link,
	// so detection must come from the stored row.
	detail, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C2", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)

	require.NotNil(t, st.sales["S1"].BID)
	assert.Equal(t, detail.Bill.BID, *st.sales["S1"].BID, "last editor wins")
	assert.Contains(t, buf.String(), "re-parenting sale to another bill")
	assert.Contains(t, buf.String(), otherBID)
}

func TestCommitDoesNotWarnForOwnLines(t *testing.T) {
	st := newFakeStore()
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf, logger.Config{Level: "warn"})
	svc := NewService(&fakeTxRunner{st: st}, &fakeBillRepo{st: st}, &fakeSaleRepo{st: st}, events.NewHub(), log)

	first, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)

	// Re-saving the same bill with its own line is not a re-parent.
	baseline := st.bills[first.Bill.BID].Timestamp
	_, err = svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{BID: first.Bill.BID, CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1)},
		PrevLinked: []string{"S1"},
		Baseline:   &baseline,
		Actor:      "Admin",
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "re-parenting")
}

func collectEvents(t *testing.T, ch <-chan events.Event, n int) []events.Event {
	t.Helper()
	out := make([]events.Event, 0, n)
	for len(out) < n {
		select {
		case e := <-ch:
			out = append(out, e)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func TestCommitPublishesPerSaleEvents(t *testing.T) {
	st := newFakeStore()
	hub := events.NewHub()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	svc := NewService(&fakeTxRunner{st: st}, &fakeBillRepo{st: st}, &fakeSaleRepo{st: st}, hub, log)

	first, err := svc.Commit(context.Background(), CommitInput{
		Bill: &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{
			saleLine("S1", 100, 1), saleLine("S2", 200, 1), saleLine("S3", 300, 1),
		},
		Actor: "Admin",
	})
	require.NoError(t, err)
	bid := first.Bill.BID

	ch, cancel := hub.Subscribe()
	defer cancel()

	// Second commit keeps S1 and S2, drops S3.
	baseline := st.bills[bid].Timestamp
	_, err = svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{BID: bid, CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{st.sales["S1"], st.sales["S2"]},
		PrevLinked: []string{"S1", "S2", "S3"},
		Baseline:   &baseline,
		Actor:      "Admin",
	})
	require.NoError(t, err)

	got := collectEvents(t, ch, 4)
	assert.Equal(t, events.Event{Table: "Bill", Action: "update", ID: bid}, got[0])
	assert.Equal(t, events.Event{Table: "Sale", Action: "update", ID: "S1"}, got[1])
	assert.Equal(t, events.Event{Table: "Sale", Action: "update", ID: "S2"}, got[2])
	assert.Equal(t, events.Event{Table: "Sale", Action: "delete", ID: "S3"}, got[3])
}

func TestCancelPublishesUnlinkedSaleEvents(t *testing.T) {
	st := newFakeStore()
	hub := events.NewHub()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	svc := NewService(&fakeTxRunner{st: st}, &fakeBillRepo{st: st}, &fakeSaleRepo{st: st}, hub, log)

	detail, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1), saleLine("S2", 200, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)
	bid := detail.Bill.BID

	ch, cancel := hub.Subscribe()
	defer cancel()
	require.NoError(t, svc.Cancel(context.Background(), bid, "Admin"))

	got := collectEvents(t, ch, 3)
	assert.Equal(t, events.Event{Table: "Bill", Action: "delete", ID: bid}, got[0])
	saleIDs := map[string]bool{}
	for _, e := range got[1:] {
		assert.Equal(t, "Sale", e.Table)
		assert.Equal(t, "update", e.Action)
		saleIDs[e.ID] = true
	}
	assert.Equal(t, map[string]bool{"S1": true, "S2": true}, saleIDs)
}

func TestCommitStaleBaselineConflicts(t *testing.T) {
	st := newFakeStore()
	svc, _ := newTestService(st)

	first, err := svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{saleLine("S1", 100, 1)},
		Actor:      "Admin",
	})
	require.NoError(t, err)
	bid := first.Bill.BID

	stale := st.bills[bid].Timestamp.Add(-5 * time.Second)
	_, err = svc.Commit(context.Background(), CommitInput{
		Bill:       &entity.Bill{BID: bid, CID: "C1", VatRate: decimal.NewFromInt(7)},
		WorkingSet: []*entity.Sale{st.sales["S1"]},
		PrevLinked: []string{"S1"},
		Baseline:   &stale,
		Actor:      "Admin",
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}
