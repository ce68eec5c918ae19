package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func billLine(sum int64) *Sale {
	s := &Sale{Price: decimal.NewFromInt(sum), Qty: 1}
	s.RecomputeSumPrice()
	return s
}

func TestComputeTotals(t *testing.T) {
	b := Bill{VatRate: decimal.NewFromInt(7)}
	ws := []*Sale{billLine(1000), billLine(2500), billLine(500)}

	totals := b.ComputeTotals(ws)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, totals.VatAmount.Equal(decimal.NewFromInt(280)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(4280)))
}

// Totals track the working set: removing a line must change subtotal, VAT
// and total consistently.
func TestComputeTotalsTracksWorkingSet(t *testing.T) {
	b := Bill{VatRate: decimal.NewFromInt(7)}
	ws := []*Sale{billLine(1000), billLine(2000)}

	before := b.ComputeTotals(ws)
	after := b.ComputeTotals(ws[:1])

	assert.True(t, before.Subtotal.Equal(decimal.NewFromInt(3000)))
	assert.True(t, after.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, after.Total.Equal(after.Subtotal.Add(after.VatAmount)))
}

func TestComputeTotalsEmptyWorkingSet(t *testing.T) {
	b := Bill{VatRate: decimal.NewFromInt(7)}
	totals := b.ComputeTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.VatAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotalsFractionalVat(t *testing.T) {
	b := Bill{VatRate: decimal.NewFromInt(7)}
	ws := []*Sale{billLine(999)}

	totals := b.ComputeTotals(ws)
	// 999 * 0.07 = 69.93
	assert.True(t, totals.VatAmount.Equal(decimal.RequireFromString("69.93")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("1068.93")))
}
