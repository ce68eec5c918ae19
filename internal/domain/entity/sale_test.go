package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name                                        string
		price, discount, ship, installation         decimal.Decimal
		qty                                         int64
		want                                        decimal.Decimal
	}{
		{"plain", d(1000), d(0), d(0), d(0), 2, d(2000)},
		{"discounted", d(1000), d(300), d(0), d(0), 1, d(700)},
		{"all surcharges", d(500), d(50), d(120), d(400), 3, d(1970)},
		{"discount exceeds price", d(100), d(500), d(0), d(0), 1, d(-400)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Sale{
				Price:             tc.price,
				Qty:               tc.qty,
				Discount:          tc.discount,
				ShipPrice:         tc.ship,
				InstallationPrice: tc.installation,
			}
			assert.True(t, s.LineTotal().Equal(tc.want),
				"got %s want %s", s.LineTotal(), tc.want)
		})
	}
}

// The materialized total depends only on the current input values, not on
// the order they were edited in.
func TestRecomputeSumPriceOrderIndependent(t *testing.T) {
	a := Sale{}
	a.Price = d(250)
	a.RecomputeSumPrice()
	a.Qty = 4
	a.RecomputeSumPrice()
	a.Discount = d(100)
	a.RecomputeSumPrice()

	b := Sale{}
	b.Discount = d(100)
	b.Qty = 4
	b.Price = d(250)
	b.RecomputeSumPrice()

	assert.True(t, a.SumPrice.Equal(b.SumPrice))
	assert.True(t, a.SumPrice.Equal(d(900)))
}

func TestBilled(t *testing.T) {
	var s Sale
	assert.False(t, s.Billed())

	empty := ""
	s.BID = &empty
	assert.False(t, s.Billed())

	bid := "BD251129143052"
	s.BID = &bid
	assert.True(t, s.Billed())
}
