package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveSaleRequest is one sale line form submission. SumPrice is never taken
// from the client, it is recomputed server side.
type SaveSaleRequest struct {
	SID               string          `json:"sid"`
	PID               string          `json:"pid" validate:"required"`
	Dimention         string          `json:"dimention"`
	ItemColor         string          `json:"item_color"`
	BulbColor         string          `json:"bulb_color"`
	Remote            string          `json:"remote"`
	Remark            string          `json:"remark"`
	Action            string          `json:"action"`
	Price             decimal.Decimal `json:"price"`
	Qty               int64           `json:"qty" validate:"min=1"`
	Discount          decimal.Decimal `json:"discount"`
	ShipPrice         decimal.Decimal `json:"ship_price"`
	InstallationPrice decimal.Decimal `json:"installation_price"`
	Pay1Date          string          `json:"pay1_date"`
	Pay1Price         decimal.Decimal `json:"pay1_price"`
	Pay1Ch            string          `json:"pay1_ch"`
	TAX1ShipDate      string          `json:"tax1_ship_date"`
	Pay2Date          string          `json:"pay2_date"`
	Pay2Price         decimal.Decimal `json:"pay2_price"`
	Pay2Ch            string          `json:"pay2_ch"`
	TAX2ShipDate      string          `json:"tax2_ship_date"`
	CommissionID      string          `json:"commission_id"`
	Profit            decimal.Decimal `json:"profit"`
	Baseline          *time.Time      `json:"baseline,omitempty"`
}

// SaleResponse is one sale line.
type SaleResponse struct {
	SID               string          `json:"sid"`
	Timestamp         time.Time       `json:"timestamp"`
	RecBy             string          `json:"rec_by"`
	BID               *string         `json:"bid"`
	PID               string          `json:"pid"`
	Dimention         string          `json:"dimention"`
	ItemColor         string          `json:"item_color"`
	BulbColor         string          `json:"bulb_color"`
	Remote            string          `json:"remote"`
	Remark            string          `json:"remark"`
	Action            string          `json:"action"`
	Price             decimal.Decimal `json:"price"`
	Qty               int64           `json:"qty"`
	Discount          decimal.Decimal `json:"discount"`
	ShipPrice         decimal.Decimal `json:"ship_price"`
	InstallationPrice decimal.Decimal `json:"installation_price"`
	SumPrice          decimal.Decimal `json:"sum_price"`
	Pay1Date          string          `json:"pay1_date"`
	Pay1Price         decimal.Decimal `json:"pay1_price"`
	Pay1Ch            string          `json:"pay1_ch"`
	TAX1ShipDate      string          `json:"tax1_ship_date"`
	Pay2Date          string          `json:"pay2_date"`
	Pay2Price         decimal.Decimal `json:"pay2_price"`
	Pay2Ch            string          `json:"pay2_ch"`
	TAX2ShipDate      string          `json:"tax2_ship_date"`
	CommissionID      string          `json:"commission_id"`
	Profit            decimal.Decimal `json:"profit"`
}
