package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxProductImages is the number of image slots on a catalog item.
const MaxProductImages = 10

// Product is a catalog item.
type Product struct {
	PID       string
	Timestamp time.Time
	RecBy     string
	DelDate   string
	PIDSub    string
	PDType    string
	PDName    string
	PDDetrail string // hosted schema spells the column this way
	PDPrice   decimal.Decimal
	Pics      [MaxProductImages]string
}
