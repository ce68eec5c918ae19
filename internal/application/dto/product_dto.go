package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest is one catalog-item form submission.
type SaveProductRequest struct {
	PID       string          `json:"pid"`
	PIDSub    string          `json:"pid_sub"`
	PDType    string          `json:"pd_type" validate:"required"`
	PDName    string          `json:"pd_name" validate:"required"`
	PDDetrail string          `json:"pd_detrail"`
	PDPrice   decimal.Decimal `json:"pd_price"`
	Pics      []string        `json:"pics"`
	Baseline  *time.Time      `json:"baseline,omitempty"`
}

// ProductResponse is one catalog item.
type ProductResponse struct {
	PID       string          `json:"pid"`
	Timestamp time.Time       `json:"timestamp"`
	RecBy     string          `json:"rec_by"`
	PIDSub    string          `json:"pid_sub"`
	PDType    string          `json:"pd_type"`
	PDName    string          `json:"pd_name"`
	PDDetrail string          `json:"pd_detrail"`
	PDPrice   decimal.Decimal `json:"pd_price"`
	Pics      []string        `json:"pics"`
}
