package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveInstallationRequest is one installation-job form submission.
type SaveInstallationRequest struct {
	IID               string          `json:"iid"`
	SID               string          `json:"sid" validate:"required"`
	InstallationTeam  string          `json:"installation_team"`
	Status            string          `json:"status" validate:"required"`
	PlanDate          string          `json:"plan_date"`
	CompleteDate      string          `json:"complete_date"`
	ShipTravelPrice   decimal.Decimal `json:"ship_travel_price"`
	InstallationPrice decimal.Decimal `json:"installation_price"`
	Remark            string          `json:"remark"`
	QCDefect          string          `json:"qc_defect"`
	Baseline          *time.Time      `json:"baseline,omitempty"`
}

// InstallationResponse is one installation job.
type InstallationResponse struct {
	IID               string          `json:"iid"`
	Timestamp         time.Time       `json:"timestamp"`
	RecBy             string          `json:"rec_by"`
	SID               string          `json:"sid"`
	InstallationTeam  string          `json:"installation_team"`
	Status            string          `json:"status"`
	PlanDate          string          `json:"plan_date"`
	CompleteDate      string          `json:"complete_date"`
	ShipTravelPrice   decimal.Decimal `json:"ship_travel_price"`
	InstallationPrice decimal.Decimal `json:"installation_price"`
	Remark            string          `json:"remark"`
	QCDefect          string          `json:"qc_defect"`
}
