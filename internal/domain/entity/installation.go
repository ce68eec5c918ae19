package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installation job statuses.
const (
	InstallationPending    = "Pending"
	InstallationInProgress = "In Progress"
	InstallationCompleted  = "Completed"
	InstallationCanceled   = "Canceled"
)

// ValidInstallationStatus reports whether s is one of the four job statuses.
func ValidInstallationStatus(s string) bool {
	switch s {
	case InstallationPending, InstallationInProgress, InstallationCompleted, InstallationCanceled:
		return true
	}
	return false
}

// Installation is a scheduled physical-installation job for one sale.
// Stored in the Installation_Ship table.
type Installation struct {
	IID               string
	Timestamp         time.Time
	RecBy             string
	SID               string
	InstallationTeam  string
	Status            string
	PlanDate          string
	CompleteDate      string
	ShipTravelPrice   decimal.Decimal
	InstallationPrice decimal.Decimal
	Remark            string
	QCDefect          string
}
