package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// BillRepository is the persistence port for Bill headers. Commit and cancel
// span Bill and Sale rows and live in the billing use case on top of the
// transaction runner, not here.
type BillRepository interface {
	List(q string) ([]*entity.Bill, error)
	GetByID(id string) (*entity.Bill, error)
	GetTimestamp(id string) (time.Time, error)
	Save(b *entity.Bill, baseline *time.Time) error
	Delete(id string) error
}
