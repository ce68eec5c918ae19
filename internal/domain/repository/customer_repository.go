package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// CustomerRepository is the persistence port for Customer.
//
// Save follows the optimistic save protocol shared by every entity: a nil
// baseline inserts a new row; a non-nil baseline performs a conditional
// update that fails with domain.ErrConflict when the stored Timestamp has
// advanced more than the allowed slack past the baseline.
type CustomerRepository interface {
	List(q string) ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	GetTimestamp(id string) (time.Time, error)
	Save(c *entity.Customer, baseline *time.Time) error
	Delete(id string) error
}
