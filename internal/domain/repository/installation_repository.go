package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// InstallationRepository is the persistence port for Installation_Ship rows.
type InstallationRepository interface {
	List(q string) ([]*entity.Installation, error)
	GetByID(id string) (*entity.Installation, error)
	GetTimestamp(id string) (time.Time, error)
	// MaxID returns the highest existing IID ("" when the table is empty),
	// the seed for the next sequential key.
	MaxID() (string, error)
	Save(i *entity.Installation, baseline *time.Time) error
	Delete(id string) error
}
