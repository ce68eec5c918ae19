package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// TeamFilter narrows List results.
type TeamFilter struct {
	Q      string // substring match on EID / names / team
	Status string // "", "active" or "resigned"
}

// TeamRepository is the persistence port for staff records.
type TeamRepository interface {
	List(f TeamFilter) ([]*entity.Team, error)
	GetByID(id string) (*entity.Team, error)
	GetTimestamp(id string) (time.Time, error)
	// MaxEID returns the highest existing employee key ("" when none),
	// the seed for the next EID%04d key.
	MaxEID() (string, error)
	Save(t *entity.Team, baseline *time.Time) error
	Delete(id string) error
}
