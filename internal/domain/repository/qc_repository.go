package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// QCRepository is the persistence port for QC inspection records (SN keyed).
type QCRepository interface {
	List(q string) ([]*entity.QC, error)
	GetBySN(sn string) (*entity.QC, error)
	GetTimestamp(sn string) (time.Time, error)
	Save(r *entity.QC, baseline *time.Time) error
	Delete(sn string) error
}
