package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

var _ repository.InstallationRepository = (*InstallationRepo)(nil)

// InstallationRepo implements InstallationRepository over Installation_Ship.
type InstallationRepo struct {
	q Querier
}

// NewInstallationRepository builds the adapter.
func NewInstallationRepository(q Querier) *InstallationRepo {
	return &InstallationRepo{q: q}
}

const installationSelect = `
	SELECT "IID", "Timestamp", COALESCE("RecBy",''), COALESCE("SID",''),
	       COALESCE("InstallationTeam",''), COALESCE("Status",''),
	       COALESCE("PlanDate",''), COALESCE("CompleteDate",''),
	       COALESCE("ShipTravelPrice",0), COALESCE("InstallationPrice",0),
	       COALESCE("Remark",''), COALESCE("QCDefect",'')
	FROM "Installation_Ship"`

func scanInstallation(row pgx.Row) (*entity.Installation, error) {
	var i entity.Installation
	err := row.Scan(&i.IID, &i.Timestamp, &i.RecBy, &i.SID,
		&i.InstallationTeam, &i.Status, &i.PlanDate, &i.CompleteDate,
		&i.ShipTravelPrice, &i.InstallationPrice, &i.Remark, &i.QCDefect)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns installation jobs ordered by key, optionally filtered by
// substring on key, sale or team.
func (r *InstallationRepo) List(q string) ([]*entity.Installation, error) {
	query := installationSelect + ` ORDER BY "IID"`
	var args []any
	if q != "" {
		query = installationSelect + `
			WHERE "IID" ILIKE $1 OR "SID" ILIKE $1 OR "InstallationTeam" ILIKE $1 OR "Status" ILIKE $1
			ORDER BY "IID"`
		args = append(args, like(q))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list installations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Installation
	for rows.Next() {
		i, err := scanInstallation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan installation: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// GetByID fetches one job, nil when absent.
func (r *InstallationRepo) GetByID(id string) (*entity.Installation, error) {
	i, err := scanInstallation(r.q.QueryRow(context.Background(), installationSelect+` WHERE "IID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get installation: %w", err)
	}
	return i, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *InstallationRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "Installation_Ship" WHERE "IID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get installation timestamp: %w", err)
	}
	return ts, nil
}

// MaxID returns the highest IID, "" when the table is empty.
func (r *InstallationRepo) MaxID() (string, error) {
	var iid string
	err := r.q.QueryRow(context.Background(),
		`SELECT "IID" FROM "Installation_Ship" ORDER BY "IID" DESC LIMIT 1`).Scan(&iid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("max installation id: %w", err)
	}
	return iid, nil
}

// Save inserts (nil baseline) or conditionally updates.
func (r *InstallationRepo) Save(i *entity.Installation, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "Installation_Ship" ("IID", "Timestamp", "RecBy", "SID",
				"InstallationTeam", "Status", "PlanDate", "CompleteDate",
				"ShipTravelPrice", "InstallationPrice", "Remark", "QCDefect")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
		_, err := r.q.Exec(context.Background(), query,
			i.IID, i.Timestamp, i.RecBy, i.SID,
			i.InstallationTeam, i.Status, nullIfEmpty(i.PlanDate), nullIfEmpty(i.CompleteDate),
			i.ShipTravelPrice, i.InstallationPrice, nullIfEmpty(i.Remark), nullIfEmpty(i.QCDefect))
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert installation: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "Installation_Ship" SET "Timestamp" = $2, "RecBy" = $3, "SID" = $4,
			"InstallationTeam" = $5, "Status" = $6, "PlanDate" = $7, "CompleteDate" = $8,
			"ShipTravelPrice" = $9, "InstallationPrice" = $10, "Remark" = $11, "QCDefect" = $12
		WHERE "IID" = $1 AND "Timestamp" <= $13`
	tag, err := r.q.Exec(context.Background(), query,
		i.IID, i.Timestamp, i.RecBy, i.SID,
		i.InstallationTeam, i.Status, nullIfEmpty(i.PlanDate), nullIfEmpty(i.CompleteDate),
		i.ShipTravelPrice, i.InstallationPrice, nullIfEmpty(i.Remark), nullIfEmpty(i.QCDefect),
		staleCutoff(*baseline))
	if err != nil {
		return fmt.Errorf("update installation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(i.IID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the job row.
func (r *InstallationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "Installation_Ship" WHERE "IID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete installation: %w", err)
	}
	return nil
}
