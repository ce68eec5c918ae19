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

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implements TeamRepository over the Team table.
type TeamRepo struct {
	q Querier
}

// NewTeamRepository builds the adapter.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

const teamSelect = `
	SELECT "EID", "Timestamp", COALESCE("RecBy",''), COALESCE("DelDate",''),
	       COALESCE("TeamName",''), COALESCE("TeamType",''), COALESCE("UserType",''),
	       COALESCE("Email",''), COALESCE("NickName",''), COALESCE("FullName",''), COALESCE("LastName",''),
	       COALESCE("CitizenID",''), COALESCE("Bank",''), COALESCE("ACNumber",''),
	       COALESCE("BirthDay",''), COALESCE("StartDate",''), COALESCE("Address",''),
	       COALESCE("Tel1",''), COALESCE("Tel2",''), COALESCE("Job",''), COALESCE("Level",''),
	       COALESCE("WorkType",''), COALESCE("PayType",''), COALESCE("PayRate",''), COALESCE("IncentiveRate",''),
	       COALESCE("Pic",''), COALESCE("CitizenIDPic",''), COALESCE("HouseRegPic",''), COALESCE("EndDate",'')
	FROM "Team"`

func scanTeam(row pgx.Row) (*entity.Team, error) {
	var t entity.Team
	err := row.Scan(
		&t.EID, &t.Timestamp, &t.RecBy, &t.DelDate,
		&t.TeamName, &t.TeamType, &t.UserType,
		&t.Email, &t.NickName, &t.FullName, &t.LastName,
		&t.CitizenID, &t.Bank, &t.ACNumber,
		&t.BirthDay, &t.StartDate, &t.Address,
		&t.Tel1, &t.Tel2, &t.Job, &t.Level,
		&t.WorkType, &t.PayType, &t.PayRate, &t.IncentiveRate,
		&t.Pic, &t.CitizenIDPic, &t.HouseRegPic, &t.EndDate,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns staff ordered by key. Status "active" keeps rows without an
// EndDate, "resigned" the rest.
func (r *TeamRepo) List(f repository.TeamFilter) ([]*entity.Team, error) {
	var conds []string
	var args []any
	if f.Q != "" {
		args = append(args, like(f.Q))
		conds = append(conds, `("EID" ILIKE $1 OR "NickName" ILIKE $1 OR "FullName" ILIKE $1 OR "TeamName" ILIKE $1)`)
	}
	switch f.Status {
	case "active":
		conds = append(conds, `COALESCE("EndDate",'') = ''`)
	case "resigned":
		conds = append(conds, `COALESCE("EndDate",'') <> ''`)
	}
	query := teamSelect
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY "EID"`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()
	var list []*entity.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetByID fetches one staff record, nil when absent.
func (r *TeamRepo) GetByID(id string) (*entity.Team, error) {
	t, err := scanTeam(r.q.QueryRow(context.Background(), teamSelect+` WHERE "EID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *TeamRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "Team" WHERE "EID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get team timestamp: %w", err)
	}
	return ts, nil
}

// MaxEID returns the highest EID, "" when the table is empty.
func (r *TeamRepo) MaxEID() (string, error) {
	var eid string
	err := r.q.QueryRow(context.Background(),
		`SELECT "EID" FROM "Team" ORDER BY "EID" DESC LIMIT 1`).Scan(&eid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("max team eid: %w", err)
	}
	return eid, nil
}

func teamArgs(t *entity.Team) []any {
	return []any{
		t.EID, t.Timestamp, t.RecBy, nullIfEmpty(t.DelDate),
		t.TeamName, t.TeamType, t.UserType,
		nullIfEmpty(t.Email), t.NickName, t.FullName, nullIfEmpty(t.LastName),
		nullIfEmpty(t.CitizenID), nullIfEmpty(t.Bank), nullIfEmpty(t.ACNumber),
		nullIfEmpty(t.BirthDay), nullIfEmpty(t.StartDate), nullIfEmpty(t.Address),
		nullIfEmpty(t.Tel1), nullIfEmpty(t.Tel2), nullIfEmpty(t.Job), nullIfEmpty(t.Level),
		nullIfEmpty(t.WorkType), nullIfEmpty(t.PayType), nullIfEmpty(t.PayRate), nullIfEmpty(t.IncentiveRate),
		nullIfEmpty(t.Pic), nullIfEmpty(t.CitizenIDPic), nullIfEmpty(t.HouseRegPic), nullIfEmpty(t.EndDate),
	}
}

// Save inserts (nil baseline) or conditionally updates.
func (r *TeamRepo) Save(t *entity.Team, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "Team" ("EID", "Timestamp", "RecBy", "DelDate",
				"TeamName", "TeamType", "UserType",
				"Email", "NickName", "FullName", "LastName",
				"CitizenID", "Bank", "ACNumber",
				"BirthDay", "StartDate", "Address",
				"Tel1", "Tel2", "Job", "Level",
				"WorkType", "PayType", "PayRate", "IncentiveRate",
				"Pic", "CitizenIDPic", "HouseRegPic", "EndDate")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
				$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)`
		_, err := r.q.Exec(context.Background(), query, teamArgs(t)...)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert team: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "Team" SET "Timestamp" = $2, "RecBy" = $3, "DelDate" = $4,
			"TeamName" = $5, "TeamType" = $6, "UserType" = $7,
			"Email" = $8, "NickName" = $9, "FullName" = $10, "LastName" = $11,
			"CitizenID" = $12, "Bank" = $13, "ACNumber" = $14,
			"BirthDay" = $15, "StartDate" = $16, "Address" = $17,
			"Tel1" = $18, "Tel2" = $19, "Job" = $20, "Level" = $21,
			"WorkType" = $22, "PayType" = $23, "PayRate" = $24, "IncentiveRate" = $25,
			"Pic" = $26, "CitizenIDPic" = $27, "HouseRegPic" = $28, "EndDate" = $29
		WHERE "EID" = $1 AND "Timestamp" <= $30`
	tag, err := r.q.Exec(context.Background(), query, append(teamArgs(t), staleCutoff(*baseline))...)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(t.EID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the staff record.
func (r *TeamRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "Team" WHERE "EID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
