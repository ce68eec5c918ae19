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

var _ repository.TaxProfileRepository = (*TaxProfileRepo)(nil)

// TaxProfileRepo implements TaxProfileRepository over the CTax table.
type TaxProfileRepo struct {
	q Querier
}

// NewTaxProfileRepository builds the adapter.
func NewTaxProfileRepository(q Querier) *TaxProfileRepo {
	return &TaxProfileRepo{q: q}
}

const ctaxSelect = `
	SELECT "CTaxID", "CID", "Timestamp", COALESCE("RecBy",''),
	       COALESCE("TaxName",''), COALESCE("TaxNumber",''), COALESCE("TaxTel",''),
	       COALESCE("TaxAddress",''), COALESCE("TaxShip",'')
	FROM "CTax"`

func scanTaxProfile(row pgx.Row) (*entity.TaxProfile, error) {
	var p entity.TaxProfile
	err := row.Scan(&p.CTaxID, &p.CID, &p.Timestamp, &p.RecBy,
		&p.TaxName, &p.TaxNumber, &p.TaxTel, &p.TaxAddress, &p.TaxShip)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCustomer returns the customer's tax profiles.
func (r *TaxProfileRepo) ListByCustomer(cid string) ([]*entity.TaxProfile, error) {
	rows, err := r.q.Query(context.Background(),
		ctaxSelect+` WHERE "CID" = $1 ORDER BY "Timestamp" DESC`, cid)
	if err != nil {
		return nil, fmt.Errorf("list tax profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.TaxProfile
	for rows.Next() {
		p, err := scanTaxProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tax profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID fetches one tax profile, nil when absent.
func (r *TaxProfileRepo) GetByID(id string) (*entity.TaxProfile, error) {
	p, err := scanTaxProfile(r.q.QueryRow(context.Background(), ctaxSelect+` WHERE "CTaxID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax profile: %w", err)
	}
	return p, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *TaxProfileRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "CTax" WHERE "CTaxID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get tax profile timestamp: %w", err)
	}
	return ts, nil
}

// Save inserts (nil baseline) or conditionally updates.
func (r *TaxProfileRepo) Save(p *entity.TaxProfile, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "CTax" ("CTaxID", "CID", "Timestamp", "RecBy", "TaxName", "TaxNumber", "TaxTel", "TaxAddress", "TaxShip")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := r.q.Exec(context.Background(), query,
			p.CTaxID, p.CID, p.Timestamp, p.RecBy,
			p.TaxName, p.TaxNumber, nullIfEmpty(p.TaxTel), p.TaxAddress, nullIfEmpty(p.TaxShip))
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert tax profile: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "CTax" SET "CID" = $2, "Timestamp" = $3, "RecBy" = $4,
			"TaxName" = $5, "TaxNumber" = $6, "TaxTel" = $7, "TaxAddress" = $8, "TaxShip" = $9
		WHERE "CTaxID" = $1 AND "Timestamp" <= $10`
	tag, err := r.q.Exec(context.Background(), query,
		p.CTaxID, p.CID, p.Timestamp, p.RecBy,
		p.TaxName, p.TaxNumber, nullIfEmpty(p.TaxTel), p.TaxAddress, nullIfEmpty(p.TaxShip),
		staleCutoff(*baseline))
	if err != nil {
		return fmt.Errorf("update tax profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(p.CTaxID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the tax profile row.
func (r *TaxProfileRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "CTax" WHERE "CTaxID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tax profile: %w", err)
	}
	return nil
}
