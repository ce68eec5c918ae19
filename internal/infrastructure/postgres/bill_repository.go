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

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implements BillRepository (usable with pool or tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository builds the adapter.
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

const billSelect = `
	SELECT "BID", "Timestamp", COALESCE("RecBy",''), COALESCE("DelDate",''), COALESCE("BillDate",''),
	       COALESCE("CID",''), COALESCE("Seller",''), COALESCE("Vat",0)
	FROM "Bill"`

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	err := row.Scan(&b.BID, &b.Timestamp, &b.RecBy, &b.DelDate, &b.BillDate,
		&b.CID, &b.Seller, &b.VatRate)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns bills ordered by key, optionally filtered by substring on
// key, customer or seller.
func (r *BillRepo) List(q string) ([]*entity.Bill, error) {
	query := billSelect + ` ORDER BY "BID"`
	var args []any
	if q != "" {
		query = billSelect + `
			WHERE "BID" ILIKE $1 OR "CID" ILIKE $1 OR "Seller" ILIKE $1
			ORDER BY "BID"`
		args = append(args, like(q))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetByID fetches one bill header, nil when absent.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	b, err := scanBill(r.q.QueryRow(context.Background(), billSelect+` WHERE "BID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *BillRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "Bill" WHERE "BID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get bill timestamp: %w", err)
	}
	return ts, nil
}

// Save inserts (nil baseline) or conditionally updates the bill header.
func (r *BillRepo) Save(b *entity.Bill, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "Bill" ("BID", "Timestamp", "RecBy", "DelDate", "BillDate", "CID", "Seller", "Vat")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.q.Exec(context.Background(), query,
			b.BID, b.Timestamp, b.RecBy, nullIfEmpty(b.DelDate), nullIfEmpty(b.BillDate),
			b.CID, b.Seller, b.VatRate)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert bill: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "Bill" SET "Timestamp" = $2, "RecBy" = $3, "DelDate" = $4, "BillDate" = $5,
			"CID" = $6, "Seller" = $7, "Vat" = $8
		WHERE "BID" = $1 AND "Timestamp" <= $9`
	tag, err := r.q.Exec(context.Background(), query,
		b.BID, b.Timestamp, b.RecBy, nullIfEmpty(b.DelDate), nullIfEmpty(b.BillDate),
		b.CID, b.Seller, b.VatRate, staleCutoff(*baseline))
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(b.BID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the bill header.
func (r *BillRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "Bill" WHERE "BID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}
