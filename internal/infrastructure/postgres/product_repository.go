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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT "PID", "Timestamp", COALESCE("RecBy",''), COALESCE("DelDate",''),
	       COALESCE("PIDSub",''), COALESCE("PDType",''), COALESCE("PDName",''), COALESCE("PDDetrail",''),
	       COALESCE("PDPrice",0),
	       COALESCE("PDPic1",''), COALESCE("PDPic2",''), COALESCE("PDPic3",''), COALESCE("PDPic4",''), COALESCE("PDPic5",''),
	       COALESCE("PDPic6",''), COALESCE("PDPic7",''), COALESCE("PDPic8",''), COALESCE("PDPic9",''), COALESCE("PDPic10",'')
	FROM "Product"`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.PID, &p.Timestamp, &p.RecBy, &p.DelDate,
		&p.PIDSub, &p.PDType, &p.PDName, &p.PDDetrail, &p.PDPrice,
		&p.Pics[0], &p.Pics[1], &p.Pics[2], &p.Pics[3], &p.Pics[4],
		&p.Pics[5], &p.Pics[6], &p.Pics[7], &p.Pics[8], &p.Pics[9],
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns catalog items newest first, optionally filtered by substring
// on key, name or type.
func (r *ProductRepo) List(q string) ([]*entity.Product, error) {
	query := productSelect + ` ORDER BY "Timestamp" DESC`
	var args []any
	if q != "" {
		query = productSelect + `
			WHERE "PID" ILIKE $1 OR "PDName" ILIKE $1 OR "PDType" ILIKE $1
			ORDER BY "Timestamp" DESC`
		args = append(args, like(q))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID fetches one catalog item, nil when absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), productSelect+` WHERE "PID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *ProductRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "Product" WHERE "PID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get product timestamp: %w", err)
	}
	return ts, nil
}

// Save inserts (nil baseline) or conditionally updates.
func (r *ProductRepo) Save(p *entity.Product, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "Product" ("PID", "Timestamp", "RecBy", "DelDate",
				"PIDSub", "PDType", "PDName", "PDDetrail", "PDPrice",
				"PDPic1", "PDPic2", "PDPic3", "PDPic4", "PDPic5",
				"PDPic6", "PDPic7", "PDPic8", "PDPic9", "PDPic10")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
		_, err := r.q.Exec(context.Background(), query,
			p.PID, p.Timestamp, p.RecBy, nullIfEmpty(p.DelDate),
			p.PIDSub, p.PDType, p.PDName, p.PDDetrail, p.PDPrice,
			nullIfEmpty(p.Pics[0]), nullIfEmpty(p.Pics[1]), nullIfEmpty(p.Pics[2]), nullIfEmpty(p.Pics[3]), nullIfEmpty(p.Pics[4]),
			nullIfEmpty(p.Pics[5]), nullIfEmpty(p.Pics[6]), nullIfEmpty(p.Pics[7]), nullIfEmpty(p.Pics[8]), nullIfEmpty(p.Pics[9]),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "Product" SET "Timestamp" = $2, "RecBy" = $3, "DelDate" = $4,
			"PIDSub" = $5, "PDType" = $6, "PDName" = $7, "PDDetrail" = $8, "PDPrice" = $9,
			"PDPic1" = $10, "PDPic2" = $11, "PDPic3" = $12, "PDPic4" = $13, "PDPic5" = $14,
			"PDPic6" = $15, "PDPic7" = $16, "PDPic8" = $17, "PDPic9" = $18, "PDPic10" = $19
		WHERE "PID" = $1 AND "Timestamp" <= $20`
	tag, err := r.q.Exec(context.Background(), query,
		p.PID, p.Timestamp, p.RecBy, nullIfEmpty(p.DelDate),
		p.PIDSub, p.PDType, p.PDName, p.PDDetrail, p.PDPrice,
		nullIfEmpty(p.Pics[0]), nullIfEmpty(p.Pics[1]), nullIfEmpty(p.Pics[2]), nullIfEmpty(p.Pics[3]), nullIfEmpty(p.Pics[4]),
		nullIfEmpty(p.Pics[5]), nullIfEmpty(p.Pics[6]), nullIfEmpty(p.Pics[7]), nullIfEmpty(p.Pics[8]), nullIfEmpty(p.Pics[9]),
		staleCutoff(*baseline),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(p.PID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the catalog item.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "Product" WHERE "PID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
