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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements SaleRepository (usable with pool or tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// "BulbCollor" is spelled that way in the hosted schema.
const saleSelect = `
	SELECT "SID", "Timestamp", COALESCE("RecBy",''), COALESCE("DelDate",''), "BID", "PID",
	       COALESCE("Dimention",''), COALESCE("ItemColor",''), COALESCE("BulbCollor",''),
	       COALESCE("Remote",''), COALESCE("Remark",''), COALESCE("Action",''),
	       COALESCE("Price",0), COALESCE("Qty",0), COALESCE("Discount",0),
	       COALESCE("ShipPrice",0), COALESCE("InstallationPrice",0), COALESCE("SumPrice",0),
	       COALESCE("Pay1Date",''), COALESCE("Pay1Price",0), COALESCE("Pay1Ch",''), COALESCE("TAX1ShipDate",''),
	       COALESCE("Pay2Date",''), COALESCE("Pay2Price",0), COALESCE("Pay2Ch",''), COALESCE("TAX2ShipDate",''),
	       COALESCE("CommissionID",''), COALESCE("Profit",0)
	FROM "Sale"`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.SID, &s.Timestamp, &s.RecBy, &s.DelDate, &s.BID, &s.PID,
		&s.Dimention, &s.ItemColor, &s.BulbColor,
		&s.Remote, &s.Remark, &s.Action,
		&s.Price, &s.Qty, &s.Discount,
		&s.ShipPrice, &s.InstallationPrice, &s.SumPrice,
		&s.Pay1Date, &s.Pay1Price, &s.Pay1Ch, &s.TAX1ShipDate,
		&s.Pay2Date, &s.Pay2Price, &s.Pay2Ch, &s.TAX2ShipDate,
		&s.CommissionID, &s.Profit,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) queryList(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// List returns sales newest first. UnbilledOnly keeps only rows waiting for
// a bill.
func (r *SaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	where := ""
	var args []any
	if f.Q != "" {
		where = ` WHERE ("SID" ILIKE $1 OR "PID" ILIKE $1 OR "BID" ILIKE $1)`
		args = append(args, like(f.Q))
	}
	if f.UnbilledOnly {
		if where == "" {
			where = ` WHERE "BID" IS NULL`
		} else {
			where += ` AND "BID" IS NULL`
		}
	}
	return r.queryList(saleSelect+where+` ORDER BY "Timestamp" DESC`, args...)
}

// ListByBill returns the sale rows currently linked to the bill.
func (r *SaleRepo) ListByBill(bid string) ([]*entity.Sale, error) {
	return r.queryList(saleSelect+` WHERE "BID" = $1 ORDER BY "SID"`, bid)
}

// GetByID fetches one sale, nil when absent.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(context.Background(), saleSelect+` WHERE "SID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *SaleRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "Sale" WHERE "SID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get sale timestamp: %w", err)
	}
	return ts, nil
}

func saleArgs(s *entity.Sale) []any {
	return []any{
		s.SID, s.Timestamp, s.RecBy, nullIfEmpty(s.DelDate), s.BID, s.PID,
		nullIfEmpty(s.Dimention), nullIfEmpty(s.ItemColor), nullIfEmpty(s.BulbColor),
		nullIfEmpty(s.Remote), nullIfEmpty(s.Remark), s.Action,
		s.Price, s.Qty, s.Discount,
		s.ShipPrice, s.InstallationPrice, s.SumPrice,
		nullIfEmpty(s.Pay1Date), s.Pay1Price, nullIfEmpty(s.Pay1Ch), nullIfEmpty(s.TAX1ShipDate),
		nullIfEmpty(s.Pay2Date), s.Pay2Price, nullIfEmpty(s.Pay2Ch), nullIfEmpty(s.TAX2ShipDate),
		nullIfEmpty(s.CommissionID), s.Profit,
	}
}

const saleInsert = `
	INSERT INTO "Sale" ("SID", "Timestamp", "RecBy", "DelDate", "BID", "PID",
		"Dimention", "ItemColor", "BulbCollor", "Remote", "Remark", "Action",
		"Price", "Qty", "Discount", "ShipPrice", "InstallationPrice", "SumPrice",
		"Pay1Date", "Pay1Price", "Pay1Ch", "TAX1ShipDate",
		"Pay2Date", "Pay2Price", "Pay2Ch", "TAX2ShipDate", "CommissionID", "Profit")
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`

const saleUpdateSet = `
	SET "Timestamp" = $2, "RecBy" = $3, "DelDate" = $4, "BID" = $5, "PID" = $6,
		"Dimention" = $7, "ItemColor" = $8, "BulbCollor" = $9,
		"Remote" = $10, "Remark" = $11, "Action" = $12,
		"Price" = $13, "Qty" = $14, "Discount" = $15,
		"ShipPrice" = $16, "InstallationPrice" = $17, "SumPrice" = $18,
		"Pay1Date" = $19, "Pay1Price" = $20, "Pay1Ch" = $21, "TAX1ShipDate" = $22,
		"Pay2Date" = $23, "Pay2Price" = $24, "Pay2Ch" = $25, "TAX2ShipDate" = $26,
		"CommissionID" = $27, "Profit" = $28`

// Save inserts (nil baseline) or conditionally updates.
func (r *SaleRepo) Save(s *entity.Sale, baseline *time.Time) error {
	if baseline == nil {
		_, err := r.q.Exec(context.Background(), saleInsert, saleArgs(s)...)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert sale: %w", err)
		}
		return nil
	}

	query := `UPDATE "Sale"` + saleUpdateSet + ` WHERE "SID" = $1 AND "Timestamp" <= $29`
	tag, err := r.q.Exec(context.Background(), query, append(saleArgs(s), staleCutoff(*baseline))...)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(s.SID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Upsert writes the full row keyed by SID with no baseline check; the bill
// commit transaction relies on the bill row's own optimistic check.
func (r *SaleRepo) Upsert(s *entity.Sale) error {
	query := saleInsert + ` ON CONFLICT ("SID") DO UPDATE` + saleUpdateSet
	_, err := r.q.Exec(context.Background(), query, saleArgs(s)...)
	if err != nil {
		return fmt.Errorf("upsert sale: %w", err)
	}
	return nil
}

// UnlinkAllFromBill clears BID on the bill's sales and returns the SIDs
// touched. The sales facts survive and become billable again.
func (r *SaleRepo) UnlinkAllFromBill(bid string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`UPDATE "Sale" SET "BID" = NULL WHERE "BID" = $1 RETURNING "SID"`, bid)
	if err != nil {
		return nil, fmt.Errorf("unlink sales from bill: %w", err)
	}
	defer rows.Close()
	var sids []string
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			return nil, fmt.Errorf("scan unlinked sale: %w", err)
		}
		sids = append(sids, sid)
	}
	return sids, rows.Err()
}

// Delete removes the sale row.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "Sale" WHERE "SID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
