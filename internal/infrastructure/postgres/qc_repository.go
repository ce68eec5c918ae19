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

var _ repository.QCRepository = (*QCRepo)(nil)

// QCRepo implements QCRepository over the QC table, keyed by serial number.
type QCRepo struct {
	q Querier
}

// NewQCRepository builds the adapter.
func NewQCRepository(q Querier) *QCRepo {
	return &QCRepo{q: q}
}

const qcSelect = `
	SELECT "SN", "Timestamp", COALESCE("RecBy",''), COALESCE("DelDate",''),
	       COALESCE("QCDate",''), COALESCE("Staff",''), COALESCE("ShopLabel",''),
	       COALESCE("QCPass",''), COALESCE("YDLabel",''), COALESCE("ProductType",''),
	       COALESCE("BodyColor",''), COALESCE("BulbType",''), COALESCE("BulbColor",''),
	       COALESCE("Dimention",''), COALESCE("QCRemark",''), COALESCE("QCQty",0),
	       COALESCE("PicLabel1",''), COALESCE("PicLabel2",''),
	       COALESCE("PicManual1",''), COALESCE("PicManual2",''),
	       COALESCE("PicQC1",''), COALESCE("PicQC2",''), COALESCE("PicQC3",''), COALESCE("PicQC4",''), COALESCE("PicQC5",''),
	       COALESCE("PicQC6",''), COALESCE("PicQC7",''), COALESCE("PicQC8",''), COALESCE("PicQC9",''), COALESCE("PicQC10",''),
	       COALESCE("PicDriver",''), COALESCE("PicRemote",''), COALESCE("ShipID",'')
	FROM "QC"`

func scanQC(row pgx.Row) (*entity.QC, error) {
	var q entity.QC
	err := row.Scan(
		&q.SN, &q.Timestamp, &q.RecBy, &q.DelDate,
		&q.QCDate, &q.Staff, &q.ShopLabel,
		&q.QCPass, &q.YDLabel, &q.ProductType,
		&q.BodyColor, &q.BulbType, &q.BulbColor,
		&q.Dimention, &q.QCRemark, &q.QCQty,
		&q.PicLabel1, &q.PicLabel2,
		&q.PicManual1, &q.PicManual2,
		&q.PicQC[0], &q.PicQC[1], &q.PicQC[2], &q.PicQC[3], &q.PicQC[4],
		&q.PicQC[5], &q.PicQC[6], &q.PicQC[7], &q.PicQC[8], &q.PicQC[9],
		&q.PicDriver, &q.PicRemote, &q.ShipID,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns inspections newest first, optionally filtered by substring on
// serial, staff or product type.
func (r *QCRepo) List(q string) ([]*entity.QC, error) {
	query := qcSelect + ` ORDER BY "Timestamp" DESC`
	var args []any
	if q != "" {
		query = qcSelect + `
			WHERE "SN" ILIKE $1 OR "Staff" ILIKE $1 OR "ProductType" ILIKE $1
			ORDER BY "Timestamp" DESC`
		args = append(args, like(q))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list qc: %w", err)
	}
	defer rows.Close()
	var list []*entity.QC
	for rows.Next() {
		rec, err := scanQC(rows)
		if err != nil {
			return nil, fmt.Errorf("scan qc: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// GetBySN fetches one inspection, nil when absent.
func (r *QCRepo) GetBySN(sn string) (*entity.QC, error) {
	rec, err := scanQC(r.q.QueryRow(context.Background(), qcSelect+` WHERE "SN" = $1`, sn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get qc: %w", err)
	}
	return rec, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *QCRepo) GetTimestamp(sn string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "QC" WHERE "SN" = $1`, sn).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get qc timestamp: %w", err)
	}
	return ts, nil
}

func qcArgs(rec *entity.QC) []any {
	return []any{
		rec.SN, rec.Timestamp, rec.RecBy, nullIfEmpty(rec.DelDate),
		nullIfEmpty(rec.QCDate), rec.Staff, nullIfEmpty(rec.ShopLabel),
		rec.QCPass, nullIfEmpty(rec.YDLabel), rec.ProductType,
		nullIfEmpty(rec.BodyColor), nullIfEmpty(rec.BulbType), nullIfEmpty(rec.BulbColor),
		nullIfEmpty(rec.Dimention), nullIfEmpty(rec.QCRemark), rec.QCQty,
		nullIfEmpty(rec.PicLabel1), nullIfEmpty(rec.PicLabel2),
		nullIfEmpty(rec.PicManual1), nullIfEmpty(rec.PicManual2),
		nullIfEmpty(rec.PicQC[0]), nullIfEmpty(rec.PicQC[1]), nullIfEmpty(rec.PicQC[2]), nullIfEmpty(rec.PicQC[3]), nullIfEmpty(rec.PicQC[4]),
		nullIfEmpty(rec.PicQC[5]), nullIfEmpty(rec.PicQC[6]), nullIfEmpty(rec.PicQC[7]), nullIfEmpty(rec.PicQC[8]), nullIfEmpty(rec.PicQC[9]),
		nullIfEmpty(rec.PicDriver), nullIfEmpty(rec.PicRemote), nullIfEmpty(rec.ShipID),
	}
}

// Save inserts (nil baseline) or conditionally updates.
func (r *QCRepo) Save(rec *entity.QC, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "QC" ("SN", "Timestamp", "RecBy", "DelDate",
				"QCDate", "Staff", "ShopLabel", "QCPass", "YDLabel", "ProductType",
				"BodyColor", "BulbType", "BulbColor", "Dimention", "QCRemark", "QCQty",
				"PicLabel1", "PicLabel2", "PicManual1", "PicManual2",
				"PicQC1", "PicQC2", "PicQC3", "PicQC4", "PicQC5",
				"PicQC6", "PicQC7", "PicQC8", "PicQC9", "PicQC10",
				"PicDriver", "PicRemote", "ShipID")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
				$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)`
		_, err := r.q.Exec(context.Background(), query, qcArgs(rec)...)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert qc: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "QC" SET "Timestamp" = $2, "RecBy" = $3, "DelDate" = $4,
			"QCDate" = $5, "Staff" = $6, "ShopLabel" = $7, "QCPass" = $8, "YDLabel" = $9, "ProductType" = $10,
			"BodyColor" = $11, "BulbType" = $12, "BulbColor" = $13, "Dimention" = $14, "QCRemark" = $15, "QCQty" = $16,
			"PicLabel1" = $17, "PicLabel2" = $18, "PicManual1" = $19, "PicManual2" = $20,
			"PicQC1" = $21, "PicQC2" = $22, "PicQC3" = $23, "PicQC4" = $24, "PicQC5" = $25,
			"PicQC6" = $26, "PicQC7" = $27, "PicQC8" = $28, "PicQC9" = $29, "PicQC10" = $30,
			"PicDriver" = $31, "PicRemote" = $32, "ShipID" = $33
		WHERE "SN" = $1 AND "Timestamp" <= $34`
	tag, err := r.q.Exec(context.Background(), query, append(qcArgs(rec), staleCutoff(*baseline))...)
	if err != nil {
		return fmt.Errorf("update qc: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(rec.SN); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the inspection record.
func (r *QCRepo) Delete(sn string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "QC" WHERE "SN" = $1`, sn)
	if err != nil {
		return fmt.Errorf("delete qc: %w", err)
	}
	return nil
}
