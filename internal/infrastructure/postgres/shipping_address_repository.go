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

var _ repository.ShippingAddressRepository = (*ShippingAddressRepo)(nil)

// ShippingAddressRepo implements ShippingAddressRepository over the CShip table.
type ShippingAddressRepo struct {
	q Querier
}

// NewShippingAddressRepository builds the adapter.
func NewShippingAddressRepository(q Querier) *ShippingAddressRepo {
	return &ShippingAddressRepo{q: q}
}

const cshipSelect = `
	SELECT "CShipID", "CID", "Timestamp", COALESCE("RecBy",''),
	       COALESCE("ShipName",''), COALESCE("ShipTel",''), COALESCE("ShipAddress",''), COALESCE("ShipMap",'')
	FROM "CShip"`

func scanShippingAddress(row pgx.Row) (*entity.ShippingAddress, error) {
	var a entity.ShippingAddress
	err := row.Scan(&a.CShipID, &a.CID, &a.Timestamp, &a.RecBy,
		&a.ShipName, &a.ShipTel, &a.ShipAddress, &a.ShipMap)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByCustomer returns the customer's delivery addresses.
func (r *ShippingAddressRepo) ListByCustomer(cid string) ([]*entity.ShippingAddress, error) {
	rows, err := r.q.Query(context.Background(),
		cshipSelect+` WHERE "CID" = $1 ORDER BY "Timestamp" DESC`, cid)
	if err != nil {
		return nil, fmt.Errorf("list shipping addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShippingAddress
	for rows.Next() {
		a, err := scanShippingAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipping address: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetByID fetches one address, nil when absent.
func (r *ShippingAddressRepo) GetByID(id string) (*entity.ShippingAddress, error) {
	a, err := scanShippingAddress(r.q.QueryRow(context.Background(), cshipSelect+` WHERE "CShipID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipping address: %w", err)
	}
	return a, nil
}

// GetTimestamp fetches only the mutation timestamp.
func (r *ShippingAddressRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "CShip" WHERE "CShipID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get shipping address timestamp: %w", err)
	}
	return ts, nil
}

// Save inserts (nil baseline) or conditionally updates.
func (r *ShippingAddressRepo) Save(a *entity.ShippingAddress, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "CShip" ("CShipID", "CID", "Timestamp", "RecBy", "ShipName", "ShipTel", "ShipAddress", "ShipMap")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.q.Exec(context.Background(), query,
			a.CShipID, a.CID, a.Timestamp, a.RecBy,
			a.ShipName, a.ShipTel, a.ShipAddress, nullIfEmpty(a.ShipMap))
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert shipping address: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "CShip" SET "CID" = $2, "Timestamp" = $3, "RecBy" = $4,
			"ShipName" = $5, "ShipTel" = $6, "ShipAddress" = $7, "ShipMap" = $8
		WHERE "CShipID" = $1 AND "Timestamp" <= $9`
	tag, err := r.q.Exec(context.Background(), query,
		a.CShipID, a.CID, a.Timestamp, a.RecBy,
		a.ShipName, a.ShipTel, a.ShipAddress, nullIfEmpty(a.ShipMap),
		staleCutoff(*baseline))
	if err != nil {
		return fmt.Errorf("update shipping address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(a.CShipID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the address row.
func (r *ShippingAddressRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "CShip" WHERE "CShipID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipping address: %w", err)
	}
	return nil
}
