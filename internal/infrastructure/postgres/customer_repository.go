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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// The hosted schema uses quoted CamelCase identifiers; optional text columns
// are nullable and coalesced to "" on read.
const customerSelect = `
	SELECT "CID", "Timestamp", COALESCE("RecBy",''), COALESCE("DelDate",''),
	       COALESCE("ContractName",''), COALESCE("ContractTel",''), COALESCE("ContractCompany",''), COALESCE("ContractCh",''),
	       COALESCE("LineID",''), COALESCE("Facebook",''), COALESCE("Instagram",''), COALESCE("Other",''),
	       COALESCE("ComeFrom",''), COALESCE("WelcomeBy",''), COALESCE("WelcomeDate",''), COALESCE("ContractPic",''), COALESCE("CIDImportBy",'')
	FROM "Customer"`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.CID, &c.Timestamp, &c.RecBy, &c.DelDate,
		&c.ContractName, &c.ContractTel, &c.ContractCompany, &c.ContractCh,
		&c.LineID, &c.Facebook, &c.Instagram, &c.Other,
		&c.ComeFrom, &c.WelcomeBy, &c.WelcomeDate, &c.ContractPic, &c.CIDImportBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns customers newest first, optionally filtered by substring on
// key, name, phone or company.
func (r *CustomerRepo) List(q string) ([]*entity.Customer, error) {
	query := customerSelect + ` ORDER BY "Timestamp" DESC`
	var args []any
	if q != "" {
		query = customerSelect + `
			WHERE "CID" ILIKE $1 OR "ContractName" ILIKE $1 OR "ContractTel" ILIKE $1 OR "ContractCompany" ILIKE $1
			ORDER BY "Timestamp" DESC`
		args = append(args, like(q))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID fetches one customer, nil when absent.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(), customerSelect+` WHERE "CID" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetTimestamp fetches only the mutation timestamp, the form baseline.
func (r *CustomerRepo) GetTimestamp(id string) (time.Time, error) {
	var ts time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT "Timestamp" FROM "Customer" WHERE "CID" = $1`, id).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get customer timestamp: %w", err)
	}
	return ts, nil
}

// Save inserts when baseline is nil, otherwise performs the conditional
// update of the optimistic save protocol: the row is only written while its
// stored Timestamp has not advanced past baseline+slack.
func (r *CustomerRepo) Save(c *entity.Customer, baseline *time.Time) error {
	if baseline == nil {
		query := `
			INSERT INTO "Customer" ("CID", "Timestamp", "RecBy", "DelDate",
				"ContractName", "ContractTel", "ContractCompany", "ContractCh",
				"LineID", "Facebook", "Instagram", "Other",
				"ComeFrom", "WelcomeBy", "WelcomeDate", "ContractPic", "CIDImportBy")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
		_, err := r.q.Exec(context.Background(), query,
			c.CID, c.Timestamp, c.RecBy, nullIfEmpty(c.DelDate),
			c.ContractName, c.ContractTel, nullIfEmpty(c.ContractCompany), nullIfEmpty(c.ContractCh),
			nullIfEmpty(c.LineID), nullIfEmpty(c.Facebook), nullIfEmpty(c.Instagram), nullIfEmpty(c.Other),
			nullIfEmpty(c.ComeFrom), nullIfEmpty(c.WelcomeBy), nullIfEmpty(c.WelcomeDate), nullIfEmpty(c.ContractPic), nullIfEmpty(c.CIDImportBy),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert customer: %w", err)
		}
		return nil
	}

	query := `
		UPDATE "Customer" SET "Timestamp" = $2, "RecBy" = $3, "DelDate" = $4,
			"ContractName" = $5, "ContractTel" = $6, "ContractCompany" = $7, "ContractCh" = $8,
			"LineID" = $9, "Facebook" = $10, "Instagram" = $11, "Other" = $12,
			"ComeFrom" = $13, "WelcomeBy" = $14, "WelcomeDate" = $15, "ContractPic" = $16, "CIDImportBy" = $17
		WHERE "CID" = $1 AND "Timestamp" <= $18`
	tag, err := r.q.Exec(context.Background(), query,
		c.CID, c.Timestamp, c.RecBy, nullIfEmpty(c.DelDate),
		c.ContractName, c.ContractTel, nullIfEmpty(c.ContractCompany), nullIfEmpty(c.ContractCh),
		nullIfEmpty(c.LineID), nullIfEmpty(c.Facebook), nullIfEmpty(c.Instagram), nullIfEmpty(c.Other),
		nullIfEmpty(c.ComeFrom), nullIfEmpty(c.WelcomeBy), nullIfEmpty(c.WelcomeDate), nullIfEmpty(c.ContractPic), nullIfEmpty(c.CIDImportBy),
		staleCutoff(*baseline),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetTimestamp(c.CID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete removes the customer row.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM "Customer" WHERE "CID" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
