// seed imports the initial catalog and customer book from CSV exports of the
// previous system.
//
// Usage: go run ./cmd/seed [dir]
// Looks for products.csv and customers.csv in dir (default "./seed-data").
// products.csv columns: pid_sub,pd_type,pd_name,pd_detrail,pd_price
// customers.csv columns: contract_name,contract_tel,contract_company,come_from
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/id"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/postgres"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/config"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/logger"
)

const importActor = "Seed"

func main() {
	dir := "./seed-data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	products := postgres.NewProductRepository(pool)
	customers := postgres.NewCustomerRepository(pool)

	// Key generation is second-granular, so imported rows get strictly
	// increasing synthetic instants.
	now := time.Now()

	if rows, err := readCSV(filepath.Join(dir, "products.csv")); err == nil {
		n := 0
		for _, rec := range rows {
			if len(rec) < 5 {
				continue
			}
			price, err := decimal.NewFromString(rec[4])
			if err != nil {
				log.Warn().Str("pd_name", rec[2]).Str("price", rec[4]).Msg("skipping product with bad price")
				continue
			}
			p := &entity.Product{
				PID:       id.Product(now),
				Timestamp: now,
				RecBy:     importActor,
				PIDSub:    rec[0],
				PDType:    rec[1],
				PDName:    rec[2],
				PDDetrail: rec[3],
				PDPrice:   price,
			}
			if err := products.Save(p, nil); err != nil {
				log.Error().Err(err).Str("pid", p.PID).Msg("insert product")
				continue
			}
			now = now.Add(time.Second)
			n++
		}
		log.Info().Int("count", n).Msg("products imported")
	} else {
		log.Warn().Err(err).Msg("no products.csv, skipping")
	}

	if rows, err := readCSV(filepath.Join(dir, "customers.csv")); err == nil {
		n := 0
		for _, rec := range rows {
			if len(rec) < 4 {
				continue
			}
			c := &entity.Customer{
				CID:             id.Customer(now),
				Timestamp:       now,
				RecBy:           importActor,
				ContractName:    rec[0],
				ContractTel:     rec[1],
				ContractCompany: rec[2],
				ComeFrom:        rec[3],
				CIDImportBy:     importActor,
			}
			if err := customers.Save(c, nil); err != nil {
				log.Error().Err(err).Str("cid", c.CID).Msg("insert customer")
				continue
			}
			now = now.Add(time.Second)
			n++
		}
		log.Info().Int("count", n).Msg("customers imported")
	} else {
		log.Warn().Err(err).Msg("no customers.csv, skipping")
	}
}

// readCSV loads all records, skipping the header row.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}
