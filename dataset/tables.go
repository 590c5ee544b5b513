package dataset

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/table"
)

// LoadTables loads and normalizes the global and country tables from src.
// Both tables are loaded concurrently; the first failure cancels the other.
func LoadTables(ctx context.Context, src Source) (global, country *table.Table, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := loadTable(ctx, src, schema.Aggregate)
		global = t
		return err
	})
	g.Go(func() error {
		t, err := loadTable(ctx, src, schema.PerEntity)
		country = t
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return global, country, nil
}

func loadTable(ctx context.Context, src Source, kind schema.TableKind) (*table.Table, error) {
	columns, rows, err := src.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s table: %w", kind, err)
	}
	t, err := table.Normalize(kind, columns, rows)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"table":   kind,
		"rows":    t.Len(),
		"columns": t.Columns(),
	}).Debug("table normalized")
	return t, nil
}
