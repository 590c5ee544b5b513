package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const postgresLogPrefix = "postgres"

// PostgresStore - read-only access to postgres snapshot tables
type PostgresStore interface {
	Snapshot
	Closer
	Pinger
}

type postgresDB struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pool to dsn.
func NewPostgresStore(ctx context.Context, dsn string) (PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return &postgresDB{pool: pool}, nil
}

// Ping - ping postgres db
func (p *postgresDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close - close the connection pool
func (p *postgresDB) Close() {
	log.WithField("prefix", postgresLogPrefix).Info("closing postgres pool")
	p.pool.Close()
}

// Load - read every row of the table of kind
func (p *postgresDB) Load(ctx context.Context, kind schema.TableKind) ([]string, []schema.RawRow, error) {
	tableName := schema.CollectionFor(kind)

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	rows, err := p.pool.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, tableName))
	if err != nil {
		log.WithFields(log.Fields{"prefix": postgresLogPrefix, "table": tableName, "error": err}).Error("query snapshot")
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	out := []schema.RawRow{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		row := make(schema.RawRow, len(columns))
		for i, c := range columns {
			row[c] = cell(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(out) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoSnapshot, tableName)
	}

	log.WithFields(log.Fields{"prefix": postgresLogPrefix, "table": tableName, "rows": len(out)}).Info("snapshot loaded")
	return columns, out, nil
}
