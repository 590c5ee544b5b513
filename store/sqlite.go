package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const sqliteLogPrefix = "sqlite"

// SQLiteStore - read-only access to a sqlite snapshot file
type SQLiteStore interface {
	Snapshot
	Closer
	Pinger
}

type sqliteDB struct {
	db *sql.DB
}

// NewSQLiteStore opens the snapshot at path read-only.
func NewSQLiteStore(path string) (SQLiteStore, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, err
	}
	return &sqliteDB{db: db}, nil
}

// Ping - ping sqlite db
func (s *sqliteDB) Ping() error {
	return s.db.Ping()
}

// Close - close sqlite db
func (s *sqliteDB) Close() {
	log.WithField("prefix", sqliteLogPrefix).Info("closing sqlite db")
	_ = s.db.Close()
}

// Load - read every row of the table of kind
func (s *sqliteDB) Load(ctx context.Context, kind schema.TableKind) ([]string, []schema.RawRow, error) {
	tableName := schema.CollectionFor(kind)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %s`, tableName))
	if err != nil {
		log.WithFields(log.Fields{"prefix": sqliteLogPrefix, "table": tableName, "error": err}).Error("query snapshot")
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	values := make([]interface{}, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	out := []schema.RawRow{}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
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

	log.WithFields(log.Fields{"prefix": sqliteLogPrefix, "table": tableName, "rows": len(out)}).Info("snapshot loaded")
	return columns, out, nil
}
