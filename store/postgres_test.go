package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

type PostgresTestSuite struct {
	suite.Suite
	dsn   string
	pool  *pgxpool.Pool
	store PostgresStore
}

func (s *PostgresTestSuite) SetupSuite() {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, s.dsn)
	s.Require().NoError(err)
	s.pool = pool

	for _, kind := range []schema.TableKind{schema.Aggregate, schema.PerEntity} {
		_, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+schema.CollectionFor(kind))
		s.Require().NoError(err)
		_, err = pool.Exec(ctx, PostgresDDL(kind))
		s.Require().NoError(err)
	}
	_, err = pool.Exec(ctx, `INSERT INTO covid_daily_country (date, country, cases, hdi_value) VALUES
		('2021-01-01', 'US', 100, 0.926),
		('2021-01-02', 'US', 120, NULL)`)
	s.Require().NoError(err)

	store, err := NewPostgresStore(ctx, s.dsn)
	s.Require().NoError(err)
	s.store = store
}

func (s *PostgresTestSuite) TearDownSuite() {
	for _, kind := range []schema.TableKind{schema.Aggregate, schema.PerEntity} {
		_, _ = s.pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+schema.CollectionFor(kind))
	}
	s.pool.Close()
	s.store.Close()
}

func (s *PostgresTestSuite) TestPing() {
	s.NoError(s.store.Ping())
}

func (s *PostgresTestSuite) TestLoadCountry() {
	columns, rows, err := s.store.Load(context.Background(), schema.PerEntity)
	s.Require().NoError(err)
	s.Contains(columns, schema.FieldHDI)
	s.Require().Len(rows, 2)

	byDate := map[string]schema.RawRow{}
	for _, r := range rows {
		byDate[r[schema.FieldDate]] = r
	}
	s.Equal("100", byDate["2021-01-01"][schema.FieldCases])
	s.Equal("0.926", byDate["2021-01-01"][schema.FieldHDI])
	s.Equal("", byDate["2021-01-02"][schema.FieldHDI])
}

func (s *PostgresTestSuite) TestLoadEmptyTable() {
	_, _, err := s.store.Load(context.Background(), schema.Aggregate)
	s.True(errors.Is(err, ErrNoSnapshot))
}

func TestPostgresTestSuite(t *testing.T) {
	dsn := os.Getenv("DASHBOARD_TEST_POSTGRES")
	if dsn == "" {
		t.Skip("DASHBOARD_TEST_POSTGRES is not set")
	}
	suite.Run(t, &PostgresTestSuite{dsn: dsn})
}
