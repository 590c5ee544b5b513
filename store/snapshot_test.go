package store

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func TestCell(t *testing.T) {
	d := time.Date(2021, 2, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "", cell(nil))
	assert.Equal(t, "US", cell("US"))
	assert.Equal(t, "abc", cell([]byte("abc")))
	assert.Equal(t, "0.5", cell(0.5))
	assert.Equal(t, "331000000", cell(float64(331000000)))
	assert.Equal(t, "7", cell(int64(7)))
	assert.Equal(t, "7", cell(int32(7)))
	assert.Equal(t, "2021-02-22T00:00:00Z", cell(d))
	assert.Equal(t, "2021-02-22T00:00:00Z", cell(primitive.DateTime(d.UnixNano()/int64(time.Millisecond))))
}

func TestCellNumeric(t *testing.T) {
	var n pgtype.Numeric
	assert.NoError(t, n.Scan("0.935"))
	assert.Equal(t, "0.935", cell(n))

	assert.NoError(t, n.Scan("331000000"))
	assert.Equal(t, "331000000", cell(n))

	assert.Equal(t, "", cell(pgtype.Numeric{}))
}

func TestSQLiteDDL(t *testing.T) {
	ddl := SQLiteDDL(schema.PerEntity)
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS covid_daily_country")
	assert.Contains(t, ddl, "country TEXT NOT NULL")
	assert.Contains(t, ddl, "PRIMARY KEY (country, date)")
	assert.Contains(t, ddl, "hdi_value REAL")

	ddl = SQLiteDDL(schema.Aggregate)
	assert.NotContains(t, ddl, "country TEXT")
	assert.Contains(t, ddl, "PRIMARY KEY (date)")
}

func TestPostgresDDL(t *testing.T) {
	ddl := PostgresDDL(schema.PerEntity)
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS covid_daily_country")
	assert.Contains(t, ddl, "cases DOUBLE PRECISION")
	assert.Contains(t, ddl, "PRIMARY KEY (country, date)")
}
