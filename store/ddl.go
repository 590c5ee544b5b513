package store

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// SQLiteDDL returns the statement creating the sqlite snapshot table of kind.
func SQLiteDDL(kind schema.TableKind) string {
	return ddl(kind, "REAL")
}

// PostgresDDL returns the statement creating the postgres snapshot table of
// kind.
func PostgresDDL(kind schema.TableKind) string {
	return ddl(kind, "DOUBLE PRECISION")
}

func ddl(kind schema.TableKind, numericType string) string {
	cols := []string{schema.FieldDate + " TEXT NOT NULL"}
	key := schema.FieldDate
	if kind == schema.PerEntity {
		cols = append(cols, schema.FieldCountry+" TEXT NOT NULL")
		key = schema.FieldCountry + ", " + schema.FieldDate
	}
	for _, f := range schema.NumericFields {
		cols = append(cols, f+" "+numericType)
	}
	cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", key))

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", schema.CollectionFor(kind), strings.Join(cols, ",\n\t"))
}
