package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var target string
	flag.StringVar(&target, "target", "mongo", "snapshot store to prepare: mongo, sqlite or postgres")
	flag.Parse()

	switch target {
	case "mongo":
		schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
	case "sqlite":
		if err := migrateSQLite(viper.GetString("sqlite.path")); err != nil {
			panic(err)
		}
	case "postgres":
		if err := migratePostgres(viper.GetString("postgres.conn")); err != nil {
			panic(err)
		}
	default:
		panic(fmt.Sprintf("unknown target %q", target))
	}
}

func migrateSQLite(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, kind := range []schema.TableKind{schema.Aggregate, schema.PerEntity} {
		fmt.Println("initialize table", schema.CollectionFor(kind))
		if _, err := db.Exec(store.SQLiteDDL(kind)); err != nil {
			return err
		}
	}
	return nil
}

func migratePostgres(dsn string) error {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	for _, kind := range []schema.TableKind{schema.Aggregate, schema.PerEntity} {
		fmt.Println("initialize table", schema.CollectionFor(kind))
		if _, err := pool.Exec(ctx, store.PostgresDDL(kind)); err != nil {
			return err
		}
	}
	return nil
}
