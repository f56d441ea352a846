package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testStore Store

func TestMain(m *testing.M) {
	testDBSource := os.Getenv("TEST_DB_SOURCE")
	if testDBSource == "" {
		// 显式走 unix socket，避免空 host 被解析为 TCP/localhost 导致密码认证失败
		testDBSource = "postgresql:///routeplan_test?sslmode=disable&host=/var/run/postgresql"
	}

	migrationURL := os.Getenv("TEST_MIGRATION_URL")
	if migrationURL == "" {
		migrationURL = "file://../migration"
	}

	mig, err := migrate.New(migrationURL, testDBSource)
	if err != nil {
		log.Fatal("cannot create migrate instance:", err)
	}
	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("cannot run migrations:", err)
	}
	if _, err := mig.Close(); err != nil {
		log.Printf("warning: cannot close migrate instance: %v", err)
	}

	connPool, err := pgxpool.New(context.Background(), testDBSource)
	if err != nil {
		log.Fatal("cannot connect to test db:", err)
	}

	testStore = NewStore(connPool)
	os.Exit(m.Run())
}
