//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/avelsner/crossrank/pkg/db/migrate"
	database "github.com/avelsner/crossrank/pkg/db/postgres"
)

// create a pg connection pool for the crossrank testdatabase
func SetupTestDb() *pgxpool.Pool {
	ctx := context.Background()
	port, err := nat.NewPort("tcp", "5432")
	if err != nil {
		log.Fatal(err)
	}
	container, err := SetupPostgres(ctx,
		WithPort(port.Port()),
		WithInitialDatabase("postgres", "password", "postgres"),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		WithName("crossrank-test"),
	)
	if err != nil {
		log.Fatal(err)
	}
	containerPort, _ := container.MappedPort(ctx, port)
	host, _ := container.Host(ctx)
	dbURL := fmt.Sprintf("postgresql://postgres:password@%s:%s/postgres",
		host, containerPort.Port())

	if err = migrate.MigrateDb(dbURL); err != nil {
		log.Fatal(err)
	}

	pool := database.InitWithURL(dbURL)
	return pool
}

// connects to an already running database (TESTDB_URL) and migrates it
func SetupExternalTestDb() *pgxpool.Pool {
	dbURL := os.Getenv("TESTDB_URL")
	if err := migrate.MigrateDb(dbURL); err != nil {
		log.Fatal(err)
	}
	return database.InitWithURL(dbURL)
}

func ClearRankingTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from ranking")
}

func ClearWeightsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from ranking_weights")
}

func ClearFingerprintTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from fingerprint")
}

func ClearNormalizedTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from normalized_result")
}

func ClearEventTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from normalized_result")
	pool.Exec(context.Background(), "delete from event")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearRankingTable(pool)
	ClearWeightsTable(pool)
	ClearFingerprintTable(pool)
	ClearNormalizedTable(pool)
	ClearEventTable(pool)
}
