package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestDB struct {
	DB        *sql.DB
	DSN       string
	container testcontainers.Container
}

// StartTestPostgresContainer starter en engangs-Postgres for
// integrasjonstester og venter til den svarer på ping.
func StartTestPostgresContainer() *TestDB {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:      "postgres:15",
		SkipReaper: true, // Ryuk skaper trøbbel på macOS/Podman
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("kunne ikke starte testcontainer: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("klarte ikke hente host fra container: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatalf("klarte ikke hente port fra container: %v", err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())
	db := waitForDatabase(ctx, dsn)

	return &TestDB{
		DB:        db,
		DSN:       dsn,
		container: container,
	}
}

func waitForDatabase(ctx context.Context, dsn string) *sql.DB {
	var lastErr error
	for retries := 0; retries < 10; retries++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				return db
			}
			_ = db.Close()
		}
		lastErr = err
		log.Println("venter på at databasen skal bli klar...")
		time.Sleep(1 * time.Second)
	}
	log.Fatalf("klarte ikke koble til databasen: %v", lastErr)
	return nil
}

func (t *TestDB) Close() {
	ctx := context.Background()

	if err := t.DB.Close(); err != nil {
		log.Printf("kunne ikke lukke databaseforbindelsen: %v", err)
	}
	if err := t.container.Terminate(ctx); err != nil {
		log.Printf("kunne ikke stoppe testcontaineren: %v", err)
	}
}

// RunMigrations kjører db/schema.sql mot testdatabasen. Stien slås opp
// relativt til arbeidskatalogen, siden testene kjører fra test/.
func RunMigrations(db *sql.DB) {
	root, err := os.Getwd()
	if err != nil {
		log.Fatalf("kunne ikke hente arbeidskatalog: %v", err)
	}

	schemaPath := filepath.Join(root, "db", "schema.sql")
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		schemaPath = filepath.Join(root, "..", "db", "schema.sql")
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("kunne ikke lese schema.sql: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("klarte ikke å kjøre migrering: %v", err)
	}
}
