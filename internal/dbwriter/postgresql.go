package dbwriter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

type PostgresWriter struct {
	DB *sql.DB
}

func NewPostgresWriter(ctx context.Context, dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Kunne ikke åpne PostgreSQL-database", "error", err)
		return nil, fmt.Errorf("kunne ikke åpne PostgreSQL-database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(10 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		if cerr := db.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke databaseforbindelsen", "error", cerr)
		}
		return nil, fmt.Errorf("DB ping-feil: %w", err)
	}

	return &PostgresWriter{DB: db}, nil
}

const insertOccurrenceSQL = `
	INSERT INTO forekomster (hentet_dato, pakke, versjon, dev, optional, kilde, fil)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// WriteOccurrences skriver hele snapshotet i én transaksjon, slik at et
// delvis skann aldri blir liggende i databasen.
func (p *PostgresWriter) WriteOccurrences(ctx context.Context, occs []models.Occurrence, snapshot time.Time) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertOccurrenceSQL)
	if err != nil {
		return rollback(tx, fmt.Errorf("prepare feilet: %w", err))
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke statement", "error", cerr)
		}
	}()

	for _, o := range occs {
		_, err := stmt.ExecContext(ctx, snapshot, o.Package, o.Version, o.Dev, o.Optional, string(o.Source), o.LockfilePath)
		if err != nil {
			return rollback(tx, fmt.Errorf("insert av %s feilet: %w", o.Package, err))
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Commit-feil", "error", err)
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (p *PostgresWriter) Close() error {
	return p.DB.Close()
}

func rollback(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return fmt.Errorf("%v (rollback feilet: %w)", err, rbErr)
	}
	return err
}
