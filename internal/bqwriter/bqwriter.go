package bqwriter

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jonmartinstorm/pakkesnusern/internal/config"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

const occurrenceTable = "forekomster"

type BigQueryWriter struct {
	Client  *bigquery.Client
	Dataset string
	Table   string
}

func NewBigQueryWriter(ctx context.Context, cfg config.Config) (*BigQueryWriter, error) {
	var opts []option.ClientOption
	if cfg.BQCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.BQCredentials))
	}

	client, err := bigquery.NewClient(ctx, cfg.BQProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("kan ikke opprette BigQuery-klient: %w", err)
	}

	table := cfg.BQTablePrefix + occurrenceTable
	if err := ensureTableExists(ctx, client, cfg.BQDataset, table, BGOccurrence{}); err != nil {
		return nil, fmt.Errorf("kunne ikke sikre tabell %s: %w", table, err)
	}

	return &BigQueryWriter{
		Client:  client,
		Dataset: cfg.BQDataset,
		Table:   table,
	}, nil
}

func (w *BigQueryWriter) WriteOccurrences(ctx context.Context, occs []models.Occurrence, snapshot time.Time) error {
	rows := make([]BGOccurrence, 0, len(occs))
	for _, o := range occs {
		rows = append(rows, BGOccurrence{
			WhenCollected: snapshot,
			Package:       o.Package,
			Version:       o.Version,
			Dev:           o.Dev,
			Optional:      o.Optional,
			Source:        string(o.Source),
			LockfilePath:  o.LockfilePath,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	inserter := w.Client.Dataset(w.Dataset).Table(w.Table).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("forekomster insert failed: %w", err)
	}
	return nil
}

func (w *BigQueryWriter) Close() error {
	return w.Client.Close()
}

type BGOccurrence struct {
	WhenCollected time.Time `bigquery:"when_collected"`
	Package       string    `bigquery:"package"`
	Version       string    `bigquery:"version"`
	Dev           bool      `bigquery:"dev"`
	Optional      bool      `bigquery:"optional"`
	Source        string    `bigquery:"source"`
	LockfilePath  string    `bigquery:"lockfile_path"`
}

func ensureTableExists(ctx context.Context, client *bigquery.Client, dataset, table string, exampleStruct any) error {
	tbl := client.Dataset(dataset).Table(table)
	_, err := tbl.Metadata(ctx)
	if err == nil {
		return nil // tabellen finnes
	}

	if gErr, ok := err.(*googleapi.Error); !ok || gErr.Code != 404 {
		return fmt.Errorf("feil ved henting av tabell-metadata: %w", err)
	}

	schema, err := bigquery.InferSchema(exampleStruct)
	if err != nil {
		return fmt.Errorf("klarte ikke å generere schema for %s: %w", table, err)
	}

	if err := tbl.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		return fmt.Errorf("klarte ikke å opprette tabell %s: %w", table, err)
	}

	return nil
}
