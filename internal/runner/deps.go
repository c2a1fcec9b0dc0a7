package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonmartinstorm/pakkesnusern/internal/bqwriter"
	"github.com/jonmartinstorm/pakkesnusern/internal/config"
	"github.com/jonmartinstorm/pakkesnusern/internal/dbwriter"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
	"github.com/jonmartinstorm/pakkesnusern/internal/report"
	"github.com/jonmartinstorm/pakkesnusern/internal/scanner"
)

// OccurrenceWriter er et lagringsmål for en skann-snapshot.
type OccurrenceWriter interface {
	WriteOccurrences(ctx context.Context, occs []models.Occurrence, snapshot time.Time) error
	Close() error
}

// Deps er sidekantene appen trenger: traversering, filinnhold,
// rendering og eventuelt lagringsmål. Injiseres så appen kan testes
// uten filsystem og database.
type Deps interface {
	FindCandidates(root string) ([]models.CandidateFile, error)
	ReadFile(path string) ([]byte, error)
	Render(occs []models.Occurrence)
	NewWriter(ctx context.Context, cfg config.Config) (OccurrenceWriter, error)
}

type RealDeps struct{}

func (RealDeps) FindCandidates(root string) ([]models.CandidateFile, error) {
	return scanner.FindCandidates(root)
}

func (RealDeps) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (RealDeps) Render(occs []models.Occurrence) {
	report.RenderMarkdown(os.Stdout, occs)
}

func (RealDeps) NewWriter(ctx context.Context, cfg config.Config) (OccurrenceWriter, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return dbwriter.NewPostgresWriter(ctx, cfg.PostgresDSN)
	case config.StorageBigQuery:
		return bqwriter.NewBigQueryWriter(ctx, cfg)
	}
	return nil, fmt.Errorf("ukjent lagringstype: %q", cfg.Storage)
}
