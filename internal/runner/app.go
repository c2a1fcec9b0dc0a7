package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonmartinstorm/pakkesnusern/internal/config"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
	"github.com/jonmartinstorm/pakkesnusern/internal/parser"
)

type App struct {
	cfg     config.Config
	targets models.TargetSet
	deps    Deps
}

func NewApp(cfg config.Config, targets models.TargetSet, deps Deps) *App {
	return &App{
		cfg:     cfg,
		targets: targets,
		deps:    deps,
	}
}

func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	candidates, err := a.deps.FindCandidates(a.cfg.Root)
	if err != nil {
		return fmt.Errorf("traversering feilet: %w", err)
	}
	slog.Info("Skanner kandidatfiler", "antall", len(candidates), "root", a.cfg.Root)

	// Hver parse er en ren funksjon av (innhold, sti). Resultatene
	// samles per kandidat-indeks, så utfallet er deterministisk uansett
	// hvilken rekkefølge goroutinene fullfører i.
	results := make([][]models.Occurrence, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Parallelism)
	for i, cand := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.parseCandidate(cand)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var all []models.Occurrence
	for _, occs := range results {
		all = append(all, occs...)
	}
	final := parser.Aggregate(all)

	a.deps.Render(final)

	if a.cfg.Storage != config.StorageNone {
		if err := a.store(ctx, final); err != nil {
			return err
		}
	}

	slog.Info("Ferdig", "forekomster", len(final), "varighet", time.Since(start).String())
	return nil
}

// parseCandidate isolerer feil per fil: en fil som ikke kan leses eller
// dekodes logges som diagnostikk og bidrar med null forekomster, resten
// av skannet fortsetter.
func (a *App) parseCandidate(cand models.CandidateFile) []models.Occurrence {
	p, ok := parser.ForFormat(cand.Format)
	if !ok {
		slog.Warn("Ukjent format-tagg", "fil", cand.Path, "format", string(cand.Format))
		return nil
	}

	content, err := a.deps.ReadFile(cand.Path)
	if err != nil {
		slog.Warn("Klarte ikke å lese fil", "fil", cand.Path, "error", err)
		return nil
	}

	occs, err := p.Parse(cand.Path, content, a.targets)
	if err != nil {
		slog.Warn("Klarte ikke å parse fil", "fil", cand.Path, "error", err)
		return nil
	}
	return occs
}

func (a *App) store(ctx context.Context, occs []models.Occurrence) error {
	w, err := a.deps.NewWriter(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("klarte ikke å åpne lagringsmål: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke lagringsmål", "error", cerr)
		}
	}()

	if err := w.WriteOccurrences(ctx, occs, time.Now()); err != nil {
		return fmt.Errorf("skriving til lagringsmål feilet: %w", err)
	}

	slog.Info("Snapshot lagret", "forekomster", len(occs), "storage", string(a.cfg.Storage))
	return nil
}
