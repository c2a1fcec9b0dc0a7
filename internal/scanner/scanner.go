package scanner

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

// Kataloger vi aldri går ned i. node_modules alene kan romme
// titusenvis av filer og har sine egne package.json-er.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".hg":          true,
	".yarn":        true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// Filnavn vi kjenner igjen, med format-tagg som styrer parservalget.
var formatByFilename = map[string]models.Source{
	"package-lock.json":   models.SourceNpmLock,
	"package.lock.json":   models.SourceNpmLock,
	"npm-shrinkwrap.json": models.SourceNpmLock,
	"yarn.lock":           models.SourceYarnLock,
	"package.json":        models.SourcePackageJSON,
}

// FindCandidates traverserer katalogtreet under root og klassifiserer
// kjente avhengighetsfiler etter filnavn. Uleselige underkataloger
// logges og hoppes over; bare en uleselig rot er fatal.
func FindCandidates(root string) ([]models.CandidateFile, error) {
	var candidates []models.CandidateFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Warn("Hopper over uleselig sti", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if format, ok := formatByFilename[d.Name()]; ok {
			candidates = append(candidates, models.CandidateFile{Path: path, Format: format})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Kandidatfiler funnet", "antall", len(candidates))
	return candidates, nil
}
