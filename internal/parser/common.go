package parser

import (
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

// Parser gjør om rå filinnhold til forekomster av målpakker.
// Filtreringen mot målsettet skjer inne i hver parser, aldri etterpå.
type Parser interface {
	CanParse(filename string) bool
	Parse(path string, content []byte, targets models.TargetSet) ([]models.Occurrence, error)
}

var byFormat = map[models.Source]Parser{
	models.SourceNpmLock:     NpmLockParser{},
	models.SourceYarnLock:    YarnLockParser{},
	models.SourcePackageJSON: PackageJSONParser{},
}

// ForFormat velger parser ut fra den forhåndsklassifiserte format-taggen.
// Vi inspiserer aldri innholdet for å gjette format.
func ForFormat(format models.Source) (Parser, bool) {
	p, ok := byFormat[format]
	return p, ok
}
