package parser

import (
	"sort"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

type occurrenceKey struct {
	path     string
	pkg      string
	version  string
	source   models.Source
	dev      bool
	optional bool
}

// Aggregate slår sammen forekomster fra alle parserne til én deterministisk,
// duplikatfri og sortert sekvens. Bare helt identiske forekomster kollapser;
// to forekomster som deler (fil, pakke, versjon, kilde) men skiller seg i
// dev/optional overlever begge. Første forekomst vinner.
func Aggregate(occs []models.Occurrence) []models.Occurrence {
	seen := make(map[occurrenceKey]bool, len(occs))
	result := make([]models.Occurrence, 0, len(occs))

	for _, o := range occs {
		key := occurrenceKey{o.LockfilePath, o.Package, o.Version, o.Source, o.Dev, o.Optional}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, o)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Package != result[j].Package {
			return result[i].Package < result[j].Package
		}
		return result[i].LockfilePath < result[j].LockfilePath
	})

	return result
}
