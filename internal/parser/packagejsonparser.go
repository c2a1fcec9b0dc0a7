package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

type PackageJSONParser struct{}

func (p PackageJSONParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "package.json")
}

// Parse leser nøyaktig tre toppnivåfelt fra en package.json, hvert med
// faste dev/optional-flagg. Version er her et deklarert versjonsområde,
// aldri en oppløst versjon.
func (p PackageJSONParser) Parse(path string, content []byte, targets models.TargetSet) ([]models.Occurrence, error) {
	var raw struct {
		Dependencies         json.RawMessage `json:"dependencies"`
		DevDependencies      json.RawMessage `json:"devDependencies"`
		OptionalDependencies json.RawMessage `json:"optionalDependencies"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}

	var occs []models.Occurrence
	occs = append(occs, manifestField(path, raw.Dependencies, false, false, targets)...)
	occs = append(occs, manifestField(path, raw.DevDependencies, true, false, targets)...)
	occs = append(occs, manifestField(path, raw.OptionalDependencies, false, true, targets)...)
	return occs, nil
}

func manifestField(path string, raw json.RawMessage, dev, optional bool, targets models.TargetSet) []models.Occurrence {
	if len(raw) == 0 {
		return nil
	}
	var entries map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Felt som ikke er objekter hoppes stille over
		return nil
	}

	var occs []models.Occurrence
	for name, rng := range entries {
		if !targets.Contains(name) {
			continue
		}
		occs = append(occs, models.Occurrence{
			Package:      name,
			Version:      rangeString(rng),
			Dev:          dev,
			Optional:     optional,
			Source:       models.SourcePackageJSON,
			LockfilePath: path,
		})
	}
	return occs
}

func rangeString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}
