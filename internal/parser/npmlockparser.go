package parser

import (
	"encoding/json"
	"strings"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

type NpmLockParser struct{}

func (p NpmLockParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "package-lock.json") ||
		strings.HasSuffix(filename, "package.lock.json") ||
		strings.HasSuffix(filename, "npm-shrinkwrap.json")
}

// Parse leser både v2/v3-formen ("packages") og v1-formen ("dependencies").
// Begge kan finnes i samme fil og begge skannes; eksakte duplikater
// kollapses av aggregatoren etterpå.
func (p NpmLockParser) Parse(path string, content []byte, targets models.TargetSet) ([]models.Occurrence, error) {
	var raw struct {
		Packages     json.RawMessage `json:"packages"`
		Dependencies json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}

	var occs []models.Occurrence
	occs = append(occs, parseNpmPackages(path, raw.Packages, targets)...)
	occs = append(occs, parseNpmDependencies(path, raw.Dependencies, targets)...)
	return occs, nil
}

// npmPackageEntry er en oppføring i v2/v3 "packages"-mappingen.
type npmPackageEntry struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Dev      bool   `json:"dev"`
	Optional bool   `json:"optional"`
}

func parseNpmPackages(path string, raw json.RawMessage, targets models.TargetSet) []models.Occurrence {
	if len(raw) == 0 {
		return nil
	}
	var pkgs map[string]*npmPackageEntry
	if err := json.Unmarshal(raw, &pkgs); err != nil {
		// Misformet "packages"-felt gir null treff, ikke feil
		return nil
	}

	var occs []models.Occurrence
	for key, entry := range pkgs {
		if entry == nil {
			continue
		}
		name := entry.Name
		if name == "" {
			name = nameFromPackageKey(key)
		}
		if !targets.Contains(name) {
			continue
		}
		occs = append(occs, models.Occurrence{
			Package:      name,
			Version:      entry.Version,
			Dev:          entry.Dev,
			Optional:     entry.Optional,
			Source:       models.SourceNpmLock,
			LockfilePath: path,
		})
	}
	return occs
}

// nameFromPackageKey utleder pakkenavnet fra en "packages"-nøkkel som
// "node_modules/foo" eller nøstet "node_modules/a/node_modules/@scope/b":
// splitt på "node_modules/", ta siste ikke-tomme segment, fjern en
// eventuell avsluttende skråstrek.
func nameFromPackageKey(key string) string {
	name := ""
	for _, part := range strings.Split(key, "node_modules/") {
		if part != "" {
			name = part
		}
	}
	return strings.TrimSuffix(name, "/")
}

// npmV1Dep er en node i det rekursive v1 "dependencies"-treet.
type npmV1Dep struct {
	Version      string               `json:"version"`
	Dev          bool                 `json:"dev"`
	Optional     bool                 `json:"optional"`
	Dependencies map[string]*npmV1Dep `json:"dependencies"`
}

func parseNpmDependencies(path string, raw json.RawMessage, targets models.TargetSet) []models.Occurrence {
	if len(raw) == 0 {
		return nil
	}
	var deps map[string]*npmV1Dep
	if err := json.Unmarshal(raw, &deps); err != nil {
		return nil
	}
	return walkNpmDeps(path, deps, targets)
}

func walkNpmDeps(path string, deps map[string]*npmV1Dep, targets models.TargetSet) []models.Occurrence {
	var occs []models.Occurrence
	for name, dep := range deps {
		if dep == nil {
			continue
		}
		if targets.Contains(name) {
			occs = append(occs, models.Occurrence{
				Package:      name,
				Version:      dep.Version,
				Dev:          dep.Dev,
				Optional:     dep.Optional,
				Source:       models.SourceNpmLock,
				LockfilePath: path,
			})
		}
		occs = append(occs, walkNpmDeps(path, dep.Dependencies, targets)...)
	}
	return occs
}
