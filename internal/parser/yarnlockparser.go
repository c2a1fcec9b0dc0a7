package parser

import (
	"regexp"
	"strings"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

type YarnLockParser struct{}

func (p YarnLockParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "yarn.lock")
}

// Parse håndterer Yarn v1-grammatikken: blokker adskilt av blanklinjer,
// en header med kommaseparerte selektorer og en `version "x"`-linje.
// Yarn Berry (YAML-basert) er bevisst ikke støttet.
func (p YarnLockParser) Parse(path string, content []byte, targets models.TargetSet) ([]models.Occurrence, error) {
	return parseYarnLock(path, string(content), targets), nil
}

var yarnBlockSplit = regexp.MustCompile(`\n{2,}`)

func parseYarnLock(path, content string, targets models.TargetSet) []models.Occurrence {
	var occs []models.Occurrence

	for _, block := range yarnBlockSplit.Split(content, -1) {
		block = strings.TrimSpace(block)
		if block == "" || strings.HasPrefix(block, "#") {
			continue
		}

		lines := strings.Split(block, "\n")
		version := yarnBlockVersion(lines[1:])

		for _, selector := range strings.Split(yarnHeaderSelectors(lines[0]), ",") {
			name, ok := yarnSelectorName(selector)
			if !ok || !targets.Contains(name) {
				continue
			}
			// Formatet skiller ikke dev/optional, begge er alltid false
			occs = append(occs, models.Occurrence{
				Package:      name,
				Version:      version,
				Source:       models.SourceYarnLock,
				LockfilePath: path,
			})
		}
	}
	return occs
}

// yarnHeaderSelectors normaliserer headerlinjen: fjerner ett innledende
// anførselstegn og avsluttende `":` eller `:`, og lar selektorlisten stå igjen.
func yarnHeaderSelectors(header string) string {
	header = strings.TrimPrefix(header, `"`)
	if strings.HasSuffix(header, `":`) {
		return strings.TrimSuffix(header, `":`)
	}
	return strings.TrimSuffix(header, ":")
}

// yarnBlockVersion finner `version "x"`-linjen i blokken. En blokk uten
// versjonslinje behandles fortsatt, bare med tom versjon.
func yarnBlockVersion(lines []string) string {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, `version "`); ok {
			if end := strings.Index(rest, `"`); end >= 0 {
				return rest[:end]
			}
		}
	}
	return ""
}

// yarnSelectorName utleder pakkenavnet fra en selektor som "is@^3.0.0"
// eller "@pkgr/core@^1.0.0". Scopede navn begynner selv med @, så navnet
// er teksten før den SISTE @-en. Ingen @, eller @ som første tegn uten
// noe navn foran, er ugyldig og hoppes over.
func yarnSelectorName(selector string) (string, bool) {
	selector = strings.Trim(strings.TrimSpace(selector), `"`)
	at := strings.LastIndex(selector, "@")
	if at <= 0 {
		return "", false
	}
	return selector[:at], true
}
