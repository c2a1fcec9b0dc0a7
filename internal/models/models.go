package models

// Source angir hvilket filformat (og dermed hvilken parser) en forekomst kom fra.
type Source string

const (
	SourceNpmLock     Source = "npm-lock"
	SourceYarnLock    Source = "yarn-lock"
	SourcePackageJSON Source = "package-json"
)

// Occurrence er én funnet forekomst av en målpakke i en avhengighetsfil.
// For låsefiler er Version en konkret oppløst versjon, for package.json
// er det et deklarert versjonsområde (f.eks. "^9.0.0").
type Occurrence struct {
	Package      string `json:"package"`
	Version      string `json:"version"`
	Dev          bool   `json:"dev"`
	Optional     bool   `json:"optional"`
	Source       Source `json:"source"`
	LockfilePath string `json:"lockfile_path"`
}

// CandidateFile er en fil scanneren har klassifisert etter filnavn.
type CandidateFile struct {
	Path   string `json:"path"`
	Format Source `json:"format"`
}

// TargetSet er settet av pakkenavn vi leter etter. Navnene må være
// eksakte, inkludert scope-prefiks som "@scope/navn".
type TargetSet map[string]bool

func NewTargetSet(names []string) TargetSet {
	set := make(TargetSet, len(names))
	for _, name := range names {
		if name != "" {
			set[name] = true
		}
	}
	return set
}

func (t TargetSet) Contains(name string) bool {
	return t[name]
}
