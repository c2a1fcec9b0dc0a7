package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type StorageType string

const (
	StorageNone     StorageType = ""
	StoragePostgres StorageType = "postgres"
	StorageBigQuery StorageType = "bigquery"
)

type Config struct {
	Root          string
	Packages      []string // kommaseparert liste fra env
	PackagesFile  string   // valgfri fil med ett pakkenavn per linje
	Debug         bool
	Parallelism   int // maks antall samtidige fil-parsinger
	Storage       StorageType
	PostgresDSN   string
	BQProjectID   string
	BQDataset     string
	BQTablePrefix string // valgfritt prefiks foran tabellnavnet
	BQCredentials string // valgfritt hvis GCP-auth skjer automatisk
}

// LoadConfigWithEnv leser konfigurasjon via en injisert getenv, slik at
// tester kan gi et falskt miljø.
func LoadConfigWithEnv(getenv func(string) string) (Config, error) {
	parallelism := 1
	if pStr := getenv("PAKKESNUSERN_PARALL"); pStr != "" {
		p, err := strconv.Atoi(pStr)
		if err != nil || p <= 0 {
			return Config{}, errors.New("PAKKESNUSERN_PARALL må være et positivt heltall")
		}
		parallelism = p
	}

	root := getenv("PAKKESNUSERN_ROOT")
	if root == "" {
		root = "."
	}

	cfg := Config{
		Root:          root,
		Packages:      splitPackages(getenv("PAKKESNUSERN_PAKKER")),
		PackagesFile:  getenv("PAKKESNUSERN_PAKKER_FIL"),
		Debug:         getenv("PAKKESNUSERDEBUG") == "true",
		Parallelism:   parallelism,
		Storage:       StorageType(getenv("PAKKESNUSERN_STORAGE")),
		PostgresDSN:   getenv("POSTGRES_DSN"),
		BQProjectID:   getenv("BQ_PROJECT_ID"),
		BQDataset:     getenv("BQ_DATASET"),
		BQTablePrefix: getenv("BQ_TABLE_PREFIX"),
		BQCredentials: getenv("BQ_CREDENTIALS"),
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if len(cfg.Packages) == 0 && cfg.PackagesFile == "" {
		return errors.New("PAKKESNUSERN_PAKKER eller PAKKESNUSERN_PAKKER_FIL må være satt")
	}

	switch cfg.Storage {
	case StorageNone:
		// ren konsollrapport
	case StoragePostgres:
		if cfg.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN må være satt for postgres-lagring")
		}
	case StorageBigQuery:
		if cfg.BQProjectID == "" || cfg.BQDataset == "" {
			return errors.New("BQ_PROJECT_ID og BQ_DATASET må være satt for bigquery-lagring")
		}
	default:
		return errors.New("ugyldig verdi for PAKKESNUSERN_STORAGE – må være tom, 'postgres' eller 'bigquery'")
	}

	return nil
}

// LoadAndValidateConfig er hovedinngangen for cmd.
func LoadAndValidateConfig() (Config, error) {
	cfg, err := LoadConfigWithEnv(os.Getenv)
	if err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolvePackages slår sammen env-listen og fil-listen til det endelige
// målsettet av pakkenavn.
func ResolvePackages(cfg Config) ([]string, error) {
	names := append([]string(nil), cfg.Packages...)

	if cfg.PackagesFile != "" {
		data, err := os.ReadFile(cfg.PackagesFile)
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			names = append(names, line)
		}
	}

	if len(names) == 0 {
		return nil, errors.New("ingen målpakker angitt")
	}
	return names, nil
}

func splitPackages(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
