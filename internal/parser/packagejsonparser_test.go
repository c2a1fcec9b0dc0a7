package parser

import (
	"testing"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

func TestParsePackageJSONFlagsPerField(t *testing.T) {
	jsonData := []byte(`{
		"dependencies": {
			"is": "^3.0.0"
		},
		"devDependencies": {
			"synckit": "^0.10.0"
		},
		"optionalDependencies": {
			"fsevents": "^2.3.2"
		}
	}`)
	targets := models.NewTargetSet([]string{"is", "synckit", "fsevents"})

	occs, err := PackageJSONParser{}.Parse("package.json", jsonData, targets)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(occs) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occs))
	}

	expected := map[string]struct {
		version  string
		dev      bool
		optional bool
	}{
		"is":       {"^3.0.0", false, false},
		"synckit":  {"^0.10.0", true, false},
		"fsevents": {"^2.3.2", false, true},
	}

	for _, o := range occs {
		want, ok := expected[o.Package]
		if !ok {
			t.Errorf("unexpected occurrence: %s", o.Package)
			continue
		}
		if o.Version != want.version || o.Dev != want.dev || o.Optional != want.optional {
			t.Errorf("occurrence %s: got (%q, dev=%v, optional=%v), want (%q, dev=%v, optional=%v)",
				o.Package, o.Version, o.Dev, o.Optional, want.version, want.dev, want.optional)
		}
		if o.Source != models.SourcePackageJSON {
			t.Errorf("occurrence %s: expected source package-json, got %s", o.Package, o.Source)
		}
		if o.LockfilePath != "package.json" {
			t.Errorf("occurrence %s missing LockfilePath", o.Package)
		}
	}
}

func TestParsePackageJSONNullishRange(t *testing.T) {
	jsonData := []byte(`{
		"dependencies": {
			"is": null
		}
	}`)

	occs, err := PackageJSONParser{}.Parse("package.json", jsonData, models.NewTargetSet([]string{"is"}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(occs) != 1 || occs[0].Version != "" {
		t.Fatalf("expected empty version for nullish range, got %+v", occs)
	}
}

func TestParsePackageJSONNonObjectFieldSkipped(t *testing.T) {
	jsonData := []byte(`{
		"dependencies": ["not", "a", "map"],
		"devDependencies": {
			"is": "^3.0.0"
		}
	}`)

	occs, err := PackageJSONParser{}.Parse("package.json", jsonData, models.NewTargetSet([]string{"is"}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(occs) != 1 || !occs[0].Dev {
		t.Fatalf("expected only the devDependencies entry, got %+v", occs)
	}
}

func TestParsePackageJSONNoTargetLeakage(t *testing.T) {
	jsonData := []byte(`{
		"dependencies": {
			"express": "^4.18.2"
		}
	}`)

	occs, err := PackageJSONParser{}.Parse("package.json", jsonData, models.NewTargetSet([]string{"is"}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(occs) != 0 {
		t.Fatalf("non-target package leaked: %+v", occs)
	}
}
