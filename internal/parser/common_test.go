package parser

import (
	"testing"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

func TestForFormat(t *testing.T) {
	if _, ok := ForFormat(models.SourceNpmLock); !ok {
		t.Error("expected a parser for npm-lock")
	}
	if _, ok := ForFormat(models.SourceYarnLock); !ok {
		t.Error("expected a parser for yarn-lock")
	}
	if _, ok := ForFormat(models.SourcePackageJSON); !ok {
		t.Error("expected a parser for package-json")
	}
	if _, ok := ForFormat("gradle"); ok {
		t.Error("expected no parser for unknown formats")
	}
}

func TestCanParse(t *testing.T) {
	cases := []struct {
		parser   Parser
		filename string
		want     bool
	}{
		{NpmLockParser{}, "a/b/package-lock.json", true},
		{NpmLockParser{}, "a/b/package.lock.json", true},
		{NpmLockParser{}, "a/b/npm-shrinkwrap.json", true},
		{NpmLockParser{}, "a/b/package.json", false},
		{YarnLockParser{}, "a/b/yarn.lock", true},
		{YarnLockParser{}, "a/b/pnpm-lock.yaml", false},
		{PackageJSONParser{}, "a/b/package.json", true},
		{PackageJSONParser{}, "a/b/package-lock.json", false},
	}
	for _, c := range cases {
		if got := c.parser.CanParse(c.filename); got != c.want {
			t.Errorf("CanParse(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}
