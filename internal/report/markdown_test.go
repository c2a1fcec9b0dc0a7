package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

func TestRenderMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderMarkdown(&buf, nil)
	if buf.String() != "No occurrences found.\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRenderMarkdownRows(t *testing.T) {
	occs := []models.Occurrence{
		{
			Package:      "synckit",
			Version:      "^0.10.0",
			Dev:          true,
			Source:       models.SourcePackageJSON,
			LockfilePath: "/tmp/prosjekt/package.json",
		},
		{
			Package:      "is",
			Version:      "3.3.0",
			Source:       models.SourceNpmLock,
			LockfilePath: "/tmp/prosjekt/package-lock.json",
		},
	}

	var buf bytes.Buffer
	RenderMarkdown(&buf, occs)
	out := buf.String()

	for _, want := range []string{"Package", "Version", "Dev", "Optional", "Source", "File",
		"synckit", "^0.10.0", "✔", "package-json", "is", "3.3.0", "npm-lock"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "|") {
		t.Errorf("expected a markdown table:\n%s", out)
	}
}

func TestShortenPath(t *testing.T) {
	base := filepath.Join("/", "home", "user", "work")

	inside := filepath.Join(base, "app", "package.json")
	if got := ShortenPath(base, inside); got != filepath.Join("app", "package.json") {
		t.Errorf("expected relative path, got %q", got)
	}

	outside := filepath.Join("/", "etc", "passwd")
	if got := ShortenPath(base, outside); got != outside {
		t.Errorf("expected path outside base to be unchanged, got %q", got)
	}

	if got := ShortenPath("", inside); got != inside {
		t.Errorf("expected unchanged path for empty base, got %q", got)
	}
}
