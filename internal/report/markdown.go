package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
)

// RenderMarkdown skriver én markdown-tabellrad per forekomst, eller
// en fast linje når det ikke finnes noen. Stier vises relativt til
// arbeidskatalogen når de ligger under den.
func RenderMarkdown(w io.Writer, occs []models.Occurrence) {
	if len(occs) == 0 {
		fmt.Fprintln(w, "No occurrences found.")
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Format.Header = text.FormatDefault // behold kolonnenavnene som de er
	t.AppendHeader(table.Row{"Package", "Version", "Dev", "Optional", "Source", "File"})
	for _, o := range occs {
		t.AppendRow(table.Row{
			o.Package,
			o.Version,
			mark(o.Dev),
			mark(o.Optional),
			string(o.Source),
			ShortenPath(cwd, o.LockfilePath),
		})
	}
	t.RenderMarkdown()
}

func mark(b bool) string {
	if b {
		return "✔"
	}
	return ""
}

// ShortenPath gjør path relativ til base hvis den ligger under den,
// ellers returneres den uendret.
func ShortenPath(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
