package export

import (
	"bytes"
	"context"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const doc = "<html><head><title>CV</title></head><body><h1>Jane</h1></body></html>"

func Test_FileName_SlugsLabels(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "acme-corp_staff-engineer_2026-03-10.pdf", FileName("ACME Corp.", "Staff  Engineer", at, "pdf"))
	assert.Equal(t, "globex_2026-03-10.html", FileName("Globex", "  ", at, ".html"))
	assert.Equal(t, "cv_2026-03-10.html", FileName("", "", at, "html"))
}

func Test_WriteHTML_AppliesLayoutAndCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cv.html")

	require.NoError(t, WriteHTML(path, doc, render.DensityVeryCompact, false))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), `data-layout="density"`)
	assert.Contains(t, string(written), "<h1>Jane</h1>")
}

func Test_WriteHTML_NormalLayout_KeepsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.html")

	require.NoError(t, WriteHTML(path, doc, render.DensityNormal, false))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(written))
}

func Test_PDFPrinter_WritePDF(t *testing.T) {
	chrome := ""
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "google-chrome-stable"} {
		if path, err := exec.LookPath(name); err == nil {
			chrome = path
			break
		}
	}
	if chrome == "" {
		t.Skip("no Chrome binary available")
	}

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, NewPDFPrinter(chrome).WritePDF(context.Background(), path, doc, render.DensityCompact, true))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(written, []byte("%PDF")))
}
