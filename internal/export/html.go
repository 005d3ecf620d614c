package export

import (
	"fmt"
	"github.com/orajb/cv-craft/internal/render"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// FileName builds a file name like "acme_staff-engineer_2026-03-10.pdf".
func FileName(company, role string, at time.Time, ext string) string {
	parts := []string{}
	for _, part := range []string{company, role} {
		if slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(part), "-"), "-"); slug != "" {
			parts = append(parts, slug)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "cv")
	}
	parts = append(parts, at.Format("2006-01-02"))
	return strings.Join(parts, "_") + "." + strings.TrimPrefix(ext, ".")
}

// WriteHTML stores doc with its layout styles applied, creating the directory
// when needed.
func WriteHTML(path, doc string, density render.Density, paginate bool) error {
	return writeFile(path, []byte(render.ApplyLayout(doc, density, paginate)))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
