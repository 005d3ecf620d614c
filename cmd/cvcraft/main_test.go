package main

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/orajb/cv-craft/internal/config"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/orajb/cv-craft/internal/repositories"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	viper.Reset()

	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "absent.yaml"))
	t.Setenv("DB_CONNECTION_STRING", filepath.Join(dir, "data", "test.db"))
	t.Setenv("LOG_DIR", filepath.Join(dir, "logs"))
	t.Setenv("LOG_QUIET", "true")
	t.Setenv("OUTPUT_DIR", filepath.Join(dir, "output"))
	t.Setenv("AI_KEY", "")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func Test_Cli_ImportSeedAndRender_GroupedTemplate(t *testing.T) {
	assert := assert.New(t)
	dir := setupEnv(t)

	out, err := execute(t, "record", "import", "testdata/record.yaml")
	require.NoError(t, err)
	assert.Contains(out, "imported 3 work experiences")

	out, err = execute(t, "templates", "seed")
	require.NoError(t, err)
	assert.Contains(out, render.ClassicTemplateName)
	assert.Contains(out, render.CareerTemplateName)

	out, err = execute(t, "templates", "seed")
	require.NoError(t, err)
	assert.Empty(out)

	out, err = execute(t, "templates", "list")
	require.NoError(t, err)
	assert.Contains(out, "grouped")

	docFile := filepath.Join(dir, "cv.html")
	_, err = execute(t, "render", "--template", render.CareerTemplateName, "--out", docFile)
	require.NoError(t, err)

	doc, err := os.ReadFile(docFile)
	require.NoError(t, err)
	assert.Equal(1, strings.Count(string(doc), `class="company-group"`))
	assert.Contains(string(doc), "https://www.linkedin.com/in/janedoe")

	out, err = execute(t, "extract", docFile)
	require.NoError(t, err)

	var extracted extraction
	require.NoError(t, json.Unmarshal([]byte(out), &extracted))
	assert.Equal("Backend engineer focused on payments.", extracted.Summary)
	require.Len(t, extracted.Entries, 3)
	assert.Equal("Staff Engineer", extracted.Entries[0].Title)
	assert.Equal("ACME", extracted.Entries[0].Company)
	assert.True(extracted.QuickEdit)
}

func Test_Cli_EditFile_UpdatesSummaryAndBullets(t *testing.T) {
	assert := assert.New(t)
	dir := setupEnv(t)

	_, err := execute(t, "record", "import", "testdata/record.yaml")
	require.NoError(t, err)

	docFile := filepath.Join(dir, "cv.html")
	_, err = execute(t, "render", "--out", docFile)
	require.NoError(t, err)

	out, err := execute(t, "edit", "summary", "--file", docFile, "--text", "Payments & ledgers.")
	require.NoError(t, err)
	assert.Contains(out, "updated")

	out, err = execute(t, "edit", "summary", "--file", docFile, "--text", "Payments & ledgers.")
	require.NoError(t, err)
	assert.Contains(out, "no change")

	_, err = execute(t, "edit", "bullets", "--file", docFile, "--index", "1", "--bullet", "Shipped double-entry ledger")
	require.NoError(t, err)

	out, err = execute(t, "extract", docFile)
	require.NoError(t, err)

	var extracted extraction
	require.NoError(t, json.Unmarshal([]byte(out), &extracted))
	assert.Equal("Payments & ledgers.", extracted.Summary)
	assert.Equal([]string{"Shipped double-entry ledger"}, extracted.Entries[1].Bullets)
	assert.Equal([]string{"Lead the payments platform", "Mentor four engineers"}, extracted.Entries[0].Bullets)
}

func Test_Cli_EditApplication_StoresDocument(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	dir := setupEnv(t)

	dbContext, err := repositories.NewDbContext(filepath.Join(dir, "data", "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	id, err := applications.Save(ctx, models.Application{
		Company: "Acme",
		Role:    "Engineer",
		HTML:    `<section id="summary"><h2>Summary</h2><p class="summary">Old text.</p></section>`,
	})
	require.NoError(t, err)

	out, err := execute(t, "edit", "summary", "--app", id, "--text", "New text.")
	require.NoError(t, err)
	assert.Contains(out, "updated application "+id)

	stored, err := applications.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(stored.HTML, `<p class="summary">New text.</p>`)
	require.NoError(t, dbContext.Close())

	_, err = execute(t, "edit", "summary", "--app", "missing", "--text", "New text.")
	assert.ErrorIs(err, repositories.ErrNotFound)
}

func Test_Cli_Generate_WithoutKey_Fails(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "generate", "--job", "testdata/record.yaml")
	assert.ErrorIs(t, err, config.ErrMissingAIKey)
}

func Test_Cli_AppsStats_EmptyHistory(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "apps", "stats", "--json")
	require.NoError(t, err)

	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, float64(0), stats["total"])
	assert.Equal(t, float64(0), stats["success_rate"])
}

func Test_Cli_InvalidInput_IsRejected(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "apps", "status", "abc", "hired")
	assert.ErrorContains(t, err, "invalid application status")

	_, err = execute(t, "render", "--density", "tiny")
	assert.ErrorContains(t, err, "invalid density")

	_, err = execute(t, "export", "abc", "--format", "docx")
	assert.ErrorContains(t, err, "unknown format")
}
