package repositories

import (
	"context"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
	"time"
)

func newTestDb(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "data", "cv.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() {
		_ = dbCtx.Close()
	})
	return dbCtx
}

func Test_Records_FirstAccess_CreatesEmptyRecord(t *testing.T) {
	ctx := context.Background()
	dbCtx := newTestDb(t)
	records := NewRecordsRepository(NewBlobsRepository(dbCtx.DB))

	record, err := records.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, record.WorkExperiences)
	assert.Equal(t, "", record.Summary)

	stored, err := NewBlobsRepository(dbCtx.DB).Load(ctx, recordKey)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func Test_Records_AddCurrentRole_ForcesPresent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	id, err := records.AddWorkExperience(ctx, models.WorkExperience{
		Company: "Acme", Role: "Engineer", StartDate: "2020", EndDate: "2021", IsCurrent: true,
	})
	require.NoError(t, err)
	assert.Len(id, 8)

	record, err := records.Get(ctx)
	require.NoError(t, err)
	require.Len(t, record.WorkExperiences, 1)
	assert.Equal(id, record.WorkExperiences[0].ID)
	assert.Equal(models.Present, record.WorkExperiences[0].EndDate)
	assert.False(record.WorkExperiences[0].CreatedAt.IsZero())
	assert.Nil(record.WorkExperiences[0].UpdatedAt)
}

func Test_Records_UpdateItem_KeepsIdentityAndCreationTime(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	id, err := records.AddProject(ctx, models.Project{Name: "cv-craft"})
	require.NoError(t, err)
	before, err := records.Get(ctx)
	require.NoError(t, err)

	err = records.UpdateProject(ctx, models.Project{
		ItemMeta: models.ItemMeta{ID: id},
		Name:     "cv-craft 2",
	})
	require.NoError(t, err)

	after, err := records.Get(ctx)
	require.NoError(t, err)
	require.Len(t, after.Projects, 1)
	assert.Equal("cv-craft 2", after.Projects[0].Name)
	assert.Equal(id, after.Projects[0].ID)
	assert.True(before.Projects[0].CreatedAt.Equal(after.Projects[0].CreatedAt))
	assert.NotNil(after.Projects[0].UpdatedAt)
}

func Test_Records_UnknownItem_ReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	err := records.UpdateAward(ctx, models.Award{ItemMeta: models.ItemMeta{ID: "missing"}, Text: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))

	err = records.DeleteEducation(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_Records_DeleteItem_RemovesOnlyThatItem(t *testing.T) {
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	first, err := records.AddAward(ctx, models.Award{Text: "First"})
	require.NoError(t, err)
	_, err = records.AddAward(ctx, models.Award{Text: "Second"})
	require.NoError(t, err)

	require.NoError(t, records.DeleteAward(ctx, first))

	record, err := records.Get(ctx)
	require.NoError(t, err)
	require.Len(t, record.Awards, 1)
	assert.Equal(t, "Second", record.Awards[0].Text)
}

func Test_Records_InvalidInput_IsRejected(t *testing.T) {
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	assert.Error(t, records.UpdateContact(ctx, models.Contact{Email: "nope"}))
	_, err := records.AddWorkExperience(ctx, models.WorkExperience{Role: "No company"})
	assert.Error(t, err)
}

func Test_Records_FieldUpdates_ArePersisted(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	require.NoError(t, records.UpdateContact(ctx, models.Contact{Name: "Jane", Email: "jane@example.com"}))
	require.NoError(t, records.UpdateSummary(ctx, "Engineer"))
	require.NoError(t, records.UpdateSkills(ctx, models.Skills{Technical: []string{"Go"}}))

	record, err := records.Get(ctx)
	require.NoError(t, err)
	assert.Equal("Jane", record.Contact.Name)
	assert.Equal("Engineer", record.Summary)
	assert.Equal([]string{"Go"}, record.Skills.Technical)
}

func Test_Records_Import_AssignsMissingIdentifiers(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	records := NewRecordsRepository(NewBlobsRepository(newTestDb(t).DB))

	err := records.Import(ctx, models.Record{
		Summary: "Imported",
		WorkExperiences: []models.WorkExperience{
			{ItemMeta: models.ItemMeta{ID: "keepme12"}, Company: "Acme", Role: "Dev"},
			{Company: "Globex", Role: "Lead", IsCurrent: true},
		},
	})
	require.NoError(t, err)

	record, err := records.Get(ctx)
	require.NoError(t, err)
	require.Len(t, record.WorkExperiences, 2)
	assert.Equal("keepme12", record.WorkExperiences[0].ID)
	assert.Len(record.WorkExperiences[1].ID, 8)
	assert.Equal(models.Present, record.WorkExperiences[1].EndDate)
	assert.Equal("Imported", record.Summary)
}

func Test_Templates_FirstSaved_BecomesDefault(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	templates := NewTemplatesRepository(newTestDb(t).DB)

	first, err := templates.Save(ctx, models.Template{Name: "One", HTML: "<p>1</p>"}, false)
	require.NoError(t, err)
	second, err := templates.Save(ctx, models.Template{Name: "Two", HTML: "<p>2</p>"}, false)
	require.NoError(t, err)

	def, err := templates.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal(first, def.ID)

	require.NoError(t, templates.SetDefault(ctx, second))
	def, err = templates.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal(second, def.ID)

	list, err := templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(list[0].IsDefault)
	assert.True(list[1].IsDefault)
}

func Test_Templates_DeleteDefault_PromotesRemaining(t *testing.T) {
	ctx := context.Background()
	templates := NewTemplatesRepository(newTestDb(t).DB)

	first, err := templates.Save(ctx, models.Template{Name: "One", HTML: "<p>1</p>"}, false)
	require.NoError(t, err)
	second, err := templates.Save(ctx, models.Template{Name: "Two", HTML: "<p>2</p>"}, false)
	require.NoError(t, err)

	require.NoError(t, templates.Delete(ctx, first))

	def, err := templates.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, def.ID)

	require.NoError(t, templates.Delete(ctx, second))
	_, err = templates.GetDefault(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_Templates_Missing_ReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	templates := NewTemplatesRepository(newTestDb(t).DB)

	_, err := templates.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(templates.SetDefault(ctx, "missing"), ErrNotFound))
	assert.True(t, errors.Is(templates.Delete(ctx, "missing"), ErrNotFound))
	assert.True(t, errors.Is(templates.Update(ctx, models.Template{ID: "missing", Name: "x", HTML: "x"}), ErrNotFound))
}

func Test_CachedTemplates_Writes_InvalidateLookups(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	templates := NewCachedTemplates(NewTemplatesRepository(newTestDb(t).DB))

	id, err := templates.Save(ctx, models.Template{Name: "One", HTML: "<p>1</p>"}, false)
	require.NoError(t, err)

	cached, err := templates.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal("<p>1</p>", cached.HTML)

	require.NoError(t, templates.Update(ctx, models.Template{ID: id, Name: "One", HTML: "<p>changed</p>"}))

	fresh, err := templates.GetDefault(ctx)
	require.NoError(t, err)
	assert.Equal("<p>changed</p>", fresh.HTML)

	byID, err := templates.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal("<p>changed</p>", byID.HTML)
}

func Test_Applications_Save_AppliesDefaults(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	apps := NewApplicationsRepository(newTestDb(t).DB)

	id, err := apps.Save(ctx, models.Application{HTML: "<p>cv</p>"})
	require.NoError(t, err)

	app, err := apps.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(models.DefaultCompany, app.Company)
	assert.Equal(models.DefaultRole, app.Role)
	assert.Equal(models.StatusCreated, app.Status)
	assert.Equal("<p>cv</p>", app.HTML)
}

func Test_Applications_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	apps := NewApplicationsRepository(newTestDb(t).DB)
	now := time.Now().UTC()

	_, err := apps.Save(ctx, models.Application{Company: "Old", CreatedAt: now.Add(-48 * time.Hour)})
	require.NoError(t, err)
	_, err = apps.Save(ctx, models.Application{Company: "New", CreatedAt: now})
	require.NoError(t, err)
	_, err = apps.Save(ctx, models.Application{Company: "Middle", CreatedAt: now.Add(-24 * time.Hour)})
	require.NoError(t, err)

	list, err := apps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"New", "Middle", "Old"}, []string{list[0].Company, list[1].Company, list[2].Company})

	filtered, err := apps.List(ctx, models.StatusDraft)
	require.NoError(t, err)
	assert.Empty(t, filtered)
}

func Test_Applications_SaveOrUpdateDraft_UpdatesOnlyDrafts(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	apps := NewApplicationsRepository(newTestDb(t).DB)

	draftID, err := apps.SaveOrUpdateDraft(ctx, "", models.Application{Company: "Acme", HTML: "v1"})
	require.NoError(t, err)

	sameID, err := apps.SaveOrUpdateDraft(ctx, draftID, models.Application{Company: "Acme", HTML: "v2"})
	require.NoError(t, err)
	assert.Equal(draftID, sameID)

	draft, err := apps.Get(ctx, draftID)
	require.NoError(t, err)
	assert.Equal("v2", draft.HTML)
	assert.Equal(models.StatusDraft, draft.Status)
	assert.NotNil(draft.UpdatedAt)

	require.NoError(t, apps.UpdateStatus(ctx, draftID, models.StatusCreated))

	newID, err := apps.SaveOrUpdateDraft(ctx, draftID, models.Application{Company: "Acme", HTML: "v3"})
	require.NoError(t, err)
	assert.NotEqual(draftID, newID)

	promoted, err := apps.Get(ctx, draftID)
	require.NoError(t, err)
	assert.Equal("v2", promoted.HTML)
}

func Test_Applications_UpdatesAndCounts(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	apps := NewApplicationsRepository(newTestDb(t).DB)

	first, err := apps.Save(ctx, models.Application{Company: "A"})
	require.NoError(t, err)
	_, err = apps.Save(ctx, models.Application{Company: "B"})
	require.NoError(t, err)

	require.NoError(t, apps.UpdateStatus(ctx, first, models.StatusApplied))
	require.NoError(t, apps.UpdateNotes(ctx, first, "call on monday"))
	require.NoError(t, apps.UpdateHTML(ctx, first, "<p>new</p>"))

	app, err := apps.Get(ctx, first)
	require.NoError(t, err)
	assert.Equal(models.StatusApplied, app.Status)
	assert.Equal("call on monday", app.Notes)
	assert.Equal("<p>new</p>", app.HTML)

	counts, err := apps.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(int64(1), counts[models.StatusApplied])
	assert.Equal(int64(1), counts[models.StatusCreated])

	assert.True(errors.Is(apps.UpdateStatus(ctx, "missing", models.StatusOffer), ErrNotFound))
	assert.True(errors.Is(apps.Delete(ctx, "missing"), ErrNotFound))
	require.NoError(t, apps.Delete(ctx, first))
	_, err = apps.Get(ctx, first)
	assert.True(errors.Is(err, ErrNotFound))
}

func Test_Applications_RemoveStaleDrafts(t *testing.T) {
	ctx := context.Background()
	apps := NewApplicationsRepository(newTestDb(t).DB)
	now := time.Now().UTC()

	stale, err := apps.Save(ctx, models.Application{Status: models.StatusDraft, CreatedAt: now.Add(-30 * 24 * time.Hour)})
	require.NoError(t, err)
	fresh, err := apps.Save(ctx, models.Application{Status: models.StatusDraft, CreatedAt: now})
	require.NoError(t, err)
	oldButSent, err := apps.Save(ctx, models.Application{Status: models.StatusApplied, CreatedAt: now.Add(-30 * 24 * time.Hour)})
	require.NoError(t, err)

	removed, err := apps.RemoveStaleDrafts(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = apps.Get(ctx, stale)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = apps.Get(ctx, fresh)
	assert.NoError(t, err)
	_, err = apps.Get(ctx, oldButSent)
	assert.NoError(t, err)
}
