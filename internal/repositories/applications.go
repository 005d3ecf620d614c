package repositories

import (
	"context"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

// Applications is the history of generated documents, newest first.
type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Save(ctx context.Context, app models.Application) (string, error) {
	app.ApplyDefaults()
	if err := models.Validate(app); err != nil {
		return "", errors.Wrap(err, "invalid application")
	}

	app.ID = models.NewID()
	app.UpdatedAt = nil
	if err := repo.db.WithContext(ctx).Create(&app).Error; err != nil {
		return "", errors.Wrap(err, "failed to save application")
	}
	return app.ID, nil
}

// SaveOrUpdateDraft overwrites the draft with draftID while it is still a draft,
// and stores a new draft otherwise.
func (repo *Applications) SaveOrUpdateDraft(ctx context.Context, draftID string, app models.Application) (string, error) {
	app.Status = models.StatusDraft
	app.ApplyDefaults()

	if draftID != "" {
		res := repo.db.WithContext(ctx).Model(&models.Application{}).
			Where("id = ? AND status = ?", draftID, models.StatusDraft).
			Updates(map[string]any{
				"company":         app.Company,
				"role":            app.Role,
				"role_url":        app.RoleURL,
				"job_description": app.JobDescription,
				"html":            app.HTML,
				"template_id":     app.TemplateID,
				"updated_at":      time.Now().UTC(),
			})
		if res.Error != nil {
			return "", errors.Wrap(res.Error, "failed to update draft")
		}
		if res.RowsAffected > 0 {
			return draftID, nil
		}
	}

	return repo.Save(ctx, app)
}

func (repo *Applications) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	return repo.update(ctx, id, map[string]any{"status": status})
}

func (repo *Applications) UpdateNotes(ctx context.Context, id string, notes string) error {
	return repo.update(ctx, id, map[string]any{"notes": notes})
}

func (repo *Applications) UpdateHTML(ctx context.Context, id string, html string) error {
	return repo.update(ctx, id, map[string]any{"html": html})
}

func (repo *Applications) update(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res := repo.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "application %s", id)
	}
	return nil
}

func (repo *Applications) Delete(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "application %s", id)
	}
	return nil
}

func (repo *Applications) Get(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := repo.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "application %s", id)
		}
		return nil, err
	}
	return &app, nil
}

// List returns applications newest first, optionally limited to some statuses.
func (repo *Applications) List(ctx context.Context, statuses ...models.Status) ([]models.Application, error) {
	query := repo.db.WithContext(ctx).Order("created_at desc, rowid desc")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (repo *Applications) CountByStatus(ctx context.Context) (map[models.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := repo.db.WithContext(ctx).Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Status]int64, len(rows))
	for _, row := range rows {
		counts[models.Status(row.Status)] = row.Count
	}
	return counts, nil
}

// RemoveStaleDrafts deletes drafts whose last change is older than expirationTime.
func (repo *Applications) RemoveStaleDrafts(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("status = ? AND COALESCE(updated_at, created_at) < ?", models.StatusDraft, expirationTime.UTC()).
		Delete(&models.Application{})
	return res.RowsAffected, res.Error
}
