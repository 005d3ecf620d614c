package repositories

import (
	"context"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

// Templates stores resume templates. At most one template is the default, and
// there is always one while any template exists.
type Templates struct {
	db *gorm.DB
}

func NewTemplatesRepository(db *gorm.DB) *Templates {
	return &Templates{db: db}
}

// Save stores a new template. The first template saved becomes the default.
func (repo *Templates) Save(ctx context.Context, template models.Template, setDefault bool) (string, error) {
	if err := models.Validate(template); err != nil {
		return "", errors.Wrap(err, "invalid template")
	}
	template.ID = models.NewID()
	template.UpdatedAt = nil

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Template{}).Count(&count).Error; err != nil {
			return err
		}

		template.IsDefault = setDefault || count == 0
		if template.IsDefault {
			if err := clearDefault(tx); err != nil {
				return err
			}
		}
		return tx.Create(&template).Error
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to save template")
	}
	return template.ID, nil
}

// Update changes the content of a template. The default flag is left alone.
func (repo *Templates) Update(ctx context.Context, template models.Template) error {
	if err := models.Validate(template); err != nil {
		return errors.Wrap(err, "invalid template")
	}

	res := repo.db.WithContext(ctx).Model(&models.Template{}).Where("id = ?", template.ID).
		Updates(map[string]any{
			"name":        template.Name,
			"description": template.Description,
			"html":        template.HTML,
			"css":         template.CSS,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "template %s", template.ID)
	}
	return nil
}

// Delete removes a template. Removing the default promotes the oldest remaining one.
func (repo *Templates) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var template models.Template
		if err := tx.First(&template, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "template %s", id)
			}
			return err
		}

		if err := tx.Delete(&models.Template{}, "id = ?", id).Error; err != nil {
			return err
		}
		if !template.IsDefault {
			return nil
		}

		var next models.Template
		err := tx.Order("created_at asc, rowid asc").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.Template{}).Where("id = ?", next.ID).Update("is_default", true).Error
	})
}

func (repo *Templates) SetDefault(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Template{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errors.Wrapf(ErrNotFound, "template %s", id)
		}

		if err := clearDefault(tx); err != nil {
			return err
		}
		return tx.Model(&models.Template{}).Where("id = ?", id).Update("is_default", true).Error
	})
}

func (repo *Templates) Get(ctx context.Context, id string) (*models.Template, error) {
	var template models.Template
	if err := repo.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "template %s", id)
		}
		return nil, err
	}
	return &template, nil
}

func (repo *Templates) GetDefault(ctx context.Context) (*models.Template, error) {
	var template models.Template
	if err := repo.db.WithContext(ctx).First(&template, "is_default = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(ErrNotFound, "default template")
		}
		return nil, err
	}
	return &template, nil
}

func (repo *Templates) GetByName(ctx context.Context, name string) (*models.Template, error) {
	var template models.Template
	if err := repo.db.WithContext(ctx).First(&template, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "template %q", name)
		}
		return nil, err
	}
	return &template, nil
}

func (repo *Templates) List(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	if err := repo.db.WithContext(ctx).Order("created_at asc, rowid asc").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func clearDefault(tx *gorm.DB) error {
	return tx.Model(&models.Template{}).Where("is_default = ?", true).Update("is_default", false).Error
}
