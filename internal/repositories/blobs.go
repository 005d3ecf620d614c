package repositories

import (
	"context"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blobs keeps whole documents by key. Writing a key replaces its value.
type Blobs struct {
	db *gorm.DB
}

func NewBlobsRepository(db *gorm.DB) *Blobs {
	return &Blobs{db: db}
}

func (repo *Blobs) Save(ctx context.Context, key string, value []byte) error {
	blob := models.Blob{Name: key, Value: value}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	return errors.Wrapf(err, "failed to store %s", key)
}

// Load returns nil without an error when nothing is stored under key.
func (repo *Blobs) Load(ctx context.Context, key string) ([]byte, error) {
	var blob models.Blob
	err := repo.db.WithContext(ctx).First(&blob, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}
