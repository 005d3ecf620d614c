package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/orajb/cv-craft/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	if err := ensureDatabaseDir(connectionString); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(models.Template{})
	if err != nil {
		return fmt.Errorf("failed to migrate Template entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Blob{})
	if err != nil {
		return fmt.Errorf("failed to migrate Blob entity: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func ensureDatabaseDir(connectionString string) error {
	path := connectionString
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "file:")
	if path == "" || strings.Contains(path, ":memory:") {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}
