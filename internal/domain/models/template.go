package models

import "time"

type Template struct {
	ID          string `gorm:"primaryKey"`
	Name        string `validate:"required"`
	Description string
	HTML        string `gorm:"column:html" validate:"required"`
	CSS         string `gorm:"column:css"`
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}
