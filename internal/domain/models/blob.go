package models

import "time"

// Blob is a document stored whole under a fixed key.
type Blob struct {
	Name      string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}
